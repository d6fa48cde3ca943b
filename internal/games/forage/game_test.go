package forage

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-forage/internal/anim"
	"github.com/vovakirdan/tui-forage/internal/config"
	"github.com/vovakirdan/tui-forage/internal/core"
	"github.com/vovakirdan/tui-forage/internal/registry"
)

// testConfig is a small open world with one carried goal item and a depot.
// Every glyph is one cell on a single atlas row.
func testConfig() config.ForageConfig {
	cell := func(x float64) anim.SheetRegion {
		return anim.SheetRegion{X: x, Z: 1, W: 1, H: 1}
	}
	strip := func(xs ...float64) []anim.SheetRegion {
		out := make([]anim.SheetRegion, len(xs))
		for i, x := range xs {
			out[i] = cell(x)
		}
		return out
	}

	return config.ForageConfig{
		ID:           "test",
		Title:        "TEST",
		Blurb:        "A test world.",
		Instructions: []string{"Walk around."},
		World:        config.WorldConfig{Width: 40, Height: 20, Margin: 2, Nudge: 0.5, Ground: ".", GroundTint: "green"},
		Actor: config.ActorConfig{
			Spawn:   core.V(20, 10),
			Speed:   1,
			Probe:   core.V(2, 2),
			Precise: core.V(0.5, 0.5),
			Size:    core.V(0.5, 0.5),
			Animation: config.AnimationConfig{
				Frames: strip(0, 1, 2, 3), Rate: 0, Looping: true, SpriteWidth: 1,
			},
		},
		Collision: config.CollisionConfig{Steps: 2},
		Pickups: []config.PickupConfig{{
			Kind:          "log",
			Label:         "logs",
			Count:         3,
			Size:          core.V(0.5, 0.5),
			Region:        cell(4),
			CatchDistance: 1,
			Mode:          config.PickupCarry,
			CarryOffset:   core.V(0, -1),
			Goal:          true,
		}},
		Depot: config.DepotConfig{
			Label:  "pit",
			Pos:    core.V(30, 10),
			Radius: 1.5,
			Size:   core.V(0.5, 0.5),
			Region: cell(5),
			Ignite: config.AnimationConfig{Frames: strip(6, 7), Rate: 0},
			Lit:    config.AnimationConfig{Frames: strip(8, 9), Rate: 0, Looping: true},
		},
		Hazards: config.HazardConfig{
			Label:         "bear",
			Size:          core.V(0.5, 0.5),
			CatchDistance: 1,
			MoveEvery:     1000,
			Step:          1,
			Clock:         config.ClockShared,
			Animation:     config.AnimationConfig{Frames: strip(10, 11, 12, 13), Rate: 100, Looping: true},
		},
		Rules: config.RulesConfig{Goal: 3},
		Atlas: []config.PageConfig{{Glyphs: []string{"@abclpIJKLBCDE"}}},
	}
}

var testRuntime = core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 10, Seed: 7}

// newTestGame builds a game in play with every item parked out of reach.
func newTestGame(t *testing.T, mutate func(c *config.ForageConfig)) *Game {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	g.Reset(testRuntime)
	g.phase = core.PhasePlay
	for i := range g.items {
		g.items[i].pos = core.V(5, 5)
	}
	for i := range g.hazards {
		g.hazards[i].pos = core.V(5, 15)
	}
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"campfire", "alchemist"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}
	for _, info := range registry.List() {
		if info.Title == "" {
			t.Errorf("variant %q registered without a title", info.ID)
		}
	}
}

func TestEmbeddedVariantsPlay(t *testing.T) {
	for _, id := range config.Variants() {
		t.Run(id, func(t *testing.T) {
			cfg, err := config.LoadEmbedded(id)
			if err != nil {
				t.Fatal(err)
			}
			g, err := New(cfg)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 99})

			actions := []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp}
			screen := core.NewScreen(80, 24)
			g.Step(core.NewInputFrame(core.ActionConfirm))
			g.Step(core.NewInputFrame(core.ActionConfirm))
			for i := range 600 {
				g.Step(core.NewInputFrame(actions[(i/15)%len(actions)], core.ActionInteract))
				if i%50 == 0 {
					g.Render(screen)
				}
			}

			w := cfg.World
			if g.actorPos.X < 0 || g.actorPos.X > w.Width || g.actorPos.Y < 0 || g.actorPos.Y > w.Height {
				t.Errorf("actor left the world: %+v", g.actorPos)
			}
		})
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() *Game {
		cfg, err := config.LoadEmbedded("campfire")
		if err != nil {
			t.Fatal(err)
		}
		g, err := New(cfg)
		if err != nil {
			t.Fatal(err)
		}
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 12345})

		g.Step(core.NewInputFrame(core.ActionConfirm))
		g.Step(core.NewInputFrame(core.ActionConfirm))
		for i := range 300 {
			in := core.NewInputFrame()
			switch i % 9 {
			case 0, 1, 2:
				in.Set(core.ActionRight)
			case 3, 4:
				in.Set(core.ActionDown)
			case 5:
				in.Set(core.ActionLeft)
			}
			g.Step(in)
			if g.State().GameOver {
				break
			}
		}
		return g
	}

	g1, g2 := run(), run()

	if g1.tickCount != g2.tickCount || g1.score != g2.score || g1.phase != g2.phase {
		t.Errorf("runs differ: ticks %d/%d score %d/%d phase %v/%v",
			g1.tickCount, g2.tickCount, g1.score, g2.score, g1.phase, g2.phase)
	}
	if g1.actorPos != g2.actorPos {
		t.Errorf("actor positions differ: %+v vs %+v", g1.actorPos, g2.actorPos)
	}
	for i := range g1.hazards {
		if g1.hazards[i].pos != g2.hazards[i].pos {
			t.Errorf("hazard %d differs: %+v vs %+v", i, g1.hazards[i].pos, g2.hazards[i].pos)
		}
	}
	for i := range g1.obstacles {
		if g1.obstacles[i] != g2.obstacles[i] {
			t.Fatalf("obstacle %d differs", i)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, nil)
	g.actorPos = g.cfg.Depot.Pos
	g.items[0].pos = g.actorPos
	g.Step(idle())
	if g.score != 1 {
		t.Fatalf("setup: score = %d, expected 1", g.score)
	}

	g.Reset(testRuntime)

	if g.score != 0 || g.tickCount != 0 || g.carrying != -1 {
		t.Errorf("Reset left score %d ticks %d carrying %d", g.score, g.tickCount, g.carrying)
	}
	if g.phase != core.PhaseTitle {
		t.Errorf("Reset phase = %v, expected title", g.phase)
	}
	if g.actorPos != g.cfg.Actor.Spawn {
		t.Errorf("Reset actor = %+v, expected spawn", g.actorPos)
	}
	if len(g.items) != 3 {
		t.Errorf("Reset items = %d, expected 3", len(g.items))
	}
}

func TestPhaseFlow(t *testing.T) {
	g := newTestGame(t, nil)
	g.Reset(testRuntime)

	g.Step(idle())
	if g.phase != core.PhaseTitle {
		t.Fatalf("idle title should stay, got %v", g.phase)
	}
	g.Step(core.NewInputFrame(core.ActionConfirm))
	if g.phase != core.PhaseInstructions {
		t.Fatalf("confirm on title = %v, expected instructions", g.phase)
	}
	g.Step(core.NewInputFrame(core.ActionConfirm))
	if g.phase != core.PhasePlay {
		t.Fatalf("confirm on instructions = %v, expected play", g.phase)
	}
	if g.tickCount != 0 {
		t.Errorf("intro screens should not advance play ticks, got %d", g.tickCount)
	}

	g.Step(core.NewInputFrame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause should toggle on")
	}
	before := g.tickCount
	g.Step(core.NewInputFrame(core.ActionRight))
	if g.tickCount != before || g.actorPos != g.cfg.Actor.Spawn {
		t.Error("paused game should not advance")
	}
	g.Step(core.NewInputFrame(core.ActionPause))
	if g.State().Paused {
		t.Error("pause should toggle off")
	}
}

func TestWinByDelivery(t *testing.T) {
	g := newTestGame(t, nil)
	g.actorPos = g.cfg.Depot.Pos
	for i := range g.items {
		g.items[i].pos = g.actorPos
	}

	for tick := 1; tick <= 3; tick++ {
		res := g.Step(idle())
		if g.score != tick {
			t.Fatalf("after tick %d score = %d", tick, g.score)
		}
		if tick < 3 && res.State.GameOver {
			t.Fatalf("game ended early at tick %d", tick)
		}
	}

	st := g.State()
	if st.Phase != core.PhaseWon || !st.GameOver {
		t.Fatalf("phase = %v, expected won", st.Phase)
	}
	if !g.ignited || g.depotAnim == nil {
		t.Fatal("winning should ignite the depot")
	}

	for range 3 {
		g.Step(idle())
	}
	if !g.depotAnim.Looping {
		t.Error("depot should settle into the lit loop after igniting")
	}
	if g.score != 3 {
		t.Errorf("score changed after winning: %d", g.score)
	}
}

func TestCarryOneAtATime(t *testing.T) {
	g := newTestGame(t, nil)
	g.items[0].pos = g.actorPos
	g.items[1].pos = g.actorPos

	g.Step(idle())
	if g.carrying != 0 {
		t.Fatalf("carrying = %d, expected item 0", g.carrying)
	}
	if g.items[1].collected {
		t.Error("second item picked up while hands were full")
	}

	g.Step(core.NewInputFrame(core.ActionRight))
	want := g.actorPos.Add(g.cfg.Pickups[0].CarryOffset)
	g.Step(idle())
	if g.items[0].pos != want {
		t.Errorf("carried item at %+v, expected %+v", g.items[0].pos, want)
	}
	if g.score != 0 {
		t.Errorf("score = %d before reaching the depot", g.score)
	}
}

func TestInteractPickup(t *testing.T) {
	g := newTestGame(t, func(c *config.ForageConfig) {
		c.Depot = config.DepotConfig{}
		c.Pickups[0].Mode = config.PickupInstant
		c.Pickups[0].RequireInteract = true
		c.Pickups = append(c.Pickups, config.PickupConfig{
			Kind: "book", Label: "books", Count: 1, Size: core.V(0.5, 0.5),
			Region: c.Pickups[0].Region, CatchDistance: 1, Mode: config.PickupInstant,
		})
	})
	g.items[0].pos = g.actorPos
	g.items[1].pos = g.actorPos
	g.items[3].pos = g.actorPos

	g.Step(idle())
	if g.items[0].collected || g.score != 0 {
		t.Fatal("interact item collected without interact")
	}
	if g.extras != 1 || !g.items[3].collected {
		t.Errorf("walk-over extra not collected: extras = %d", g.extras)
	}

	g.Step(core.NewInputFrame(core.ActionInteract))
	if g.score != 1 || !g.items[0].collected {
		t.Fatalf("score = %d after interact, expected 1", g.score)
	}
	if g.items[1].collected {
		t.Error("only one item of a kind should be taken per tick")
	}
	g.Step(core.NewInputFrame(core.ActionInteract))
	if g.score != 2 {
		t.Errorf("score = %d after second interact, expected 2", g.score)
	}
}

func TestCaughtByHazard(t *testing.T) {
	g := newTestGame(t, func(c *config.ForageConfig) {
		c.Hazards.Count = 1
	})
	g.hazards[0].pos = g.actorPos.Add(core.V(0.5, 0))

	g.Step(idle())

	if g.phase != core.PhaseLost {
		t.Fatalf("phase = %v, expected lost", g.phase)
	}
	if !strings.Contains(g.lostReason, "bear") {
		t.Errorf("lost reason = %q, expected it to name the bear", g.lostReason)
	}
}

func TestTimeout(t *testing.T) {
	g := newTestGame(t, func(c *config.ForageConfig) {
		c.Rules.TimeLimitSecs = 1
	})

	for range 9 {
		g.Step(idle())
	}
	if g.phase != core.PhasePlay {
		t.Fatalf("lost before the limit at tick %d", g.tickCount)
	}
	g.Step(idle())
	if g.phase != core.PhaseLost || g.lostReason != "out of time" {
		t.Errorf("phase = %v reason = %q, expected out of time", g.phase, g.lostReason)
	}
}

func TestRestartAfterLoss(t *testing.T) {
	g := newTestGame(t, func(c *config.ForageConfig) {
		c.Rules.TimeLimitSecs = 1
	})
	for range 10 {
		g.Step(idle())
	}
	if !g.State().GameOver {
		t.Fatal("setup: expected the round to be over")
	}

	g.Step(idle())
	if g.phase != core.PhaseLost {
		t.Fatal("idle input should not leave the lose screen")
	}

	g.Step(core.NewInputFrame(core.ActionRestart))
	if g.phase != core.PhasePlay || g.tickCount != 0 || g.score != 0 {
		t.Errorf("restart left phase %v ticks %d score %d", g.phase, g.tickCount, g.score)
	}
}

func TestWorldClamp(t *testing.T) {
	tests := []struct {
		name  string
		start core.Vec2
		in    core.Action
		want  core.Vec2
	}{
		{"right edge pulls back", core.V(38, 10), core.ActionRight, core.V(37.5, 10)},
		{"left edge pulls back", core.V(2, 10), core.ActionLeft, core.V(2.5, 10)},
		{"bottom edge pulls back", core.V(20, 18), core.ActionDown, core.V(20, 17.5)},
		{"top edge pulls back", core.V(20, 2), core.ActionUp, core.V(20, 2.5)},
		{"inside moves", core.V(20, 10), core.ActionUp, core.V(20, 9)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			g.actorPos = tc.start
			g.Step(core.NewInputFrame(tc.in))
			if g.actorPos != tc.want {
				t.Errorf("actor = %+v, expected %+v", g.actorPos, tc.want)
			}
		})
	}
}

func TestClampWinsOverCollision(t *testing.T) {
	g := newTestGame(t, nil)
	// The obstacle pushes the actor right onto the margin; the clamp runs
	// after resolution in the same tick and pulls it back inside.
	g.obstacles = []core.AABB{core.Box(core.V(36.5, 10), core.V(1, 1))}
	g.actorPos = core.V(37.75, 10)

	for range 3 {
		g.Step(core.NewInputFrame(core.ActionRight))
		if g.actorPos.X != 37.5 {
			t.Fatalf("actor x = %v, expected the clamp to hold it at 37.5", g.actorPos.X)
		}
	}
}

func TestActorPushedOutOfObstacle(t *testing.T) {
	g := newTestGame(t, nil)
	ob := core.Box(core.V(22, 10), core.V(1, 1))
	g.obstacles = []core.AABB{ob}
	g.actorPos = core.V(20.75, 10)

	g.Step(idle())

	if g.actorPos.X != 20.5 || g.actorPos.Y != 10 {
		t.Errorf("actor = %+v, expected pushed left to (20.5, 10)", g.actorPos)
	}
	if _, ok := core.Displacement(ob, core.Box(g.actorPos, g.cfg.Actor.Precise)); ok {
		t.Error("actor still overlaps the obstacle")
	}
}

func TestWalkAnimation(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(core.NewInputFrame(core.ActionRight))
	g.Step(core.NewInputFrame(core.ActionRight))
	if g.actorAnim.StateNumber != 2 || g.actorAnim.FacingLeft {
		t.Fatalf("walking right: state %d facing left %v", g.actorAnim.StateNumber, g.actorAnim.FacingLeft)
	}

	g.Step(idle())
	if g.actorAnim.StateNumber != 0 {
		t.Errorf("idle should stop the walk cycle, state = %d", g.actorAnim.StateNumber)
	}

	g.Step(core.NewInputFrame(core.ActionLeft))
	if !g.actorAnim.FacingLeft {
		t.Error("walking left should face left")
	}
	g.Step(core.NewInputFrame(core.ActionUp))
	if !g.actorAnim.FacingLeft {
		t.Error("vertical moves should keep the last facing")
	}
}

func TestActorFacings(t *testing.T) {
	g := newTestGame(t, func(c *config.ForageConfig) {
		c.Atlas[0].Glyphs = []string{"@abclpIJKLBCDEvV^A"}
		c.Actor.Front = config.AnimationConfig{
			Frames:  []anim.SheetRegion{{X: 14, Z: 1, W: 1, H: 1}, {X: 15, Z: 1, W: 1, H: 1}, {X: 14, Z: 1, W: 1, H: 1}},
			Looping: true,
		}
		c.Actor.Back = config.AnimationConfig{
			Frames:  []anim.SheetRegion{{X: 16, Z: 1, W: 1, H: 1}, {X: 17, Z: 1, W: 1, H: 1}, {X: 16, Z: 1, W: 1, H: 1}},
			Looping: true,
		}
	})

	if g.facing != facingFront || g.actorAnim != g.actorViews[facingFront] {
		t.Fatal("a fresh round should face the player")
	}

	tests := []struct {
		name    string
		actions []core.Action
		want    facing
		regionX float64
	}{
		{"up shows the back", []core.Action{core.ActionUp}, facingBack, 17},
		{"left shows the side", []core.Action{core.ActionLeft}, facingSide, 1},
		{"idle keeps the last facing", nil, facingSide, 0},
		{"down beats sideways", []core.Action{core.ActionDown, core.ActionRight}, facingFront, 15},
		{"up beats sideways", []core.Action{core.ActionUp, core.ActionLeft}, facingBack, 17},
	}

	for _, tc := range tests {
		g.Step(core.NewInputFrame(tc.actions...))
		if g.facing != tc.want {
			t.Errorf("%s: facing = %d, expected %d", tc.name, g.facing, tc.want)
		}
		if g.actorAnim != g.actorViews[tc.want] {
			t.Errorf("%s: shown strip does not match the facing", tc.name)
		}
		if got := g.actorAnim.CurrentState().X; tc.want != facingSide && got != tc.regionX {
			t.Errorf("%s: region X = %v, expected %v", tc.name, got, tc.regionX)
		}
	}

	if side := g.actorViews[facingSide]; !side.FacingLeft {
		t.Error("the side strip should remember walking left")
	}
	if g.actorViews[facingFront].StateNumber != 0 {
		t.Errorf("leaving the front strip should rewind it, state = %d", g.actorViews[facingFront].StateNumber)
	}
}

func TestSharedHazardClock(t *testing.T) {
	g := newTestGame(t, func(c *config.ForageConfig) {
		c.Hazards.Count = 3
	})

	screen := core.NewScreen(40, 12)
	for range 5 {
		g.Step(idle())
		g.Render(screen)
	}

	if g.hazardAnim.FrameCounter != 5 {
		t.Errorf("shared clock = %d after 5 ticks, expected 5 regardless of hazard count", g.hazardAnim.FrameCounter)
	}
	for i, h := range g.hazards {
		if h.anim != nil {
			t.Errorf("hazard %d has its own clock under the shared policy", i)
		}
	}
}

func TestInstanceHazardClock(t *testing.T) {
	g := newTestGame(t, func(c *config.ForageConfig) {
		c.Hazards.Count = 2
		c.Hazards.Clock = config.ClockInstance
		c.Hazards.Animation.Rate = 2
	})

	if g.hazards[0].anim.StateNumber != 0 || g.hazards[1].anim.StateNumber != 1 {
		t.Fatalf("phase offsets = %d, %d, expected 0, 1",
			g.hazards[0].anim.StateNumber, g.hazards[1].anim.StateNumber)
	}

	g.Step(idle())
	for i, h := range g.hazards {
		if h.anim.FrameCounter != 1 {
			t.Errorf("hazard %d counter = %d after one tick, expected 1", i, h.anim.FrameCounter)
		}
	}
	if g.hazardAnim.FrameCounter != 0 {
		t.Error("shared clock should stay idle under the instance policy")
	}
}

func TestHazardsMoveOnCadence(t *testing.T) {
	g := newTestGame(t, func(c *config.ForageConfig) {
		c.Hazards.Count = 1
		c.Hazards.MoveEvery = 3
	})
	start := g.hazards[0].pos

	g.Step(idle())
	g.Step(idle())
	if g.hazards[0].pos != start {
		t.Fatal("hazard moved before its cadence")
	}
	g.Step(idle())
	d := g.hazards[0].pos.Sub(start)
	if (d.X != 1 && d.X != -1) || (d.Y != 1 && d.Y != -1) {
		t.Errorf("hazard moved by %+v, expected one diagonal step", d)
	}
}

func TestWanderStaysInWorld(t *testing.T) {
	g := newTestGame(t, func(c *config.ForageConfig) {
		c.Pickups[0].Wander = 0.5
	})
	g.items[0].pos = core.V(1, 1)

	for range 200 {
		g.Step(idle())
	}
	for i, it := range g.items {
		if it.pos.X < 1 || it.pos.X > 39 || it.pos.Y < 1 || it.pos.Y > 19 {
			t.Errorf("item %d wandered out to %+v", i, it.pos)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(40, 12)

	g.Render(screen)
	out := screen.String()
	if !strings.HasPrefix(screen.Row(0), " TEST") {
		t.Errorf("HUD row = %q, expected the title first", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "0/3 logs") {
		t.Errorf("HUD row = %q, expected the goal count", screen.Row(0))
	}
	if !strings.Contains(out, "@") {
		t.Error("actor glyph not drawn")
	}

	g.phase = core.PhaseTitle
	g.Render(screen)
	if !strings.Contains(screen.String(), "TEST") || !strings.Contains(screen.String(), "SPACE") {
		t.Error("title screen should show the title and how to start")
	}

	g.phase = core.PhaseWon
	g.Render(screen)
	if !strings.Contains(screen.String(), "YOU WIN!") {
		t.Error("win screen missing banner")
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	defer func() { difficultyPreset = "" }()

	if err := SetDifficultyPreset("hard"); err != nil {
		t.Fatalf("SetDifficultyPreset(hard) error: %v", err)
	}
	if difficultyPreset != config.DifficultyHard {
		t.Errorf("preset = %q, expected hard", difficultyPreset)
	}
	if err := SetDifficultyPreset("brutal"); err == nil {
		t.Error("unknown preset should fail")
	}
	if err := SetDifficultyPreset(""); err != nil || difficultyPreset != "" {
		t.Error("empty preset should clear the override")
	}
}

func TestNewVariantAppliesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	defer func() { difficultyPreset = "" }()

	tests := []struct {
		preset      string
		wantEnabled bool
		wantLevel   float64
		wantHazards int
	}{
		{"easy", true, 0.0, 1},
		{"normal", true, 0.3, 2},
		{"hard", true, 0.7, 3},
		{"fixed", false, 0.0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			if err := SetDifficultyPreset(tc.preset); err != nil {
				t.Fatal(err)
			}
			g, err := NewVariant("campfire")
			if err != nil {
				t.Fatalf("NewVariant() error: %v", err)
			}
			if g.difficulty.IsEnabled() != tc.wantEnabled {
				t.Errorf("IsEnabled() = %v, expected %v", g.difficulty.IsEnabled(), tc.wantEnabled)
			}
			if got := g.difficulty.Level(0, 0); got != tc.wantLevel {
				t.Errorf("Level() = %v, expected %v", got, tc.wantLevel)
			}
			if g.Config().Hazards.Count != tc.wantHazards {
				t.Errorf("hazards = %d, expected %d", g.Config().Hazards.Count, tc.wantHazards)
			}
		})
	}
}

func TestHUDShowsDanger(t *testing.T) {
	g := newTestGame(t, func(c *config.ForageConfig) {
		c.Hazards.Count = 1
		c.Difficulty = config.DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression:  config.ProgressionConfig{Type: "score", MaxAt: 3},
		}
	})
	screen := core.NewScreen(40, 12)

	g.Render(screen)
	if !strings.Contains(screen.Row(0), "danger 30%") {
		t.Errorf("HUD row = %q, expected the danger level", screen.Row(0))
	}

	g.difficulty.SetEnabled(false)
	g.Render(screen)
	if strings.Contains(screen.Row(0), "danger") {
		t.Errorf("HUD row = %q, expected no danger level when progression is off", screen.Row(0))
	}
}

func TestFacts(t *testing.T) {
	cfg := testConfig()
	cfg.Hazards.Count = 2
	cfg.Rules.TimeLimitSecs = 90

	want := map[string]string{
		"Goal":       "3 logs to the pit",
		"Hazards":    "bear x2",
		"Time limit": "1:30",
		"World":      "40x20",
	}
	got := facts(cfg)
	if len(got) != len(want) {
		t.Fatalf("facts() returned %d facts, expected %d", len(got), len(want))
	}
	for _, f := range got {
		if want[f.Name] != f.Value {
			t.Errorf("fact %s = %q, expected %q", f.Name, f.Value, want[f.Name])
		}
	}
}
