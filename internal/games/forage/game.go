// Package forage implements top-down "collect items, avoid hazards" games.
// One Game type runs every variant; what differs between campfire and
// alchemist lives entirely in their YAML configs.
package forage

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-forage/internal/anim"
	"github.com/vovakirdan/tui-forage/internal/collision"
	"github.com/vovakirdan/tui-forage/internal/config"
	"github.com/vovakirdan/tui-forage/internal/core"
	"github.com/vovakirdan/tui-forage/internal/registry"
	"github.com/vovakirdan/tui-forage/internal/sprite"
)

// item is one placed collectible.
type item struct {
	kind      int // index into cfg.Pickups
	pos       core.Vec2
	collected bool // picked up, carried or delivered
}

// hazard is one roaming danger. anim is nil when hazards share a clock.
type hazard struct {
	pos  core.Vec2
	anim *anim.Animation
}

// facing selects which actor strip is shown.
type facing int

const (
	facingFront facing = iota // moved down last
	facingBack                // moved up last
	facingSide                // moved sideways last, mirrored for left
)

// Game implements a forage variant.
type Game struct {
	cfg        config.ForageConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	resolver   *collision.Resolver

	phase      core.Phase
	paused     bool
	tickCount  int    // ticks spent in play
	score      int    // goal items counted
	extras     int    // non-goal items collected
	lostReason string // shown on the lose screen

	actorPos   core.Vec2
	facing     facing
	actorAnim  *anim.Animation    // strip for the current facing
	actorViews [3]*anim.Animation // indexed by facing, may share the side strip
	obstacles  []core.AABB
	items     []item
	carrying  int // index into items, -1 when empty-handed

	hazards    []hazard
	hazardAnim *anim.Animation // shared hazard clock

	ignited   bool
	depotAnim *anim.Animation // ignite strip, then the lit loop

	atlas  *sprite.Atlas
	group  *sprite.Group
	slots  slotRanges
	camera sprite.Camera
}

// slotRanges are the sprite group ranges reserved per entity kind.
type slotRanges struct {
	depot     sprite.Range
	obstacles sprite.Range
	items     sprite.Range
	hazards   sprite.Range
	actor     sprite.Range
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. The empty string keeps
// whatever the variant config says.
func SetDifficultyPreset(preset string) error {
	if preset == "" {
		difficultyPreset = ""
		return nil
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetLogger routes game event logging. Games log nothing by default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a game for an already loaded variant config.
func New(cfg config.ForageConfig) (*Game, error) {
	atlas, err := cfg.BuildAtlas()
	if err != nil {
		return nil, fmt.Errorf("forage %s: %w", cfg.ID, err)
	}

	total := 0
	for _, p := range cfg.Pickups {
		total += p.Count
	}
	group := sprite.NewGroup(1 + cfg.Obstacles.Count + total + cfg.Hazards.Count + 1)

	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		resolver:   collision.New(cfg.Actor.Probe, cfg.Actor.Precise, cfg.Collision.Steps),
		atlas:      atlas,
		group:      group,
		carrying:   -1,
	}
	if cfg.Collision.Epsilon > 0 {
		g.resolver.Epsilon = cfg.Collision.Epsilon
	}

	// Lower ranges draw first when regions share a Z.
	reserve := []struct {
		name string
		n    int
		dst  *sprite.Range
	}{
		{"depot", 1, &g.slots.depot},
		{"obstacles", cfg.Obstacles.Count, &g.slots.obstacles},
		{"items", total, &g.slots.items},
		{"hazards", cfg.Hazards.Count, &g.slots.hazards},
		{"actor", 1, &g.slots.actor},
	}
	for _, r := range reserve {
		rng, err := group.Reserve(r.name, r.n)
		if err != nil {
			return nil, fmt.Errorf("forage %s: %w", cfg.ID, err)
		}
		*r.dst = rng
	}

	return g, nil
}

// NewVariant loads a variant's config using the CLI config path and
// difficulty preset, then creates the game.
func NewVariant(variant string) (*Game, error) {
	cfg, err := config.Load(variant, configPath)
	if err != nil {
		return nil, err
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if difficultyPreset != "" {
		g.applyPreset(difficultyPreset)
	}
	return g, nil
}

// applyPreset sets where hazard progression starts, or freezes it.
func (g *Game) applyPreset(preset config.DifficultyPreset) {
	g.difficulty.SetEnabled(!config.IsFixedPreset(preset))
	g.difficulty.SetInitialLevel(config.InitialLevelForPreset(preset))
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.cfg.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Title
}

// Config returns the variant config the game runs with.
func (g *Game) Config() config.ForageConfig {
	return g.cfg
}

// Reset initializes or restarts the game on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.phase = core.PhaseTitle
	g.paused = false
	g.tickCount = 0
	g.score = 0
	g.extras = 0
	g.lostReason = ""
	g.carrying = -1
	g.ignited = false
	g.depotAnim = nil

	g.actorPos = g.cfg.Actor.Spawn
	g.buildActorViews()
	g.hazardAnim = g.cfg.Hazards.Animation.Build()

	g.placeWorld()

	g.camera.Size = core.V(float64(runtime.ScreenW), float64(max(0, runtime.ScreenH-hudRows)))
	g.camera.Follow(g.actorPos, g.cfg.World.Size())
}

// buildActorViews creates the actor strips and faces the player.
// Front and back fall back to the side strip when they have no frames.
func (g *Game) buildActorViews() {
	a := g.cfg.Actor
	side := a.Animation.Build()
	g.actorViews = [3]*anim.Animation{side, side, side}
	if len(a.Front.Frames) > 0 {
		g.actorViews[facingFront] = a.Front.Build()
	}
	if len(a.Back.Frames) > 0 {
		g.actorViews[facingBack] = a.Back.Build()
	}
	g.facing = facingFront
	g.actorAnim = g.actorViews[facingFront]
}

// face switches the shown actor strip, rewinding the one being left.
func (g *Game) face(f facing) {
	g.facing = f
	next := g.actorViews[f]
	if next != g.actorAnim {
		g.actorAnim.Restart()
		g.actorAnim = next
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseTitle:
		if in.Has(core.ActionConfirm) {
			g.setPhase(core.PhaseInstructions)
		}

	case core.PhaseInstructions:
		if in.Has(core.ActionConfirm) {
			g.setPhase(core.PhasePlay)
		}

	case core.PhasePlay:
		// Handle pause toggle
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.play(in)
		}

	case core.PhaseWon, core.PhaseLost:
		if in.Has(core.ActionRestart) {
			g.restart()
			break
		}
		// The fire keeps burning behind the win banner.
		g.tickDepot()
	}

	return core.StepResult{State: g.State()}
}

// restart starts a fresh round straight into play, reseeded from the
// current generator so replays stay deterministic.
func (g *Game) restart() {
	runtime := g.runtime
	runtime.Seed = g.rng.Int63()
	g.Reset(runtime)
	g.setPhase(core.PhasePlay)
}

func (g *Game) setPhase(p core.Phase) {
	if g.phase == p {
		return
	}
	logger.Debug("phase", "game", g.cfg.ID, "from", g.phase, "to", p)
	g.phase = p
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseWon || g.phase == core.PhaseLost,
		Paused:   g.paused,
	}
}

// facts summarizes a variant for the menu.
func facts(cfg config.ForageConfig) []registry.Fact {
	goal := fmt.Sprintf("%d items", cfg.Rules.Goal)
	for _, p := range cfg.Pickups {
		if p.Goal {
			goal = fmt.Sprintf("%d %s", cfg.Rules.Goal, p.Label)
			break
		}
	}
	if cfg.Depot.Enabled() {
		goal += " to the " + cfg.Depot.Label
	}

	hazards := "none"
	if cfg.Hazards.Count > 0 {
		hazards = fmt.Sprintf("%s x%d", cfg.Hazards.Label, cfg.Hazards.Count)
	}

	limit := "none"
	if s := cfg.Rules.TimeLimitSecs; s > 0 {
		limit = fmt.Sprintf("%d:%02d", s/60, s%60)
	}

	return []registry.Fact{
		{Name: "Goal", Value: goal},
		{Name: "Hazards", Value: hazards},
		{Name: "Time limit", Value: limit},
		{Name: "World", Value: fmt.Sprintf("%gx%g", cfg.World.Width, cfg.World.Height)},
	}
}

// Register every embedded variant with the registry
func init() {
	for _, id := range config.Variants() {
		cfg, err := config.LoadEmbedded(id)
		if err != nil {
			continue
		}
		info := registry.GameInfo{ID: id, Title: cfg.Title, Blurb: cfg.Blurb, Facts: facts(cfg)}
		registry.Register(info, func() (registry.Game, error) {
			g, err := NewVariant(id)
			if err != nil {
				return nil, err
			}
			return g, nil
		})
	}
}
