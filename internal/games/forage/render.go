package forage

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-forage/internal/core"
	"github.com/vovakirdan/tui-forage/internal/sprite"
)

// hudRows is the number of screen rows above the world viewport.
const hudRows = 1

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case core.PhaseTitle:
		g.drawTitle(dst)
		return
	case core.PhaseInstructions:
		g.drawInstructions(dst)
		return
	}

	g.camera.Size = core.V(float64(dst.Width()), float64(max(0, dst.Height()-hudRows)))
	g.camera.Follow(g.actorPos, g.cfg.World.Size())

	g.drawGround(dst)
	g.fillSlots()
	sprite.Draw(dst, g.group, g.atlas, g.camera, hudRows)
	g.drawHUD(dst)

	switch {
	case g.phase == core.PhaseWon:
		g.drawCenteredMessage(dst, core.ColorBrightGreen, "YOU WIN!", g.winLine(), "R to play again  |  Q to quit")
	case g.phase == core.PhaseLost:
		g.drawCenteredMessage(dst, core.ColorBrightRed, "GAME OVER", capitalize(g.lostReason)+".", "R to try again  |  Q to quit")
	case g.paused:
		g.drawCenteredMessage(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	}
}

// fillSlots writes every visible entity into its sprite slot.
func (g *Game) fillSlots() {
	cfg := g.cfg
	g.group.Reset()

	if cfg.Depot.Enabled() {
		region := cfg.Depot.Region
		if g.depotAnim != nil {
			region = g.depotAnim.CurrentState()
		}
		g.group.Set(g.slots.depot.Index(0), core.Box(cfg.Depot.Pos, cfg.Depot.Size), region)
	}

	for i, ob := range g.obstacles {
		g.group.Set(g.slots.obstacles.Index(i), core.Box(ob.Center, cfg.Obstacles.Size), cfg.Obstacles.Region)
	}

	for i, it := range g.items {
		if it.collected && i != g.carrying {
			continue
		}
		pc := cfg.Pickups[it.kind]
		g.group.Set(g.slots.items.Index(i), core.Box(it.pos, pc.Size), pc.Region)
	}

	for i, h := range g.hazards {
		a := g.hazardAnim
		if h.anim != nil {
			a = h.anim
		}
		g.group.Set(g.slots.hazards.Index(i), core.Box(h.pos, cfg.Hazards.Size), a.CurrentState())
	}

	g.group.Set(g.slots.actor.Index(0), core.Box(g.actorPos, cfg.Actor.Size), g.actorAnim.CurrentState())
}

// drawGround scatters the world's ground glyph under the viewport.
func (g *Game) drawGround(dst *core.Screen) {
	w := g.cfg.World
	if w.Ground == "" {
		return
	}
	glyph, _ := utf8.DecodeRuneInString(w.Ground)
	tint, err := core.ParseColor(w.GroundTint)
	if err != nil {
		tint = core.ColorDefault
	}

	ox := int(math.Round(g.camera.Pos.X))
	oy := int(math.Round(g.camera.Pos.Y))
	for sy := range int(g.camera.Size.Y) {
		wy := oy + sy
		if wy >= int(w.Height) {
			break
		}
		for sx := range int(g.camera.Size.X) {
			wx := ox + sx
			if wx >= int(w.Width) {
				break
			}
			if (wx*7+wy*13+wx*wy)%17 == 0 {
				dst.SetColor(sx, sy+hudRows, glyph, tint)
			}
		}
	}
}

// drawHUD writes the status line above the viewport.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')

	var parts []string
	parts = append(parts, fmt.Sprintf("%d/%d %s", g.score, g.cfg.Rules.Goal, g.goalLabel()))
	if g.extras > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", g.extras, g.extraLabel()))
	}
	if g.carrying >= 0 {
		parts = append(parts, "carrying "+g.cfg.Pickups[g.items[g.carrying].kind].Kind)
	}
	if len(g.hazards) > 0 && g.difficulty.IsEnabled() {
		level := g.difficulty.Level(g.score, g.tickCount)
		parts = append(parts, fmt.Sprintf("danger %d%%", int(math.Round(level*100))))
	}
	if limit := g.limitTicks(); limit > 0 {
		left := max(0, limit-g.tickCount) / g.runtime.TickRate
		parts = append(parts, fmt.Sprintf("%d:%02d", left/60, left%60))
	}

	dst.DrawTextColor(1, 0, g.cfg.Title, core.ColorYellow)
	dst.DrawText(utf8.RuneCountInString(g.cfg.Title)+3, 0, strings.Join(parts, "  |  "))

	status := g.phase.String()
	if g.paused {
		status = "paused"
	}
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(status)-1, 0, status, core.ColorGray)
}

// goalLabel names the items that count toward the goal.
func (g *Game) goalLabel() string {
	for _, pc := range g.cfg.Pickups {
		if pc.Goal {
			return pc.Label
		}
	}
	return "items"
}

// extraLabel names the collectibles that do not count toward the goal.
func (g *Game) extraLabel() string {
	for _, pc := range g.cfg.Pickups {
		if !pc.Goal {
			return pc.Label
		}
	}
	return "extras"
}

func (g *Game) winLine() string {
	if g.cfg.Depot.Enabled() {
		return fmt.Sprintf("The %s is lit.", g.cfg.Depot.Label)
	}
	return fmt.Sprintf("You gathered %d %s.", g.score, g.goalLabel())
}

func (g *Game) drawTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, g.cfg.Title)
	dst.DrawTextCentered(mid, g.cfg.Blurb)
	dst.DrawTextCentered(mid+2, "Press SPACE to begin")
}

func (g *Game) drawInstructions(dst *core.Screen) {
	lines := g.cfg.Instructions
	top := max(1, (dst.Height()-len(lines)-4)/2)

	dst.DrawTextCentered(top, "HOW TO PLAY")
	for i, line := range lines {
		dst.DrawTextCentered(top+2+i, line)
	}
	dst.DrawTextCentered(top+3+len(lines), "Press SPACE to play")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, color core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	textW := utf8.RuneCountInString(title)
	for _, l := range lines {
		textW = max(textW, utf8.RuneCountInString(l))
	}
	boxW := textW + 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-utf8.RuneCountInString(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, color)

	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, boxY+3+i, l)
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}
