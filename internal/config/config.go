// Package config provides YAML-based variant configuration loading and
// difficulty management for the forage games.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-forage/internal/anim"
	"github.com/vovakirdan/tui-forage/internal/core"
)

// ForageConfig describes one game variant: the world, the actor, what can be
// picked up, what must be avoided and how the round is won.
type ForageConfig struct {
	ID           string           `yaml:"id"`
	Title        string           `yaml:"title"`
	Blurb        string           `yaml:"blurb"`
	Instructions []string         `yaml:"instructions"`
	World        WorldConfig      `yaml:"world"`
	Actor        ActorConfig      `yaml:"actor"`
	Collision    CollisionConfig  `yaml:"collision"`
	Obstacles    ObstacleConfig   `yaml:"obstacles"`
	Pickups      []PickupConfig   `yaml:"pickups"`
	Depot        DepotConfig      `yaml:"depot"`
	Hazards      HazardConfig     `yaml:"hazards"`
	Rules        RulesConfig      `yaml:"rules"`
	Difficulty   DifficultyConfig `yaml:"difficulty"`
	Atlas        []PageConfig     `yaml:"atlas"`
}

// WorldConfig defines the playable area in cells.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Margin     float64 `yaml:"margin"` // actor clamp threshold from each edge
	Nudge      float64 `yaml:"nudge"`  // how far past the threshold a clamped actor lands
	Ground     string  `yaml:"ground"` // scattered background glyph, empty for none
	GroundTint string  `yaml:"ground_tint"`
}

// Size returns the world extent as a vector.
func (w WorldConfig) Size() core.Vec2 {
	return core.V(w.Width, w.Height)
}

// AnimationConfig is a sprite strip and its playback settings.
type AnimationConfig struct {
	Frames      []anim.SheetRegion `yaml:"frames"`
	Rate        int                `yaml:"rate"`
	Looping     bool               `yaml:"looping"`
	SpriteWidth float64            `yaml:"sprite_width"`
}

// Build creates a fresh animation with its own copy of the frames.
func (a AnimationConfig) Build() *anim.Animation {
	frames := append([]anim.SheetRegion(nil), a.Frames...)
	return anim.New(frames, a.Rate, a.Looping, a.SpriteWidth)
}

// ActorConfig defines the player-controlled character.
// Animation is the side view, mirrored when walking left. Front and Back are
// shown after moving down or up; a strip without frames falls back to the
// side view.
type ActorConfig struct {
	Spawn     core.Vec2       `yaml:"spawn"`
	Speed     float64         `yaml:"speed"`   // cells per movement tick
	Probe     core.Vec2       `yaml:"probe"`   // half-extent for finding contacts
	Precise   core.Vec2       `yaml:"precise"` // half-extent for pushing out
	Size      core.Vec2       `yaml:"size"`    // drawn half-extent
	Animation AnimationConfig `yaml:"animation"`
	Front     AnimationConfig `yaml:"front"`
	Back      AnimationConfig `yaml:"back"`
}

// CollisionConfig tunes the obstacle resolver.
type CollisionConfig struct {
	Steps   int     `yaml:"steps"`
	Epsilon float64 `yaml:"epsilon"` // 0 selects the resolver default
}

// ObstacleConfig places static blockers at random on reset.
type ObstacleConfig struct {
	Count     int              `yaml:"count"`
	Half      core.Vec2        `yaml:"half"` // collision half-extent
	Size      core.Vec2        `yaml:"size"` // drawn half-extent
	Region    anim.SheetRegion `yaml:"region"`
	Clearance float64          `yaml:"clearance"` // kept free around spawn and depot
}

// PickupMode controls what happens when the actor reaches an item.
type PickupMode string

const (
	PickupCarry   PickupMode = "carry"   // held one at a time, counted at the depot
	PickupInstant PickupMode = "instant" // counted on the spot
)

// PickupConfig defines one kind of collectible.
type PickupConfig struct {
	Kind            string           `yaml:"kind"`
	Label           string           `yaml:"label"`
	Count           int              `yaml:"count"`
	Size            core.Vec2        `yaml:"size"`
	Region          anim.SheetRegion `yaml:"region"`
	CatchDistance   float64          `yaml:"catch_distance"`
	Mode            PickupMode       `yaml:"mode"`
	RequireInteract bool             `yaml:"require_interact"`
	Wander          float64          `yaml:"wander"`       // max drift per tick, 0 keeps it still
	CarryOffset     core.Vec2        `yaml:"carry_offset"` // position relative to the actor while held
	Goal            bool             `yaml:"goal"`         // counts toward rules.goal
}

// DepotConfig defines where carried items are delivered.
// A zero radius means the variant has no depot.
type DepotConfig struct {
	Label  string           `yaml:"label"`
	Pos    core.Vec2        `yaml:"pos"`
	Radius float64          `yaml:"radius"`
	Size   core.Vec2        `yaml:"size"`
	Region anim.SheetRegion `yaml:"region"` // drawn before ignition
	Ignite AnimationConfig  `yaml:"ignite"` // one-shot, played when the goal is met
	Lit    AnimationConfig  `yaml:"lit"`    // loop after ignition
}

// Enabled reports whether the variant has a depot.
func (d DepotConfig) Enabled() bool {
	return d.Radius > 0
}

// Clock selects who owns a hazard's animation clock.
type Clock string

const (
	ClockShared   Clock = "shared"   // one animation, same frame for every hazard
	ClockInstance Clock = "instance" // per-hazard clone with a phase offset
)

// HazardConfig defines the roaming things that end the round on contact.
type HazardConfig struct {
	Label         string          `yaml:"label"`
	Count         int             `yaml:"count"`
	Size          core.Vec2       `yaml:"size"`
	CatchDistance float64         `yaml:"catch_distance"`
	MoveEvery     int             `yaml:"move_every"` // ticks between steps
	Step          float64         `yaml:"step"`
	Clock         Clock           `yaml:"clock"`
	Animation     AnimationConfig `yaml:"animation"`
}

// RulesConfig defines how a round ends.
type RulesConfig struct {
	Goal          int `yaml:"goal"`
	TimeLimitSecs int `yaml:"time_limit_secs"` // 0 for no limit
}

// PageConfig is one atlas page as glyph rows with matching tint rows.
// Palette maps a single tint rune to a colour name.
type PageConfig struct {
	Glyphs  []string          `yaml:"glyphs"`
	Tints   []string          `yaml:"tints"`
	Palette map[string]string `yaml:"palette"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to hazard step at max difficulty
	CadenceReduction int     `yaml:"cadence_reduction"` // Ticks removed from hazard move_every at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset resolves a preset name, accepting the empty string as normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
