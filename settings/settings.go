package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/oomph-ac/milieu/actor"
	"github.com/pelletier/go-toml/v2"
)

// Settings contains everything that can be configured for a milieu session and its host.
type Settings struct {
	Actor actor.Tuning `toml:"actor"`
	Tool  Tool         `toml:"tool"`
	World World        `toml:"world"`
	Host  Host         `toml:"host"`
}

// Tool holds the settings of the mining and placing tool.
type Tool struct {
	// Cooldown is the amount of seconds between two edits while the tool is held.
	Cooldown float64 `toml:"interaction_cooldown"`
	// HighlightFactor is the light multiplier applied to the targeted block.
	HighlightFactor float32 `toml:"highlight_factor"`
	// Reach is the maximum distance at which blocks can be targeted.
	Reach float64 `toml:"reach"`
}

// World holds the settings of the start-up world.
type World struct {
	Seed int64 `toml:"seed"`
	// CarveMin and CarveMax bound the region revealed when a session starts. CarveMax is exclusive.
	CarveMin [3]int `toml:"carve_min"`
	CarveMax [3]int `toml:"carve_max"`
	// PlayerStart is the position the actor is spawned at.
	PlayerStart [3]float64 `toml:"player_start"`
	// PassUnexplored lets the actor move through voxels of chunks that were never generated.
	PassUnexplored bool `toml:"pass_unexplored"`
}

// Host holds the settings of the headless host loop.
type Host struct {
	// TickRate is the amount of ticks simulated per second.
	TickRate int `toml:"tick_rate"`
	// Ticks is the amount of ticks to run before exiting. Zero runs until interrupted.
	Ticks int `toml:"ticks"`
	// MetricsAddr is the address Prometheus metrics are served on. Empty disables the endpoint.
	MetricsAddr string `toml:"metrics_addr"`
	// StatsViewer enables the runtime statistics viewer.
	StatsViewer bool `toml:"stats_viewer"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Actor: actor.DefaultTuning(),
		Tool: Tool{
			Cooldown:        0.1,
			HighlightFactor: 1.5,
			Reach:           10,
		},
		World: World{
			Seed:        0,
			CarveMin:    [3]int{-6, 0, -6},
			CarveMax:    [3]int{6, 7, 6},
			PlayerStart: [3]float64{0, 0, 3},
		},
		Host: Host{
			TickRate: 60,
		},
	}
}

// Load reads the settings at the path passed. If no file exists there yet, the default settings are
// written to it and returned.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := Save(path, s); err != nil {
			return Settings{}, err
		}
		return s, nil
	} else if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save encodes the settings passed and writes them to path.
func Save(path string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Validate returns an error if the settings cannot be used to run a session.
func (s Settings) Validate() error {
	if s.Tool.Cooldown < 0 {
		return fmt.Errorf("tool cooldown must not be negative, got %v", s.Tool.Cooldown)
	}
	if s.Tool.Reach <= 0 {
		return fmt.Errorf("tool reach must be positive, got %v", s.Tool.Reach)
	}
	if s.Host.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %v", s.Host.TickRate)
	}
	if s.Actor.HitboxHeightCrawl > s.Actor.HitboxHeight {
		return fmt.Errorf("crawling hitbox (%v) is taller than standing hitbox (%v)", s.Actor.HitboxHeightCrawl, s.Actor.HitboxHeight)
	}
	for i := range 3 {
		if s.World.CarveMin[i] > s.World.CarveMax[i] {
			return fmt.Errorf("carve region is inverted on axis %d", i)
		}
	}
	return nil
}
