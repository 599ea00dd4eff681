package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"inventory-game/internal/model"

	"gopkg.in/yaml.v3"
)

// Classic game defaults, applied to zero-valued fields so configs stay
// concise.
const (
	DefaultHorizon                = 30
	DefaultUnitCost               = 100.0
	DefaultAnnualHoldingRatePct   = 20.0
	DefaultShortagePenaltyPerUnit = 20.0

	DefaultDemandSeed = 42
	DefaultDemandLow  = 30
	DefaultDemandHigh = 100
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load game parameters from a separate YAML (e.g. examples/games/*.yaml).
	// If both GameFile and Game are provided, Game overrides GameFile.
	GameFile string       `yaml:"game_file"`
	Game     GameConfig   `yaml:"game"`
	Demand   DemandConfig `yaml:"demand"`
}

type GameConfig struct {
	Name                   string  `yaml:"name"`
	Horizon                int     `yaml:"horizon"`
	UnitCost               float64 `yaml:"unit_cost"`
	AnnualHoldingRatePct   float64 `yaml:"annual_holding_rate_pct"`
	ShortagePenaltyPerUnit float64 `yaml:"shortage_penalty_per_unit"`
	StartingInventory      float64 `yaml:"starting_inventory"`
}

// DemandConfig selects where demand comes from: a fixed CSV file or a
// seeded random range. An omitted or zero seed takes the classic default;
// files that need seed 0 itself should go through the API, where the seed
// field carries presence.
type DemandConfig struct {
	Mode string `yaml:"mode"` // "fixed" or "random"
	File string `yaml:"file"` // fixed mode: CSV with a "demand" column
	Seed int64  `yaml:"seed"` // 0 means DefaultDemandSeed
	Low  int    `yaml:"low"`
	High int    `yaml:"high"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not default or validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If game_file is set, load it and merge in any explicit overrides from c.Game.
	if c.GameFile != "" {
		gamePath := c.GameFile
		if !filepath.IsAbs(gamePath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), gamePath)
			if _, err := os.Stat(cand); err == nil {
				gamePath = cand
			}
		}
		loaded, err := loadGameFile(gamePath)
		if err != nil {
			return nil, err
		}
		c.Game = MergeGame(loaded, c.Game)
	}
	return &c, nil
}

// ApplyDefaults fills zero-valued fields with the classic game settings.
func (c *Config) ApplyDefaults() {
	if c.Game.Horizon == 0 {
		c.Game.Horizon = DefaultHorizon
	}
	if c.Game.UnitCost == 0 {
		c.Game.UnitCost = DefaultUnitCost
	}
	if c.Game.AnnualHoldingRatePct == 0 {
		c.Game.AnnualHoldingRatePct = DefaultAnnualHoldingRatePct
	}
	if c.Game.ShortagePenaltyPerUnit == 0 {
		c.Game.ShortagePenaltyPerUnit = DefaultShortagePenaltyPerUnit
	}
	if c.Demand.Mode == "" {
		c.Demand.Mode = "random"
	}
	if c.Demand.Mode == "random" {
		if c.Demand.Seed == 0 {
			c.Demand.Seed = DefaultDemandSeed
		}
		if c.Demand.Low == 0 && c.Demand.High == 0 {
			c.Demand.Low = DefaultDemandLow
			c.Demand.High = DefaultDemandHigh
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Game.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("game config invalid: %w", err)
	}
	switch c.Demand.Mode {
	case "fixed":
		if c.Demand.File == "" {
			return errors.New("demand.file is required in fixed mode")
		}
	case "random":
		if c.Demand.High < c.Demand.Low {
			return fmt.Errorf("demand range invalid: high (%d) < low (%d)", c.Demand.High, c.Demand.Low)
		}
		if c.Demand.Low < 0 {
			return fmt.Errorf("demand.low must be >= 0, got %d", c.Demand.Low)
		}
	default:
		return fmt.Errorf("unsupported demand.mode: %q", c.Demand.Mode)
	}
	return nil
}

func (g GameConfig) ToModelParams() model.GameParams {
	return model.GameParams{
		Horizon:                g.Horizon,
		UnitCost:               g.UnitCost,
		AnnualHoldingRatePct:   g.AnnualHoldingRatePct,
		ShortagePenaltyPerUnit: g.ShortagePenaltyPerUnit,
		StartingInventory:      g.StartingInventory,
	}
}

type gameFileWrapper struct {
	Game GameConfig `yaml:"game"`
}

func loadGameFile(path string) (GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, err
	}
	var w gameFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return GameConfig{}, err
	}
	return w.Game, nil
}

// MergeGame overlays non-zero fields from override onto base.
// This is used when loading a game preset file and then applying overrides
// from the request.
func MergeGame(base, override GameConfig) GameConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Horizon != 0 {
		out.Horizon = override.Horizon
	}
	if override.UnitCost != 0 {
		out.UnitCost = override.UnitCost
	}
	if override.AnnualHoldingRatePct != 0 {
		out.AnnualHoldingRatePct = override.AnnualHoldingRatePct
	}
	if override.ShortagePenaltyPerUnit != 0 {
		out.ShortagePenaltyPerUnit = override.ShortagePenaltyPerUnit
	}
	if override.StartingInventory != 0 {
		out.StartingInventory = override.StartingInventory
	}
	return out
}
