package config

import (
	"fmt"
	"path/filepath"

	"inventory-game/internal/demand"
)

// BuildSource constructs the demand source the config describes. baseDir
// resolves a relative demand.file (usually the config file's directory).
func (c *Config) BuildSource(baseDir string) (demand.Source, error) {
	switch c.Demand.Mode {
	case "fixed":
		path := c.Demand.File
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		series, err := demand.LoadSeriesCSV(path)
		if err != nil {
			return nil, err
		}
		return demand.NewFixedSource(series, c.Game.Horizon)
	case "random":
		return demand.NewRandomSource(c.Demand.Seed, c.Demand.Low, c.Demand.High, c.Game.Horizon)
	default:
		return nil, fmt.Errorf("unsupported demand.mode: %q", c.Demand.Mode)
	}
}
