package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eaglepython/eagle-sub001/internal/modules/career"
	"github.com/eaglepython/eagle-sub001/internal/modules/discipline"
	"github.com/eaglepython/eagle-sub001/internal/modules/finance"
	"github.com/eaglepython/eagle-sub001/internal/modules/health"
	"github.com/eaglepython/eagle-sub001/internal/modules/integrator"
	"github.com/eaglepython/eagle-sub001/internal/modules/psychology"
	"github.com/eaglepython/eagle-sub001/internal/modules/trading"
)

// Thresholds groups the rule constants of every module
type Thresholds struct {
	Discipline discipline.Thresholds `yaml:"discipline"`
	Health     health.Thresholds     `yaml:"health"`
	Trading    trading.Thresholds    `yaml:"trading"`
	Career     career.Thresholds     `yaml:"career"`
	Finance    finance.Thresholds    `yaml:"finance"`
	Psychology psychology.Thresholds `yaml:"psychology"`
	Integrator integrator.Thresholds `yaml:"integrator"`
}

// DefaultThresholds returns the built-in thresholds of every module
func DefaultThresholds() Thresholds {
	return Thresholds{
		Discipline: discipline.DefaultThresholds(),
		Health:     health.DefaultThresholds(),
		Trading:    trading.DefaultThresholds(),
		Career:     career.DefaultThresholds(),
		Finance:    finance.DefaultThresholds(),
		Psychology: psychology.DefaultThresholds(),
		Integrator: integrator.DefaultThresholds(),
	}
}

// LoadThresholds overlays the YAML file at path onto the defaults. Keys absent
// from the file keep their default. An empty path returns the defaults.
func LoadThresholds(path string) (Thresholds, error) {
	th := DefaultThresholds()
	if path == "" {
		return th, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return th, fmt.Errorf("failed to read thresholds file: %w", err)
	}
	if err := yaml.Unmarshal(content, &th); err != nil {
		return DefaultThresholds(), fmt.Errorf("failed to parse thresholds file %s: %w", path, err)
	}
	return th, nil
}

// Deps builds every analyzer from the thresholds
func (t Thresholds) Deps() integrator.Deps {
	return integrator.Deps{
		Discipline: discipline.New(t.Discipline),
		Health:     health.New(t.Health),
		Trading:    trading.New(t.Trading),
		Career:     career.New(t.Career),
		Finance:    finance.New(t.Finance),
		Coach:      psychology.New(t.Psychology),
	}
}
