package fjsio

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"fjsslga/internal/fjsp/rl"
	"fjsslga/internal/fjsp/slga"
)

// runConfigDoc mirrors slga.Config field-for-field; kept separate so the
// YAML tags live at the boundary instead of leaking onto the algorithm's
// own config type.
type runConfigDoc struct {
	PopSize              int     `yaml:"pop_size"`
	MaxGen               int     `yaml:"max_gen"`
	Pr                   float64 `yaml:"pr"`
	MaxNoImprovementGens int     `yaml:"max_no_improvement_gens"`
	Seed                 int64   `yaml:"seed"`
	PhaseSwitchFactor    int     `yaml:"phase_switch_factor"`

	RL struct {
		PcMin   float64 `yaml:"pc_min,omitempty"`
		PcMax   float64 `yaml:"pc_max,omitempty"`
		PmMin   float64 `yaml:"pm_min,omitempty"`
		PmMax   float64 `yaml:"pm_max,omitempty"`
		Epsilon float64 `yaml:"epsilon"`
		Alpha   float64 `yaml:"alpha"`
		Gamma   float64 `yaml:"gamma"`
	} `yaml:"rl"`
}

func fromConfig(c slga.Config) runConfigDoc {
	var doc runConfigDoc
	doc.PopSize = c.PopSize
	doc.MaxGen = c.MaxGen
	doc.Pr = c.Pr
	doc.MaxNoImprovementGens = c.MaxNoImprovementGens
	doc.Seed = c.Seed
	doc.PhaseSwitchFactor = c.PhaseSwitchFactor
	doc.RL.PcMin, doc.RL.PcMax = c.RL.PcMin, c.RL.PcMax
	doc.RL.PmMin, doc.RL.PmMax = c.RL.PmMin, c.RL.PmMax
	doc.RL.Epsilon = c.RL.Epsilon
	doc.RL.Alpha = c.RL.Alpha
	doc.RL.Gamma = c.RL.Gamma
	return doc
}

func (doc runConfigDoc) toConfig() slga.Config {
	return slga.Config{
		PopSize:              doc.PopSize,
		MaxGen:               doc.MaxGen,
		Pr:                   doc.Pr,
		MaxNoImprovementGens: doc.MaxNoImprovementGens,
		Seed:                 doc.Seed,
		PhaseSwitchFactor:    doc.PhaseSwitchFactor,
		RL: rl.Config{
			PcMin: doc.RL.PcMin, PcMax: doc.RL.PcMax,
			PmMin: doc.RL.PmMin, PmMax: doc.RL.PmMax,
			Epsilon: doc.RL.Epsilon,
			Alpha:   doc.RL.Alpha,
			Gamma:   doc.RL.Gamma,
		},
	}
}

// LoadRunConfig reads a YAML run manifest, letting a run be reproduced
// from a file instead of only flags.
func LoadRunConfig(path string) (slga.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return slga.Config{}, errors.Wrap(err, "read run config")
	}
	var doc runConfigDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return slga.Config{}, errors.Wrap(err, "parse run config yaml")
	}
	cfg := doc.toConfig()
	if err := cfg.Validate(); err != nil {
		return slga.Config{}, errors.Wrap(err, "invalid run config")
	}
	return cfg, nil
}

// SaveRunConfig writes cfg as YAML, the inverse of LoadRunConfig.
func SaveRunConfig(path string, cfg slga.Config) error {
	data, err := yaml.Marshal(fromConfig(cfg))
	if err != nil {
		return errors.Wrap(err, "marshal run config yaml")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write run config")
	}
	return nil
}
