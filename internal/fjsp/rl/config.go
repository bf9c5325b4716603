package rl

import "fmt"

// Config holds the fixed Pc/Pm ranges and TD learning hyperparameters.
type Config struct {
	PcMin, PcMax float64
	PmMin, PmMax float64
	Epsilon      float64
	Alpha        float64
	Gamma        float64
}

// DefaultConfig returns Pc in [0.4, 0.9], Pm in [0.01, 0.21],
// epsilon=0.1, alpha=0.1, gamma=0.9.
func DefaultConfig() Config {
	return Config{
		PcMin: 0.4, PcMax: 0.9,
		PmMin: 0.01, PmMax: 0.21,
		Epsilon: 0.1,
		Alpha:   0.1,
		Gamma:   0.9,
	}
}

func (c Config) Validate() error {
	if c.PcMin < 0 || c.PcMax > 1 || c.PcMin >= c.PcMax {
		return fmt.Errorf("Pc range must satisfy 0<=min<max<=1 (got [%f,%f])", c.PcMin, c.PcMax)
	}
	if c.PmMin < 0 || c.PmMax > 1 || c.PmMin >= c.PmMax {
		return fmt.Errorf("Pm range must satisfy 0<=min<max<=1 (got [%f,%f])", c.PmMin, c.PmMax)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0,1] (got %f)", c.Epsilon)
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0,1] (got %f)", c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("gamma must be in [0,1] (got %f)", c.Gamma)
	}
	return nil
}
