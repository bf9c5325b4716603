package rl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fjsslga/internal/fjsp/rl"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, rl.DefaultConfig().Validate())
}

func TestConfigValidateRejectsBadRanges(t *testing.T) {
	cases := map[string]rl.Config{
		"pc range inverted": func() rl.Config {
			c := rl.DefaultConfig()
			c.PcMin, c.PcMax = 0.9, 0.4
			return c
		}(),
		"pm range out of bounds": func() rl.Config {
			c := rl.DefaultConfig()
			c.PmMax = 1.5
			return c
		}(),
		"epsilon out of range": func() rl.Config {
			c := rl.DefaultConfig()
			c.Epsilon = 1.5
			return c
		}(),
		"alpha zero": func() rl.Config {
			c := rl.DefaultConfig()
			c.Alpha = 0
			return c
		}(),
		"gamma negative": func() rl.Config {
			c := rl.DefaultConfig()
			c.Gamma = -0.1
			return c
		}(),
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, cfg.Validate())
		})
	}
}
