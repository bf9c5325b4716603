package slga

import "log/slog"

// logger is the driver's single-responsibility progress logger: one
// place that knows how to announce a generation, nowhere else reaches
// for slog directly.
var logger = slog.Default()

// SetLogger overrides the package logger (tests/CLI wiring).
func SetLogger(l *slog.Logger) { logger = l }

func logGeneration(gen int, best int, avg float64, pc, pm, reward float64) {
	logger.Info("generation",
		slog.Int("generation", gen),
		slog.Int("best", best),
		slog.Float64("average", avg),
		slog.Float64("pc", pc),
		slog.Float64("pm", pm),
		slog.Float64("reward", reward),
	)
}
