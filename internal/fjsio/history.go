package fjsio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"fjsslga/internal/fjsp/slga"
)

// WriteHistoryCSV writes one row per generation (columns: generation,
// best_time, average_time, Pc, Pm, reward) plus a trailing
// "Total Time, <seconds>, , , ," row, using the same manual encoding/csv
// style as internal/bench's run writer.
func WriteHistoryCSV(path string, history []slga.HistoryRecord, totalTime time.Duration) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create history output directory")
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create history csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"generation", "best_time", "average_time", "Pc", "Pm", "reward"}
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "write history csv header")
	}

	for _, rec := range history {
		row := []string{
			strconv.Itoa(rec.Generation),
			strconv.Itoa(rec.BestTime),
			ftoa(rec.AverageTime),
			ftoa(rec.Pc),
			ftoa(rec.Pm),
			ftoa(rec.Reward),
		}
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "write history csv row")
		}
	}

	totalRow := []string{"Total Time", strconv.FormatFloat(totalTime.Seconds(), 'f', 6, 64), "", "", "", ""}
	if err := w.Write(totalRow); err != nil {
		return errors.Wrap(err, "write history csv total row")
	}

	if err := w.Error(); err != nil {
		return errors.Wrap(err, "flush history csv")
	}
	return nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
