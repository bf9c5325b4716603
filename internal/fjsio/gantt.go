package fjsio

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"fjsslga/internal/fjsp"
)

const (
	ganttRowHeight  = 24
	ganttPxPerUnit  = 6
	ganttLeftMargin = 90
	ganttTopMargin  = 20
)

var ganttPalette = [...]string{
	"#4C72B0", "#DD8452", "#55A868", "#C44E52",
	"#8172B2", "#937860", "#DA8BC3", "#8C8C8C",
}

// WriteScheduleSVG renders sched as a minimal Gantt chart: one row per
// machine, one rectangle per placed operation, ordered by start. Built
// as hand-written SVG rather than pulled in a charting dependency, since
// internal/bench's own writers favor small stdlib-only I/O over
// libraries for simple output formats.
func WriteScheduleSVG(sched fjsp.Schedule, path string) error {
	exported := sched.Export()

	machines := make([]string, 0, len(exported))
	for m := range exported {
		machines = append(machines, m)
	}
	sort.Strings(machines)

	makespan := sched.Makespan()
	width := ganttLeftMargin + makespan*ganttPxPerUnit + 40
	if width < 200 {
		width = 200
	}
	height := ganttTopMargin*2 + len(machines)*ganttRowHeight

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", width, height)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", width, height)

	for row, m := range machines {
		y := ganttTopMargin + row*ganttRowHeight
		fmt.Fprintf(&b, `<text x="4" y="%d" font-size="12" font-family="monospace">%s</text>`+"\n",
			y+ganttRowHeight/2+4, escapeXML(m))

		for _, op := range exported[m] {
			x := ganttLeftMargin + op.Start*ganttPxPerUnit
			w := (op.End - op.Start) * ganttPxPerUnit
			if w < 1 {
				w = 1
			}
			color := ganttPalette[jobColorIndex(op.Label)%len(ganttPalette)]
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="black" stroke-width="0.5"/>`+"\n",
				x, y+2, w, ganttRowHeight-4, color)
			fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10" font-family="monospace">%s</text>`+"\n",
				x+2, y+ganttRowHeight/2+3, escapeXML(op.Label))
		}
	}
	b.WriteString("</svg>\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrap(err, "write schedule svg")
	}
	return nil
}

// jobColorIndex derives a stable palette index from an "OP_j-k" label so
// every operation of the same job gets the same color.
func jobColorIndex(label string) int {
	h := 0
	for i := 0; i < len(label) && label[i] != '-'; i++ {
		h = h*31 + int(label[i])
	}
	if h < 0 {
		h = -h
	}
	return h
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
