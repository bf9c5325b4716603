package fjsp

import "fmt"

// placement is one operation placed on a machine timeline.
type placement struct {
	Label         string
	Dur           int
	EarliestStart int
	Start         int
}

// Decoder turns an (OS, MS) chromosome pair into a concrete dispatch via
// earliest-gap insertion, reusing its working buffers across repeated
// calls; each decode still allocates a copy of the placements for the
// Schedule it returns.
type Decoder struct {
	inst *Instance

	machineSched [][]placement
	opIndex      []int
	jobReady     []int
}

// NewDecoder allocates the reusable buffers for repeated decoding of the
// same instance.
func NewDecoder(inst *Instance) (*Decoder, error) {
	if inst == nil {
		return nil, fmt.Errorf("nil instance")
	}
	return &Decoder{
		inst:         inst,
		machineSched: make([][]placement, inst.MachinesCount()),
		opIndex:      make([]int, inst.JobsCount()),
		jobReady:     make([]int, inst.JobsCount()),
	}, nil
}

// Schedule is the transient output of a decode: per-machine ordered
// placements and the resulting makespan.
type Schedule struct {
	machines [][]placement
}

// Makespan returns max over machines of max over placed ops of
// (start+dur), or 0 if the schedule is empty.
func (s Schedule) Makespan() int {
	best := 0
	for _, m := range s.machines {
		for _, p := range m {
			end := p.Start + p.Dur
			if end > best {
				best = end
			}
		}
	}
	return best
}

// ExportedOp is one (start, end, label) entry in a schedule export.
type ExportedOp struct {
	Start int
	End   int
	Label string
}

// Export returns "Machine-{m+1}" -> ordered-by-start placements, the
// sole contract consumed by the Gantt renderer and CSV writer.
func (s Schedule) Export() map[string][]ExportedOp {
	out := make(map[string][]ExportedOp, len(s.machines))
	for m, ops := range s.machines {
		exported := make([]ExportedOp, len(ops))
		for i, p := range ops {
			exported[i] = ExportedOp{Start: p.Start, End: p.Start + p.Dur, Label: p.Label}
		}
		out[fmt.Sprintf("Machine-%d", m+1)] = exported
	}
	return out
}

func (d *Decoder) reset() {
	for m := range d.machineSched {
		d.machineSched[m] = d.machineSched[m][:0]
	}
	for j := range d.opIndex {
		d.opIndex[j] = 0
		d.jobReady[j] = 0
	}
}

// Decode maps (os, ms) to per-machine schedules. Deterministic for a
// given (instance, os, ms): ties among equal-earliest placements are
// broken by OS order, since operations are placed left-to-right.
func (d *Decoder) Decode(os, ms []int) (Schedule, error) {
	d.reset()

	msSplit := SplitMS(d.inst, ms)

	for _, j := range os {
		k := d.opIndex[j]
		options := d.inst.OptionsOf(j, k)
		localIdx := msSplit[j][k]
		if localIdx < 0 || localIdx >= len(options) {
			return Schedule{}, &InfeasibleOptionError{Job: j, OpIdx: k, MSValue: localIdx, OptionsLen: len(options)}
		}
		opt := options[localIdx]
		machine := opt.Machine
		dur := opt.ProcTime
		earliest := d.jobReady[j]

		start := findEarliestGap(d.machineSched[machine], earliest, dur)

		label := fmt.Sprintf("OP_%d-%d", j+1, k+1)
		insertSorted(&d.machineSched[machine], placement{
			Label: label, Dur: dur, EarliestStart: earliest, Start: start,
		})

		d.opIndex[j]++
		d.jobReady[j] = start + dur
	}

	machinesCopy := make([][]placement, len(d.machineSched))
	for m := range d.machineSched {
		cp := make([]placement, len(d.machineSched[m]))
		copy(cp, d.machineSched[m])
		machinesCopy[m] = cp
	}
	return Schedule{machines: machinesCopy}, nil
}

// findEarliestGap scans the busy-interval list (sorted by start) for the
// earliest start >= earliest such that [start, start+dur) overlaps no
// placed interval: the gap before the first interval, gaps between
// consecutive intervals, then the always-accommodating open tail.
func findEarliestGap(sched []placement, earliest, dur int) int {
	prevEnd := 0
	for _, p := range sched {
		gLo, gHi := prevEnd, p.Start
		start := earliest
		if gLo > start {
			start = gLo
		}
		if start+dur <= gHi {
			return start
		}
		prevEnd = p.Start + p.Dur
	}
	// Open tail after the last interval (or the whole timeline if empty).
	if earliest > prevEnd {
		return earliest
	}
	return prevEnd
}

// insertSorted appends p keeping the slice sorted by Start.
func insertSorted(sched *[]placement, p placement) {
	s := *sched
	i := len(s)
	for i > 0 && s[i-1].Start > p.Start {
		i--
	}
	s = append(s, placement{})
	copy(s[i+1:], s[i:])
	s[i] = p
	*sched = s
}

// Makespan decodes and returns only the makespan.
func (d *Decoder) Makespan(os, ms []int) (int, error) {
	sched, err := d.Decode(os, ms)
	if err != nil {
		return 0, err
	}
	return sched.Makespan(), nil
}

// MustMakespan panics on decode error; used as the hot-path fitness
// function once chromosomes are known-legal (programmer error otherwise).
func (d *Decoder) MustMakespan(os, ms []int) int {
	ms2, err := d.Makespan(os, ms)
	if err != nil {
		panic(err)
	}
	return ms2
}
