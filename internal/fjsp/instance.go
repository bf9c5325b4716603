// Package fjsp implements the flexible job-shop scheduling problem:
// instance representation, the dual-chromosome encoding, and the
// active-schedule decoder.
package fjsp

import "fmt"

// MachineOption is one alternative machine an operation may run on.
// Machine is 0-based internally; external (.fjs) files are 1-based.
type MachineOption struct {
	Machine  int
	ProcTime int
}

// Operation is the non-empty set of machine options for one step of a job.
type Operation []MachineOption

// Job is an ordered, non-empty sequence of operations.
type Job []Operation

// Instance is an immutable flexible job-shop problem instance.
type Instance struct {
	machinesNb int
	jobs       []Job
	totalOps   int
}

// NewInstance validates and builds an Instance.
func NewInstance(machinesNb int, jobs []Job) (*Instance, error) {
	inst := &Instance{machinesNb: machinesNb, jobs: jobs}
	if err := inst.validate(); err != nil {
		return nil, err
	}
	total := 0
	for _, job := range jobs {
		total += len(job)
	}
	inst.totalOps = total
	return inst, nil
}

func (inst *Instance) validate() error {
	if inst.machinesNb <= 0 {
		return &InvalidInstanceError{Reason: fmt.Sprintf("machines must be > 0 (got %d)", inst.machinesNb)}
	}
	if len(inst.jobs) == 0 {
		return &InvalidInstanceError{Reason: "instance must have at least one job"}
	}
	for j, job := range inst.jobs {
		if len(job) == 0 {
			return &InvalidInstanceError{Reason: fmt.Sprintf("job %d has no operations", j)}
		}
		for k, op := range job {
			if len(op) == 0 {
				return &InvalidInstanceError{Reason: fmt.Sprintf("job %d operation %d has no machine options", j, k)}
			}
			for _, opt := range op {
				if opt.Machine < 0 || opt.Machine >= inst.machinesNb {
					return &InvalidInstanceError{Reason: fmt.Sprintf(
						"job %d operation %d references machine %d out of range [0,%d)", j, k, opt.Machine, inst.machinesNb)}
				}
				if opt.ProcTime < 0 {
					return &InvalidInstanceError{Reason: fmt.Sprintf(
						"job %d operation %d has negative processing time %d", j, k, opt.ProcTime)}
				}
			}
		}
	}
	return nil
}

// MachinesCount returns the number of machines M.
func (inst *Instance) MachinesCount() int { return inst.machinesNb }

// JobsCount returns J, the number of jobs.
func (inst *Instance) JobsCount() int { return len(inst.jobs) }

// TotalOps returns the total number of operations across all jobs.
func (inst *Instance) TotalOps() int { return inst.totalOps }

// OperationsOf returns the ordered operations of a job.
func (inst *Instance) OperationsOf(job int) []Operation { return inst.jobs[job] }

// OptionsOf returns the machine options for one operation of a job.
func (inst *Instance) OptionsOf(job, opIdx int) []MachineOption { return inst.jobs[job][opIdx] }

// JobLen returns the number of operations in a job.
func (inst *Instance) JobLen(job int) int { return len(inst.jobs[job]) }
