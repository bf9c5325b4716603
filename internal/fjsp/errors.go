package fjsp

import "fmt"

// InvalidInstanceError reports a structural violation discovered at
// instance-construction time. Fatal: callers should abort the run.
type InvalidInstanceError struct {
	Reason string
}

func (e *InvalidInstanceError) Error() string {
	return fmt.Sprintf("invalid instance: %s", e.Reason)
}

// InfeasibleOptionError reports a chromosome referencing a non-existent
// machine option. This should be unreachable given the legality
// invariants genetic operators are required to preserve; it indicates a
// programmer error in an operator, not a runtime condition to recover
// from.
type InfeasibleOptionError struct {
	Job, OpIdx, MSValue, OptionsLen int
}

func (e *InfeasibleOptionError) Error() string {
	return fmt.Sprintf(
		"infeasible option: job %d op %d references option %d, but only %d options exist",
		e.Job, e.OpIdx, e.MSValue, e.OptionsLen,
	)
}
