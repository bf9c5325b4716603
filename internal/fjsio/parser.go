// Package fjsio holds the boundary adapters: instance file parsing and
// schedule/history/config persistence. Everything the core algorithm
// needs stays in fjsp/slga; this is the only internal package that
// touches a filesystem path.
package fjsio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"fjsslga/internal/fjsp"
)

// ParseError reports a malformed instance file.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fjs parse error at line %d: %s", e.Line, e.Reason)
}

// ParseFJS reads an FJS-format instance file: a header line
// "jobsNb machinesNb [avgOpsPerMachine]" followed by one line per job,
// "nbOps (nbOptions (machineId procTime){nbOptions}){nbOps}", machineId
// 1-based in the file and converted to 0-based here.
func ParseFJS(path string) (*fjsp.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open instance file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	nextLine := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		return nil, &ParseError{Line: lineNo, Reason: "missing header line"}
	}
	headerTok := strings.Fields(header)
	if len(headerTok) < 2 {
		return nil, &ParseError{Line: lineNo, Reason: "header must have at least jobsNb and machinesNb"}
	}
	jobsNb, err := strconv.Atoi(headerTok[0])
	if err != nil {
		return nil, &ParseError{Line: lineNo, Reason: "jobsNb is not an integer"}
	}
	machinesNb, err := strconv.Atoi(headerTok[1])
	if err != nil {
		return nil, &ParseError{Line: lineNo, Reason: "machinesNb is not an integer"}
	}
	if jobsNb <= 0 || machinesNb <= 0 {
		return nil, &ParseError{Line: lineNo, Reason: "jobsNb and machinesNb must be > 0"}
	}

	jobs := make([]fjsp.Job, 0, jobsNb)
	for j := 0; j < jobsNb; j++ {
		line, ok := nextLine()
		if !ok {
			return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("missing line for job %d", j)}
		}
		job, err := parseJobLine(line, lineNo, machinesNb)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read instance file")
	}

	inst, err := fjsp.NewInstance(machinesNb, jobs)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func parseJobLine(line string, lineNo, machinesNb int) (fjsp.Job, error) {
	tok := strings.Fields(line)
	if len(tok) == 0 {
		return nil, &ParseError{Line: lineNo, Reason: "empty job line"}
	}
	nbOps, err := strconv.Atoi(tok[0])
	if err != nil || nbOps <= 0 {
		return nil, &ParseError{Line: lineNo, Reason: "nbOps must be a positive integer"}
	}
	tok = tok[1:]

	job := make(fjsp.Job, 0, nbOps)
	for op := 0; op < nbOps; op++ {
		if len(tok) == 0 {
			return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("missing nbOptions for operation %d", op)}
		}
		nbOptions, err := strconv.Atoi(tok[0])
		if err != nil || nbOptions <= 0 {
			return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("nbOptions for operation %d must be a positive integer", op)}
		}
		tok = tok[1:]

		options := make(fjsp.Operation, 0, nbOptions)
		for o := 0; o < nbOptions; o++ {
			if len(tok) < 2 {
				return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("truncated option %d of operation %d", o, op)}
			}
			machineID, err := strconv.Atoi(tok[0])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Reason: "machineId is not an integer"}
			}
			procTime, err := strconv.Atoi(tok[1])
			if err != nil || procTime < 0 {
				return nil, &ParseError{Line: lineNo, Reason: "processing time must be a non-negative integer"}
			}
			tok = tok[2:]

			machine := machineID - 1
			if machine < 0 || machine >= machinesNb {
				return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("machineId %d out of range [1,%d]", machineID, machinesNb)}
			}
			options = append(options, fjsp.MachineOption{Machine: machine, ProcTime: procTime})
		}
		job = append(job, options)
	}
	if len(tok) != 0 {
		return nil, &ParseError{Line: lineNo, Reason: "trailing tokens after last operation"}
	}
	return job, nil
}
