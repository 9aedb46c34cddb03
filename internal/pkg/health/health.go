// Package health runs component checks and summarizes them for the HTTP
// endpoint, the gRPC health service and the probe job.
package health

import (
	"context"
	"time"
)

const (
	StatusUp   = "up"
	StatusDown = "down"
)

// Checker probes one dependency. Check returns nil when it is usable.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type ComponentReport struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	LatencyMS int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

type Report struct {
	Status     string            `json:"status"`
	Components []ComponentReport `json:"components"`
	CheckedAt  time.Time         `json:"checkedAt"`
}

func (r Report) Healthy() bool {
	return r.Status == StatusUp
}

// Run executes the checkers one after another, each bounded by timeout.
// The report is down as soon as one component is down.
func Run(ctx context.Context, timeout time.Duration, checkers ...Checker) Report {
	report := Report{
		Status:     StatusUp,
		Components: make([]ComponentReport, 0, len(checkers)),
		CheckedAt:  time.Now().UTC(),
	}

	for _, checker := range checkers {
		checkCtx, cancel := context.WithTimeout(ctx, timeout)
		started := time.Now()
		err := checker.Check(checkCtx)
		cancel()

		component := ComponentReport{
			Name:      checker.Name(),
			Status:    StatusUp,
			LatencyMS: time.Since(started).Milliseconds(),
		}
		if err != nil {
			component.Status = StatusDown
			component.Error = err.Error()
			report.Status = StatusDown
		}
		report.Components = append(report.Components, component)
	}
	return report
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc struct {
	ComponentName string
	Fn            func(ctx context.Context) error
}

func (c CheckerFunc) Name() string {
	return c.ComponentName
}

func (c CheckerFunc) Check(ctx context.Context) error {
	return c.Fn(ctx)
}
