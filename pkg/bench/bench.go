// Package bench runs the same lookup workloads against each
// container shape and reports comparable timings.
package bench

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/scottcagno/mapbench/pkg/util"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of one container's hot lookup loop
type Result struct {
	Tag      string
	Workload string
	Found    bool
	Key      string
	Nanos    int64
}

// Average is the workload A summary for one container
type Average struct {
	Tag     string
	Counter int
	Nanos   int64
}

// Report collects everything a Run produced
type Report struct {
	Averages []Average
	Results  []*Result
}

type Runner struct {
	opts     *Options
	subjects []Subject
	log      *logrus.Logger
	out      io.Writer
}

// NewRunner returns a runner for the given subjects, or for
// DefaultSubjects when none are given. A nil options uses the
// defaults.
func NewRunner(options *Options, subjects ...Subject) *Runner {
	opts := checkOptions(options)
	if len(subjects) == 0 {
		subjects = DefaultSubjects()
	}
	return &Runner{
		opts:     opts,
		subjects: subjects,
		log:      newLogger(opts.LogLevel, opts.LogOut),
		out:      opts.Out,
	}
}

// Run executes workload A then workload B for every subject.
// A container that fails to populate is skipped and the next
// one still runs; every such failure is returned together.
func (r *Runner) Run() (*Report, error) {
	if !util.HasMonotonic() {
		r.log.Error(ErrClockUnavailable)
		return nil, ErrClockUnavailable
	}
	if len(r.subjects) == 0 {
		return nil, ErrNoSubjects
	}
	var errs *multierror.Error
	report := new(Report)

	for _, s := range r.subjects {
		var (
			sum     int64
			counter int
			failed  bool
		)
		for n := 0; n < r.opts.Runs; n++ {
			ns, err := r.runStrings(s)
			if err != nil {
				errs = multierror.Append(errs, err)
				failed = true
				break
			}
			sum += ns
			counter++
		}
		if failed {
			continue
		}
		report.Averages = append(report.Averages, Average{
			Tag:     s.Tag,
			Counter: counter,
			Nanos:   sum / int64(counter),
		})
	}
	for _, avg := range report.Averages {
		fmt.Fprintf(r.out, "average time %s with %d iterations: %d ns\n", avg.Tag, avg.Counter, avg.Nanos)
	}

	for _, s := range r.subjects {
		res, err := r.runInts(s)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		report.Results = append(report.Results, res)
	}
	return report, errs.ErrorOrNil()
}
