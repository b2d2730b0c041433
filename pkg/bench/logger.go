package bench

import (
	"io"

	"github.com/sirupsen/logrus"
)

type phase uint8

const (
	phaseInit phase = iota
	phasePopulate
	phasePrint
	phaseMeasure
	phaseReport
	phaseTerminate
)

func (p phase) String() string {
	switch p {
	case phaseInit:
		return "init"
	case phasePopulate:
		return "populate"
	case phasePrint:
		return "print"
	case phaseMeasure:
		return "measure"
	case phaseReport:
		return "report"
	case phaseTerminate:
		return "terminate"
	default:
		return "unknown"
	}
}

func newLogger(level logrus.Level, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})
	return l
}

// enter logs a state transition for one container run
func (r *Runner) enter(tag, workload string, p phase) *logrus.Entry {
	e := r.log.WithFields(logrus.Fields{
		"container": tag,
		"workload":  workload,
		"phase":     p,
	})
	e.Debug("enter")
	return e
}
