package bench

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/scottcagno/mapbench"
	"github.com/scottcagno/mapbench/pkg/generic/vecmap"
	"github.com/scottcagno/mapbench/pkg/util"
)

const (
	workloadA = "A"
	workloadB = "B"
)

func (r *Runner) keyOf(i int) string {
	return r.opts.KeyPrefix + strconv.Itoa(i)
}

func (r *Runner) valueOf(i int) byte {
	return r.opts.BaseLetter + byte(i)
}

func floatOf(i int) float64 {
	return float64(i)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// guard runs a construct or populate step and turns a runtime
// allocation panic into vecmap.ErrAllocationFailure. Any other
// panic is passed on.
func guard(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if !isAllocPanic(rec) {
				panic(rec)
			}
			err = errors.Wrapf(vecmap.ErrAllocationFailure, "%v", rec)
		}
	}()
	return fn()
}

func isAllocPanic(rec interface{}) bool {
	re, ok := rec.(runtime.Error)
	if !ok {
		return false
	}
	msg := re.Error()
	for _, s := range []string{"makeslice", "growslice", "makemap", "out of memory"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// open builds a container under guard
func open[K, V any](fn func() mapbench.Container[K, V]) (c mapbench.Container[K, V], err error) {
	err = guard(func() error {
		c = fn()
		return nil
	})
	return c, err
}

// runStrings is workload A for a single container: populate
// the string keys, print every entry and look up the probe
// once. It returns the nanoseconds the whole run took.
func (r *Runner) runStrings(s Subject) (int64, error) {
	log := r.enter(s.Tag, workloadA, phaseInit)
	sw := util.StartStopwatch()
	c, err := open(s.Strings)
	if err != nil {
		log.WithError(err).Error("construct failed")
		return 0, errors.Wrapf(err, "%s: workload %s", s.Tag, workloadA)
	}
	defer c.Close()

	log = r.enter(s.Tag, workloadA, phasePopulate)
	err = guard(func() error {
		for i := 0; i < r.opts.KeyCount; i++ {
			key := r.keyOf(i)
			if _, err := c.Add(key, r.valueOf(i)); err != nil {
				return errors.Wrapf(err, "insert %q", key)
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("populate failed")
		return 0, errors.Wrapf(err, "%s: workload %s", s.Tag, workloadA)
	}

	r.enter(s.Tag, workloadA, phasePrint)
	printEntries(r.out, c, func(k string, v byte) string {
		return fmt.Sprintf("%s-->'%c'", k, v)
	})

	r.enter(s.Tag, workloadA, phaseMeasure)
	if k, v, ok := c.Lookup(r.opts.StringProbe); ok {
		fmt.Fprintf(r.out, "%s-->'%c'\n", k, v)
	}
	ns := sw.Stop()

	r.enter(s.Tag, workloadA, phaseTerminate)
	return ns, nil
}

// runInts is workload B for a single container: fill a small
// container back to front, print it, then time only the hot
// lookup loop.
func (r *Runner) runInts(s Subject) (*Result, error) {
	log := r.enter(s.Tag, workloadB, phaseInit)
	c, err := open(func() mapbench.Container[int, float64] {
		return s.Ints(r.opts.Capacity)
	})
	if err != nil {
		log.WithError(err).Error("construct failed")
		return nil, errors.Wrapf(err, "%s: workload %s", s.Tag, workloadB)
	}
	defer c.Close()

	log = r.enter(s.Tag, workloadB, phasePopulate)
	err = guard(func() error {
		first := r.opts.Capacity - 1
		if r.opts.Overfill {
			first++
		}
		for i := first; i >= 0; i-- {
			if _, err := c.Add(i, floatOf(i)); err != nil {
				return errors.Wrapf(err, "insert %d", i)
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("populate failed")
		return nil, errors.Wrapf(err, "%s: workload %s", s.Tag, workloadB)
	}

	r.enter(s.Tag, workloadB, phasePrint)
	printEntries(r.out, c, func(k int, v float64) string {
		return fmt.Sprintf("%d-->'%s'", k, formatFloat(v))
	})

	r.enter(s.Tag, workloadB, phaseMeasure)
	var (
		key   int
		found bool
	)
	probe := r.opts.IntProbe
	sw := util.StartStopwatch()
	for n := 0; n < r.opts.Iterations; n++ {
		key, _, found = c.Lookup(probe)
	}
	ns := sw.Stop()

	r.enter(s.Tag, workloadB, phaseReport)
	res := &Result{
		Tag:      s.Tag,
		Workload: workloadB,
		Found:    found,
		Key:      strconv.Itoa(key),
		Nanos:    ns,
	}
	if found {
		fmt.Fprintf(r.out, "%s found: '%s' key in result: %d ns\n", res.Tag, res.Key, res.Nanos)
	} else {
		log.WithField("probe", probe).Info("probe key not found")
	}

	r.enter(s.Tag, workloadB, phaseTerminate)
	return res, nil
}

func printEntries[K, V any](w io.Writer, c mapbench.Container[K, V], format func(K, V) string) {
	c.Scan(func(k K, v V) bool {
		fmt.Fprintln(w, format(k, v))
		return true
	})
}
