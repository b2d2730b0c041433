package bench

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (

	// workload defaults
	defaultRuns        = 1
	defaultKeyCount    = 10
	defaultKeyPrefix   = "a"
	defaultBaseLetter  = 'a'
	defaultStringProbe = "a1"
	defaultCapacity    = 8
	defaultIntProbe    = 3
	defaultIterations  = 100000

	// logging
	defaultLogLevel = logrus.WarnLevel

	// bounds
	maxRuns       = 1 << 16
	maxKeyCount   = 26 // keeps values inside the alphabet
	maxCapacity   = 1 << 16
	maxIterations = 1 << 30
)

// Options configures a Runner. Zero fields take their defaults.
type Options struct {
	// Runs is how many times workload A is repeated to compute
	// the average time per run.
	Runs int
	// KeyCount is how many string keys workload A inserts.
	KeyCount int
	// KeyPrefix and BaseLetter shape the workload A entries:
	// key i is KeyPrefix+decimal(i), value i is BaseLetter+i.
	KeyPrefix   string
	BaseLetter  byte
	StringProbe string
	// Capacity is the number of entries workload B containers
	// are sized for, and how many keys it inserts.
	Capacity int
	IntProbe int
	// Iterations is how many lookups the workload B hot loop
	// runs between the two clock readings.
	Iterations int
	// Overfill makes workload B try one insert past Capacity.
	Overfill bool

	LogLevel logrus.Level
	Out      io.Writer // results, defaults to stdout
	LogOut   io.Writer // diagnostics, defaults to stderr
}

func DefaultOptions() *Options {
	return &Options{
		Runs:        defaultRuns,
		KeyCount:    defaultKeyCount,
		KeyPrefix:   defaultKeyPrefix,
		BaseLetter:  defaultBaseLetter,
		StringProbe: defaultStringProbe,
		Capacity:    defaultCapacity,
		IntProbe:    defaultIntProbe,
		Iterations:  defaultIterations,
		LogLevel:    defaultLogLevel,
		Out:         os.Stdout,
		LogOut:      os.Stderr,
	}
}

func checkOptions(options *Options) *Options {
	if options == nil {
		return DefaultOptions()
	}
	opts := *options
	if opts.Runs <= 0 {
		opts.Runs = defaultRuns
	}
	if opts.Runs > maxRuns {
		opts.Runs = maxRuns
	}
	if opts.KeyCount <= 0 {
		opts.KeyCount = defaultKeyCount
	}
	if opts.KeyCount > maxKeyCount {
		opts.KeyCount = maxKeyCount
	}
	if opts.KeyPrefix == *new(string) {
		opts.KeyPrefix = defaultKeyPrefix
	}
	if opts.BaseLetter == 0 {
		opts.BaseLetter = defaultBaseLetter
	}
	if opts.StringProbe == *new(string) {
		opts.StringProbe = defaultStringProbe
	}
	if opts.Capacity <= 0 {
		opts.Capacity = defaultCapacity
	}
	if opts.Capacity > maxCapacity {
		opts.Capacity = maxCapacity
	}
	if opts.Iterations <= 0 {
		opts.Iterations = defaultIterations
	}
	if opts.Iterations > maxIterations {
		opts.Iterations = maxIterations
	}
	if opts.LogLevel <= 0 {
		opts.LogLevel = defaultLogLevel
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.LogOut == nil {
		opts.LogOut = os.Stderr
	}
	return &opts
}
