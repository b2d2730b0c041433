package main

import (
	"os"

	"github.com/scottcagno/mapbench/pkg/bench"
	"github.com/sirupsen/logrus"
)

func main() {
	r := bench.NewRunner(bench.DefaultOptions())
	_, err := r.Run()
	errCheck(err)
}

func errCheck(err error) {
	if err != nil {
		logrus.Errorf("got error: %v", err)
		os.Exit(1)
	}
}
