package main

import (
	"github.com/admiralbulldogtv/splicer/src/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := cli.Execute(); err != nil {
		logrus.WithError(err).Fatal("splicer failed")
	}
}
