package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bwdtool/bwd/cmd/bwd/cmd"
)

var Version string

func main() {
	if os.Getenv("BWD_DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	app := cmd.NewApp()
	app.Version = Version

	if err := cmd.Run(app, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "[bwd error] %v\n", err)
		os.Exit(1)
	}
}
