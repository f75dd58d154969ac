package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/env"
)

func init() {
	env.SetupFlags()
}

func main() {
	flag.Parse()

	conf, err := env.Load()
	if err != nil {
		glog.Exit(err)
	}
	e, err := conf.NewEnv()
	if err != nil {
		glog.Exit(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	e.OnQuit(cancel)
	err = e.Run(ctx)
	cancel()
	e.Close()
	if err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}
