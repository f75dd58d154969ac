package main

import (
	"github.com/golang/glog"

	"github.com/robotalks/cwkeyer/pkg/cli/sh"

	_ "github.com/robotalks/cwkeyer/pkg/cli/cmds/panel"
)

//go-build: CGO_ENABLED=0

func init() {
	sh.SetupFlags()
}

func main() {
	defer glog.Flush()
	if err := sh.Main(); err != nil {
		glog.Exit(err)
	}
}
