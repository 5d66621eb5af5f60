package main

import (
	"github.com/leocov-dev/everup/cmd"
	"github.com/leocov-dev/everup/config"
)

var Version string

func main() {
	config.SetVersion(Version)
	cmd.Execute()
}
