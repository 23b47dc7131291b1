package fs

import (
	"os"
	"path/filepath"

	"inkwell-cli/term"
)

var HomeDir string
var HomeInkwellDir string
var HomeAuthPath string
var HomeLogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}
	HomeDir = home

	if os.Getenv("INKWELL_ENV") == "development" {
		HomeInkwellDir = filepath.Join(home, ".inkwell-home-dev")
	} else {
		HomeInkwellDir = filepath.Join(home, ".inkwell-home")
	}

	err = os.MkdirAll(HomeInkwellDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit(err.Error())
	}

	HomeAuthPath = filepath.Join(HomeInkwellDir, "auth.json")
	HomeLogPath = filepath.Join(HomeInkwellDir, "inkwell.log")
}
