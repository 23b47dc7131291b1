package main

import (
	"log"

	"inkwell-cli/api"
	"inkwell-cli/auth"
	"inkwell-cli/cmd"
	"inkwell-cli/fs"

	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// inter-package wiring to avoid circular imports
	auth.SetCurrent(auth.NewStore(api.Client, fs.HomeAuthPath))
	api.SetOnUnauthorizedFn(func() {
		auth.Current.Invalidate()
	})

	// file logger with rotation; the terminal is reserved for user output
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.HomeLogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
}

func main() {
	cmd.Execute()
}
