// Package cmd defines the kong command tree for the sharpcast CLI.
package cmd

import (
	"fmt"

	"github.com/sharpcast/sharpcast/internal/version"
)

// LogConfig groups the logging flags shared by all commands.
type LogConfig struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"SHARPCAST_LOG_LEVEL"`
	File  string `help:"Write logs to this file instead of the console" env:"SHARPCAST_LOG_FILE"`
}

// CLI is the root command tree parsed by kong.
type CLI struct {
	Log    LogConfig `embed:"" prefix:"log."`
	Config string    `help:"Path to a configuration file" env:"SHARPCAST_CONFIG"`

	Generate  Generate      `cmd:"" help:"Generate C# bindings from a native declaration set"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Manage configuration files"`
	Version   VersionCmd    `cmd:"" help:"Print the sharpcast version"`
}

// VersionCmd prints the build version.
type VersionCmd struct{}

func (VersionCmd) Run() error {
	fmt.Println(version.Get())
	return nil
}
