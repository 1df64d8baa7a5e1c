// Create Files Cameras
// Copyright (c) 2026 The Create Files Cameras Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Create Files Cameras.
//
// Create Files Cameras is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Create Files Cameras is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Create Files Cameras.  If not, see <http://www.gnu.org/licenses/>.

// Package cli holds what the three command line tools share: common flags,
// config and logging setup, and the runs behind each tool.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/haxsokol/create-files-cameras/pkg/config"
	"github.com/haxsokol/create-files-cameras/pkg/helpers"
	"github.com/haxsokol/create-files-cameras/pkg/pickers"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Flags struct {
	set         *flag.FlagSet
	Config      *string
	Debug       *bool
	Version     *bool
	WriteConfig *bool
}

// SetupFlags defines the flags every tool accepts. Tools add their own
// flags to the same set before calling Pre.
func SetupFlags(set *flag.FlagSet) *Flags {
	return &Flags{
		set: set,
		Config: set.String(
			"config",
			"",
			"path to config file (default from "+config.CfgEnv+" or the user config dir)",
		),
		Debug: set.Bool(
			"debug",
			false,
			"enable debug logging",
		),
		Version: set.Bool(
			"version",
			false,
			"print version and exit",
		),
		WriteConfig: set.Bool(
			"write-config",
			false,
			"write the current settings to the config file and exit",
		),
	}
}

// IsPassed reports whether a flag was given on the command line.
func (f *Flags) IsPassed(name string) bool {
	found := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses the flags and handles the ones that need no setup.
func (f *Flags) Pre(tool string, args []string) {
	if err := f.set.Parse(args); err != nil {
		Fatal("%v", err)
	}

	if *f.Version {
		_, _ = fmt.Printf("%s v%s\n", tool, config.AppVersion)
		os.Exit(0)
	}
}

// Setup loads the config file and starts logging to the log dir and stderr.
func Setup(f *Flags) (*config.Instance, error) {
	cfg, err := config.NewConfig(afero.NewOsFs(), config.ResolvePath(*f.Config), config.BaseDefaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if *f.Debug {
		cfg.SetDebugLogging(true)
	}

	err = helpers.InitLogging(
		cfg.LogDir(),
		cfg.DebugLogging(),
		[]io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start logging: %w", err)
	}

	log.Info().Msgf("config: %s, log: %s", cfg.Path(), helpers.LogPath(cfg.LogDir()))
	return cfg, nil
}

// Post handles the flags that need the loaded config.
func (f *Flags) Post(cfg *config.Instance) {
	if !*f.WriteConfig {
		return
	}

	if err := WriteConfig(cfg, os.Stdout); err != nil {
		Fatal("%v", err)
	}
	os.Exit(0)
}

// WriteConfig saves the loaded settings, defaults included, as an
// editable config file.
func WriteConfig(cfg *config.Instance, out io.Writer) error {
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Настройки записаны: %s\n", cfg.Path())
	return nil
}

// Fatal prints the message to stderr and exits with status 1.
func Fatal(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// Exit reports a failed run and exits with status 1. A Failure shows its
// user message; the full error goes to the log.
func Exit(n pickers.Notifier, err error) {
	msg := err.Error()
	var failure *Failure
	if errors.As(err, &failure) {
		msg = failure.Msg
	}

	log.Error().Err(err).Msg(msg)
	if n != nil {
		n.Error(TitleError, msg)
	}
	Fatal("%s", msg)
}

// Env is what a tool run touches outside its arguments.
type Env struct {
	Fs     afero.Fs
	Out    io.Writer
	Notify pickers.Notifier
	Clock  clockwork.Clock
}

// OSEnv is the real filesystem and stdout.
func OSEnv() Env {
	return Env{
		Fs:    afero.NewOsFs(),
		Out:   os.Stdout,
		Clock: clockwork.NewRealClock(),
	}
}

func (e Env) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(e.Out, format+"\n", args...)
}

func (e Env) info(msg string) {
	if e.Notify != nil {
		e.Notify.Info(TitleDone, msg)
	}
}

// StringList is a flag that may be given more than once.
type StringList []string

func (l *StringList) String() string {
	return strings.Join(*l, ",")
}

func (l *StringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}
