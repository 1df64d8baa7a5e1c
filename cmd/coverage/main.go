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

package main

import (
	"flag"
	"os"

	"github.com/haxsokol/create-files-cameras/pkg/cli"
	"github.com/haxsokol/create-files-cameras/pkg/pickers"
)

func main() {
	if err := run(); err != nil {
		cli.Exit(nil, err)
	}
}

func run() error {
	flags := cli.SetupFlags(flag.CommandLine)

	var roots, sources cli.StringList
	flag.Var(&roots, "root", "folder to scan, may be repeated (asks if not given)")
	flag.Var(&sources, "source", "existing camera list to merge, may be repeated")
	pattern := flag.String(
		"pattern",
		"",
		"regular expression camera folder names must match",
	)
	out := flag.String(
		"out",
		"",
		"camera list to write",
	)
	master := flag.String(
		"master",
		"",
		"merged camera list to write",
	)

	flags.Pre("coverage", os.Args[1:])

	cfg, err := cli.Setup(flags)
	if err != nil {
		return err
	}
	flags.Post(cfg)

	covCfg := cfg.Coverage()
	if len(roots) > 0 {
		covCfg.Roots = roots
	}
	if len(sources) > 0 {
		covCfg.Sources = sources
	}
	if *pattern != "" {
		covCfg.FolderPattern = *pattern
	}
	if *out != "" {
		covCfg.Output = *out
	}
	if *master != "" {
		covCfg.MasterOutput = *master
	}

	_, err = cli.RunCoverage(cli.OSEnv(), covCfg, pickers.NewPrompt(os.Stdin, os.Stdout))
	return err
}
