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

	source := flag.String(
		"source",
		"",
		"camera inventory spreadsheet (asks with a dialog if empty)",
	)
	sheet := flag.String(
		"sheet",
		"",
		"inventory sheet name",
	)
	out := flag.String(
		"out",
		"",
		"output folder, relative to the inventory file",
	)
	format := flag.String(
		"format",
		"",
		"output format: xlsx or csv",
	)

	flags.Pre("partition", os.Args[1:])

	cfg, err := cli.Setup(flags)
	if err != nil {
		return err
	}
	flags.Post(cfg)

	partCfg := cfg.Partition()
	if *source != "" {
		partCfg.Source = *source
	}
	if *sheet != "" {
		partCfg.Sheet = *sheet
	}
	if *out != "" {
		partCfg.OutputDir = *out
	}
	if *format != "" {
		partCfg.Format = *format
	}

	_, err = cli.RunPartition(cli.OSEnv(), partCfg, pickers.Dialog{})
	return err
}
