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
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/haxsokol/create-files-cameras/pkg/cli"
	"github.com/haxsokol/create-files-cameras/pkg/frames"
	"github.com/haxsokol/create-files-cameras/pkg/helpers/command"
	"github.com/haxsokol/create-files-cameras/pkg/pickers"
	"github.com/rs/zerolog/log"
)

func main() {
	var notify pickers.Notifier
	if err := run(&notify); err != nil {
		cli.Exit(notify, err)
	}
}

func run(notify *pickers.Notifier) error {
	flags := cli.SetupFlags(flag.CommandLine)

	videos := flag.String(
		"videos",
		"",
		"folder with one subfolder per camera (asks with a dialog if empty)",
	)
	cameraList := flag.String(
		"cameras",
		"",
		"spreadsheet listing the cameras to include (asks with a dialog if empty)",
	)
	output := flag.String(
		"output",
		"",
		"workbook to write (default results.xlsx next to the videos folder)",
	)
	noRename := flag.Bool(
		"no-rename",
		false,
		"do not rename camera folders to their camera id",
	)
	keepFrames := flag.Bool(
		"keep-frames",
		false,
		"keep the extracted frame images next to the videos",
	)
	ffmpeg := flag.String(
		"ffmpeg",
		"",
		"ffmpeg executable",
	)

	flags.Pre("thumbcatalog", os.Args[1:])

	cfg, err := cli.Setup(flags)
	if err != nil {
		return err
	}
	flags.Post(cfg)

	catCfg := cfg.Catalog()
	if *output != "" {
		catCfg.OutputName = *output
	}
	if *ffmpeg != "" {
		catCfg.FFmpegPath = *ffmpeg
	}
	if *noRename {
		catCfg.RenameFolders = false
	}
	if *keepFrames {
		catCfg.KeepFrames = true
	}

	dlg := pickers.Dialog{}
	if *videos == "" || *cameraList == "" {
		*notify = dlg
	}
	paths := pickers.Fallback{
		Next:   dlg,
		Static: pickers.Static{FolderPath: *videos, FilePath: *cameraList},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := cli.OSEnv()
	env.Notify = *notify

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %v\n", r)
			log.Fatal().Msgf("panic: %v", r)
		}
	}()

	extractor := frames.NewFFmpeg(catCfg.FFmpegPath, &command.RealExecutor{})
	_, err = cli.RunCatalog(ctx, env, catCfg, paths, extractor)
	return err
}
