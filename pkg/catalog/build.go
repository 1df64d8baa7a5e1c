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

// Package catalog builds the camera review workbook: one row per recording
// of a listed camera, with a still frame embedded next to the camera name
// and empty yes/no columns for the reviewer.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/haxsokol/create-files-cameras/pkg/cameras"
	"github.com/haxsokol/create-files-cameras/pkg/frames"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var (
	ErrNotDirectory      = errors.New("videos folder does not exist or is not a directory")
	ErrNoVideos          = errors.New("no video files found")
	ErrNoMatchingCameras = errors.New("no matching cameras")
)

const DefaultOutputName = "results.xlsx"

type Status string

const (
	StatusProcessed Status = "processed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Item is the outcome for one video.
type Item struct {
	Err    error
	Video  string
	Camera string
	Status Status
	// Suggestion is the closest listed camera for a skipped folder.
	Suggestion string
}

type Report struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Output     string
	Renames    []Rename
	Items      []Item
}

// Count returns how many items ended with the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, it := range r.Items {
		if it.Status == s {
			n++
		}
	}
	return n
}

func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

type Options struct {
	Extractor     frames.Extractor
	Clock         clockwork.Clock
	Valid         cameras.ValidSet
	Root          string
	Output        string
	Offset        string
	Layout        Layout
	Extensions    []string
	MaxWidth      int
	MaxHeight     int
	RenameFolders bool
	KeepFrames    bool
}

// DefaultOutput is results.xlsx next to the videos folder.
func DefaultOutput(root string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(root)), DefaultOutputName)
}

func (o *Options) setDefaults() {
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.Output == "" {
		o.Output = DefaultOutput(o.Root)
	}
	if o.Offset == "" {
		o.Offset = frames.DefaultOffset
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = frames.MaxWidth
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = frames.MaxHeight
	}
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions
	}
	if o.Layout == (Layout{}) {
		o.Layout = DefaultLayout()
	}
}

// Build runs the whole catalog pipeline. Problems with single videos are
// logged and recorded in the report; only setup failures, an empty result
// or a failed save are returned as errors. Extracted frames are deleted
// before returning unless KeepFrames is set.
func Build(ctx context.Context, fs afero.Fs, opts Options) (*Report, error) {
	opts.setDefaults()
	report := &Report{StartedAt: opts.Clock.Now()}
	defer func() { report.FinishedAt = opts.Clock.Now() }()

	if ok, err := afero.IsDir(fs, opts.Root); err != nil || !ok {
		return report, fmt.Errorf("%w: %s", ErrNotDirectory, opts.Root)
	}
	if opts.Extractor == nil {
		return report, errors.New("no frame extractor configured")
	}

	if opts.RenameFolders {
		renames, err := NormalizeFolders(fs, opts.Root)
		if err != nil {
			return report, err
		}
		report.Renames = renames
	}

	videos, err := FindVideos(fs, opts.Root, opts.Extensions)
	if err != nil {
		return report, err
	}
	if len(videos) == 0 {
		return report, fmt.Errorf("%w in %s", ErrNoVideos, opts.Root)
	}
	log.Info().Msgf("found %d videos under %s", len(videos), opts.Root)

	wb, err := NewWorkbook(opts.Layout)
	if err != nil {
		return report, err
	}
	defer func() { _ = wb.Close() }()

	var framePaths []string
	if !opts.KeepFrames {
		defer func() { removeFrames(fs, framePaths) }()
	}

	for _, v := range videos {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("catalog build cancelled: %w", err)
		}

		item := Item{Video: v.Path, Camera: v.CameraName()}

		if v.Folder == "" {
			item.Status = StatusSkipped
			log.Info().Str("video", v.Path).Msg("video is not inside a camera folder, skipping")
			report.Items = append(report.Items, item)
			continue
		}

		if !opts.Valid.Contains(v.Folder) {
			item.Status = StatusSkipped
			ev := log.Info().Str("camera", cameras.MatchKey(v.Folder)).Str("video", v.Path)
			if s, ok := cameras.Suggest(v.Folder, opts.Valid); ok {
				item.Suggestion = s
				ev = ev.Str("closest", s)
			}
			ev.Msg("camera not in list, skipping")
			report.Items = append(report.Items, item)
			continue
		}

		log.Info().Str("video", v.Path).Msg("processing video")
		framePaths = append(framePaths, v.FramePath())

		if err := addVideo(ctx, fs, wb, v, opts); err != nil {
			item.Status = StatusFailed
			item.Err = err
			log.Warn().Err(err).Str("video", v.Path).Msg("failed to add video, skipping")
		} else {
			item.Status = StatusProcessed
		}
		report.Items = append(report.Items, item)
	}

	if wb.Rows() == 0 {
		return report, ErrNoMatchingCameras
	}

	if err := wb.Finalize(); err != nil {
		return report, err
	}
	if err := wb.Save(fs, opts.Output); err != nil {
		return report, err
	}
	report.Output = opts.Output

	log.Info().
		Int("rows", wb.Rows()).
		Int("skipped", report.Count(StatusSkipped)).
		Int("failed", report.Count(StatusFailed)).
		Msgf("catalog written to %s", opts.Output)

	return report, nil
}

func addVideo(ctx context.Context, fs afero.Fs, wb *Workbook, v Video, opts Options) error {
	framePath := v.FramePath()

	if err := opts.Extractor.ExtractFrame(ctx, v.Path, framePath, opts.Offset); err != nil {
		return err
	}

	size, err := frames.Resize(fs, framePath, opts.MaxWidth, opts.MaxHeight)
	if err != nil {
		return fmt.Errorf("failed to resize frame: %w", err)
	}
	log.Debug().Int("width", size.Width).Int("height", size.Height).Str("video", v.Path).Msg("frame resized")

	// excelize sizes the picture from the PNG header, so the resized file
	// alone sets its extent in the sheet.

	data, err := afero.ReadFile(fs, framePath)
	if err != nil {
		return fmt.Errorf("failed to read frame: %w", err)
	}

	return wb.AddRow(v.CameraName(), data, "Frame_"+v.FrameName())
}

func removeFrames(fs afero.Fs, paths []string) {
	for _, p := range paths {
		err := fs.Remove(p)
		if err == nil || errors.Is(err, afero.ErrFileNotFound) {
			continue
		}
		log.Warn().Err(err).Str("path", p).Msg("failed to delete frame")
	}
}
