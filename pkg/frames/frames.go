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

// Package frames pulls still frames out of camera recordings and scales
// them down for embedding in a workbook.
package frames

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/haxsokol/create-files-cameras/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

// DefaultOffset is how far into a recording the frame is taken. The first
// seconds of camera exports are often black or still buffering.
const DefaultOffset = "00:00:03"

// Extractor writes one frame of videoPath, taken at offset, to outputPath
// as a PNG.
type Extractor interface {
	ExtractFrame(ctx context.Context, videoPath, outputPath, offset string) error
}

// ErrFFmpegUnavailable is returned by Check when ffmpeg cannot be run.
var ErrFFmpegUnavailable = errors.New("ffmpeg is not available")

// Checker is implemented by extractors that can confirm their tool runs
// before any work starts. Check returns a version line for the log.
type Checker interface {
	Check(ctx context.Context) (string, error)
}

// ExtractError is returned when the transcoder exits unsuccessfully.
type ExtractError struct {
	Err    error
	Video  string
	Output string
}

func (e *ExtractError) Error() string {
	msg := fmt.Sprintf("frame extraction failed for %s: %v", e.Video, e.Err)
	if last := lastLine(e.Output); last != "" {
		msg += ": " + last
	}
	return msg
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// FFmpeg extracts frames by running the ffmpeg binary. Runs are synchronous
// and have no timeout of their own; cancel ctx to stop one.
type FFmpeg struct {
	Exec command.Executor
	Path string
}

func NewFFmpeg(path string, exec command.Executor) *FFmpeg {
	if path == "" {
		path = "ffmpeg"
	}
	return &FFmpeg{Path: path, Exec: exec}
}

// Args returns the ffmpeg command line for one extraction.
func Args(videoPath, outputPath, offset string) []string {
	return []string{
		"-i", videoPath,
		"-ss", offset,
		"-frames:v", "1",
		"-y", outputPath,
	}
}

func (f *FFmpeg) ExtractFrame(ctx context.Context, videoPath, outputPath, offset string) error {
	args := Args(videoPath, outputPath, offset)
	log.Debug().Str("video", videoPath).Strs("args", args).Msg("running ffmpeg")

	out, err := f.Exec.CombinedOutput(ctx, command.RunOptions{HideWindow: true}, f.Path, args...)
	if err != nil {
		return &ExtractError{Video: videoPath, Output: string(out), Err: err}
	}
	return nil
}

// Check runs "ffmpeg -version" and returns its first line.
func (f *FFmpeg) Check(ctx context.Context) (string, error) {
	out, err := f.Exec.Output(ctx, command.RunOptions{HideWindow: true}, f.Path, "-version")
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFFmpegUnavailable, f.Path, err)
	}

	version, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(version), nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
