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

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/haxsokol/create-files-cameras/pkg/cameras"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var DefaultExtensions = []string{".mkv", ".mp4", ".avi"}

// Video is one recording found under the catalog root.
type Video struct {
	Path string
	// Folder is the camera folder: the child of root the video sits under.
	// Empty for files directly in root.
	Folder string
	Stem   string
}

// CameraName is the display id of the video's camera folder.
func (v Video) CameraName() string {
	return cameras.FolderCameraID(v.Folder)
}

// FrameName is the base name shared by the frame file and its picture.
func (v Video) FrameName() string {
	return cameras.FrameSlug(v.Folder) + "_" + v.Stem
}

// FramePath is where the extracted frame is written: next to the video.
func (v Video) FramePath() string {
	return filepath.Join(filepath.Dir(v.Path), "frame_"+v.FrameName()+".png")
}

// FindVideos walks root and returns every file whose extension is in exts,
// compared case-insensitively, in lexical path order. Unreadable
// directories are logged and skipped.
func FindVideos(fs afero.Fs, root string, exts []string) ([]Video, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	want := make([]string, len(exts))
	for i, e := range exts {
		want[i] = strings.ToLower(e)
	}

	var videos []Video
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if !slices.Contains(want, strings.ToLower(ext)) {
			return nil
		}

		videos = append(videos, Video{
			Path:   path,
			Folder: cameraFolder(root, path),
			Stem:   strings.TrimSuffix(filepath.Base(path), ext),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return videos, nil
}

func cameraFolder(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[0]
}
