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

package pickers

import (
	"errors"
	"fmt"

	"github.com/nixinwang/dialog"
	"github.com/rs/zerolog/log"
)

// Dialog uses the operating system's file and folder pickers.
type Dialog struct {
	StartDir string
}

func (d Dialog) Folder(title string) (string, error) {
	b := dialog.Directory().Title(title)
	if d.StartDir != "" {
		b = b.SetStartDir(d.StartDir)
	}
	path, err := b.Browse()
	return dialogResult(path, err)
}

func (d Dialog) File(title string, filter Filter) (string, error) {
	b := dialog.File().Title(title)
	if len(filter.Extensions) > 0 {
		b = b.Filter(filter.Description, filter.Extensions...)
	}
	if d.StartDir != "" {
		b = b.SetStartDir(d.StartDir)
	}
	path, err := b.Load()
	return dialogResult(path, err)
}

func (Dialog) Info(title, msg string) {
	dialog.Message("%s", msg).Title(title).Info()
}

func (Dialog) Error(title, msg string) {
	dialog.Message("%s", msg).Title(title).Error()
}

func dialogResult(path string, err error) (string, error) {
	if errors.Is(err, dialog.ErrCancelled) {
		log.Debug().Msg("dialog cancelled")
		return "", ErrNoSelection
	}
	if err != nil {
		return "", fmt.Errorf("dialog failed: %w", err)
	}
	if path == "" {
		return "", ErrNoSelection
	}
	return path, nil
}
