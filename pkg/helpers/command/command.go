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

// Package command wraps exec.Command so external tools can be mocked in tests.
package command

import (
	"context"
	"os/exec"
)

// RunOptions configures how an external tool is launched.
type RunOptions struct {
	// HideWindow keeps a console window from flashing up on Windows.
	// Ignored on other platforms.
	HideWindow bool
}

// Executor runs external programs synchronously.
type Executor interface {
	// Output runs a command with platform options and returns its
	// standard output.
	Output(ctx context.Context, opts RunOptions, name string, args ...string) ([]byte, error)

	// CombinedOutput runs a command with platform options and returns
	// stdout and stderr interleaved. A non-zero exit is reported as an
	// error alongside whatever the program printed.
	CombinedOutput(ctx context.Context, opts RunOptions, name string, args ...string) ([]byte, error)
}

// RealExecutor runs commands on the host.
type RealExecutor struct{}

//nolint:wrapcheck // exec errors already carry the command name
func (*RealExecutor) Output(
	ctx context.Context,
	opts RunOptions,
	name string,
	args ...string,
) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	applyOptions(cmd, opts)
	return cmd.Output()
}

//nolint:wrapcheck // exec errors already carry the command name
func (*RealExecutor) CombinedOutput(
	ctx context.Context,
	opts RunOptions,
	name string,
	args ...string,
) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	applyOptions(cmd, opts)
	return cmd.CombinedOutput()
}
