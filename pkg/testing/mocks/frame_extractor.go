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

package mocks

import (
	"context"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
)

// MockFrameExtractor is a testify mock for frames.Extractor.
type MockFrameExtractor struct {
	mock.Mock
}

func (m *MockFrameExtractor) ExtractFrame(ctx context.Context, videoPath, outputPath, offset string) error {
	called := m.Called(ctx, videoPath, outputPath, offset)
	//nolint:wrapcheck // mock returns are wrapped by the caller
	return called.Error(0)
}

// FakeFrameExtractor writes a fixed image to the output path instead of
// running a transcoder. Videos listed in Fail get their mapped error.
type FakeFrameExtractor struct {
	Fs    afero.Fs
	Fail  map[string]error
	Image []byte
	Calls []string
}

func (f *FakeFrameExtractor) ExtractFrame(_ context.Context, videoPath, outputPath, _ string) error {
	f.Calls = append(f.Calls, videoPath)
	if err, ok := f.Fail[videoPath]; ok {
		return err
	}
	return afero.WriteFile(f.Fs, outputPath, f.Image, 0o644)
}
