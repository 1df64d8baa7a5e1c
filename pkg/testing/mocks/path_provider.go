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
	"github.com/haxsokol/create-files-cameras/pkg/pickers"
	"github.com/stretchr/testify/mock"
)

// MockPathProvider is a testify mock for pickers.PathProvider.
type MockPathProvider struct {
	mock.Mock
}

func (m *MockPathProvider) Folder(title string) (string, error) {
	called := m.Called(title)
	//nolint:wrapcheck // mock returns are wrapped by the caller
	return called.String(0), called.Error(1)
}

func (m *MockPathProvider) File(title string, filter pickers.Filter) (string, error) {
	called := m.Called(title, filter)
	//nolint:wrapcheck // mock returns are wrapped by the caller
	return called.String(0), called.Error(1)
}

// MockNotifier records messages shown to the user.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Info(title, msg string) {
	m.Called(title, msg)
}

func (m *MockNotifier) Error(title, msg string) {
	m.Called(title, msg)
}
