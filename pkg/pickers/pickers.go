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

// Package pickers asks the user for input paths, through native dialogs,
// a terminal prompt, or fixed values supplied on the command line.
package pickers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNoSelection = errors.New("nothing selected")

// Filter restricts a file dialog to some extensions, given without dots.
type Filter struct {
	Description string
	Extensions  []string
}

var SpreadsheetFilter = Filter{
	Description: "Excel files",
	Extensions:  []string{"xlsx", "xlsm", "csv"},
}

// PathProvider returns a folder or file chosen by the user. A cancelled or
// empty choice is ErrNoSelection.
type PathProvider interface {
	Folder(title string) (string, error)
	File(title string, filter Filter) (string, error)
}

// Notifier shows a final message to the user.
type Notifier interface {
	Info(title, msg string)
	Error(title, msg string)
}

// Prompt reads paths typed (or pasted) into a terminal. Quotes and spaces
// around the answer are dropped, so paths copied with "Copy as path" on
// Windows work as is.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

func (p *Prompt) Folder(title string) (string, error) {
	return p.ask(title)
}

func (p *Prompt) File(title string, _ Filter) (string, error) {
	return p.ask(title)
}

func (p *Prompt) ask(title string) (string, error) {
	if _, err := fmt.Fprint(p.out, title); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	answer := CleanPath(line)
	if answer == "" {
		return "", ErrNoSelection
	}
	return answer, nil
}

func (p *Prompt) Info(title, msg string) {
	_, _ = fmt.Fprintf(p.out, "%s: %s\n", title, msg)
}

func (p *Prompt) Error(title, msg string) {
	_, _ = fmt.Fprintf(p.out, "%s: %s\n", title, msg)
}

// CleanPath strips line endings plus surrounding double quotes and spaces.
func CleanPath(s string) string {
	return strings.Trim(strings.TrimRight(s, "\r\n"), `" `)
}

// Static answers with fixed paths.
type Static struct {
	FolderPath string
	FilePath   string
}

func (s Static) Folder(string) (string, error) {
	if s.FolderPath == "" {
		return "", ErrNoSelection
	}
	return s.FolderPath, nil
}

func (s Static) File(string, Filter) (string, error) {
	if s.FilePath == "" {
		return "", ErrNoSelection
	}
	return s.FilePath, nil
}

// Fallback uses Static values where set and asks Next for the rest.
type Fallback struct {
	Next PathProvider
	Static
}

func (f Fallback) Folder(title string) (string, error) {
	if f.FolderPath != "" {
		return f.FolderPath, nil
	}
	//nolint:wrapcheck // provider errors are returned as is
	return f.Next.Folder(title)
}

func (f Fallback) File(title string, filter Filter) (string, error) {
	if f.FilePath != "" {
		return f.FilePath, nil
	}
	//nolint:wrapcheck // provider errors are returned as is
	return f.Next.File(title, filter)
}
