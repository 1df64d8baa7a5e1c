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

package frames

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // ffmpeg may be pointed at .jpg outputs
	"image/png"
	"math"

	"github.com/spf13/afero"
	"golang.org/x/image/draw"
)

const (
	MaxWidth  = 480
	MaxHeight = 270
)

// Size is a frame's pixel dimensions after scaling. The zero value means
// the frame could not be scaled.
type Size struct {
	Width  int
	Height int
}

func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// FitWithin scales (w, h) by one factor so it fills the maxW×maxH box
// without exceeding it. Smaller images are scaled up. Neither side drops
// below one pixel. The side that does not touch the box is moved by a few
// pixels when that keeps the aspect ratio equal at two decimals.
func FitWithin(w, h, maxW, maxH int) Size {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return Size{}
	}

	byWidth := float64(maxW)/float64(w) <= float64(maxH)/float64(h)
	ratio := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	size := Size{
		Width:  clamp(int(math.Round(float64(w)*ratio)), maxW),
		Height: clamp(int(math.Round(float64(h)*ratio)), maxH),
	}

	want := aspect2(w, h)
	if aspect2(size.Width, size.Height) == want {
		return size
	}
	for _, d := range []int{-1, 1, -2, 2, -3, 3} {
		c := size
		if byWidth {
			c.Height += d
		} else {
			c.Width += d
		}
		if c.Width < 1 || c.Height < 1 || c.Width > maxW || c.Height > maxH {
			continue
		}
		if aspect2(c.Width, c.Height) == want {
			return c
		}
	}
	return size
}

// aspect2 is w/h in hundredths, rounded.
func aspect2(w, h int) float64 {
	return math.Round(float64(w) / float64(h) * 100)
}

func clamp(v, hi int) int {
	return max(1, min(v, hi))
}

// ScalePNG decodes an image, flattens it onto black as an opaque RGB frame
// and re-encodes it as PNG inside the bounding box.
func ScalePNG(data []byte, maxW, maxH int) ([]byte, Size, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, Size{}, fmt.Errorf("failed to decode image: %w", err)
	}

	b := src.Bounds()
	size := FitWithin(b.Dx(), b.Dy(), maxW, maxH)
	if size.IsZero() {
		return nil, Size{}, fmt.Errorf("image has no pixels: %dx%d", b.Dx(), b.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, Size{}, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), size, nil
}

// Resize scales the image at path in place. On any failure it returns the
// zero Size and leaves the file as it was.
func Resize(fs afero.Fs, path string, maxW, maxH int) (Size, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Size{}, fmt.Errorf("failed to read frame: %w", err)
	}

	out, size, err := ScalePNG(data, maxW, maxH)
	if err != nil {
		return Size{}, err
	}

	if err := afero.WriteFile(fs, path, out, 0o644); err != nil {
		return Size{}, fmt.Errorf("failed to write frame: %w", err)
	}
	return size, nil
}
