// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package image

import "github.com/ajroetker/go-graymap/hwy"

// rotateTile is the edge length, in samples, of the square blocks the
// quarter-turn rotations copy at a time.
const rotateTile = 64

// Rotate90 returns a new image rotated 90 degrees clockwise.
// The result has the transposed shape: its width is img's height and its
// height is img's width. Input pixel (row, col) lands at
// (col, height-1-row), so the first input row becomes the last column.
func Rotate90[T hwy.Lanes](img *Image[T]) *Image[T] {
	out := NewImageShape[T](img.Shape().Transposed())
	if out.data == nil {
		return out
	}

	h := img.height
	for y0 := 0; y0 < img.height; y0 += rotateTile {
		y1 := min(y0+rotateTile, img.height)
		for x0 := 0; x0 < img.width; x0 += rotateTile {
			x1 := min(x0+rotateTile, img.width)
			for y := y0; y < y1; y++ {
				row := img.RowSlice(y)
				col := h - 1 - y
				for x := x0; x < x1; x++ {
					out.data[x*out.stride+col] = row[x]
				}
			}
		}
	}
	return out
}

// Rotate270 returns a new image rotated 90 degrees counter-clockwise.
// Input pixel (row, col) lands at (width-1-col, row).
func Rotate270[T hwy.Lanes](img *Image[T]) *Image[T] {
	out := NewImageShape[T](img.Shape().Transposed())
	if out.data == nil {
		return out
	}

	w := img.width
	for y0 := 0; y0 < img.height; y0 += rotateTile {
		y1 := min(y0+rotateTile, img.height)
		for x0 := 0; x0 < img.width; x0 += rotateTile {
			x1 := min(x0+rotateTile, img.width)
			for y := y0; y < y1; y++ {
				row := img.RowSlice(y)
				for x := x0; x < x1; x++ {
					out.data[(w-1-x)*out.stride+y] = row[x]
				}
			}
		}
	}
	return out
}

// Rotate180 returns a new image rotated by a half turn.
// Input pixel (row, col) lands at (height-1-row, width-1-col).
func Rotate180[T hwy.Lanes](img *Image[T]) *Image[T] {
	out := NewImageShape[T](img.Shape())
	if out.data == nil {
		return out
	}

	w, h := img.width, img.height
	for y := 0; y < h; y++ {
		src := img.RowSlice(y)
		dst := out.RowSlice(h - 1 - y)
		for x, v := range src {
			dst[w-1-x] = v
		}
	}
	return out
}
