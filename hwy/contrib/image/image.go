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

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-graymap/hwy"
)

var (
	// ErrEmpty is returned by FromRows when there are no rows or the rows
	// have no samples.
	ErrEmpty = errors.New("image: no samples")

	// ErrRagged is returned by FromRows when the rows differ in length.
	ErrRagged = errors.New("image: rows differ in length")
)

// Shape is the width and height of an image, in samples.
type Shape struct {
	Width  int
	Height int
}

// Transposed returns the shape with width and height swapped.
func (s Shape) Transposed() Shape {
	return Shape{Width: s.Height, Height: s.Width}
}

// Len returns the number of samples, Width*Height.
func (s Shape) Len() int {
	return s.Width * s.Height
}

// IsEmpty returns true if the shape has no samples.
func (s Shape) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Image is a single-channel 2D array with SIMD-aligned rows.
// Each row is padded to a multiple of the SIMD vector width,
// so kernels can process whole vectors without bounds checks.
// Padding samples are not part of the image.
type Image[T hwy.Lanes] struct {
	data   []T
	width  int
	height int
	stride int // elements per row (includes padding)
}

// NewImage creates a new zero-filled image with the specified dimensions.
// Rows are aligned to the SIMD vector width. Non-positive dimensions yield
// an empty 0x0 image.
func NewImage[T hwy.Lanes](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}

	// Calculate stride (elements per row, rounded up to vector width)
	stride := hwy.AlignedSize[T](width)

	return &Image[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// NewImageShape creates a new image with the given shape.
func NewImageShape[T hwy.Lanes](s Shape) *Image[T] {
	return NewImage[T](s.Width, s.Height)
}

// FromRows creates an image from row-major samples, rows[y][x].
// All rows must have the same non-zero length.
func FromRows[T hwy.Lanes](rows [][]T) (*Image[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	width := len(rows[0])
	for y, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrRagged, y, len(r), width)
		}
	}

	img := NewImage[T](width, len(rows))
	for y, r := range rows {
		copy(img.RowSlice(y), r)
	}
	return img, nil
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Shape returns the image dimensions.
func (img *Image[T]) Shape() Shape {
	return Shape{Width: img.width, Height: img.height}
}

// Stride returns the number of elements per row (including padding).
func (img *Image[T]) Stride() int {
	return img.stride
}

// Row returns a mutable slice for the specified row.
// The slice includes padding elements beyond the image width.
// These can be safely read/written but are not part of the image.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.stride]
}

// RowSlice returns a mutable slice for the specified row,
// limited to the actual image width (excluding padding).
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// At returns the value at column x, row y. Out-of-bounds reads return zero.
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set sets the value at column x, row y. Out-of-bounds writes are ignored.
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	img.data[y*img.stride+x] = value
}

// Rows returns a copy of the samples as rows[y][x], without padding.
func (img *Image[T]) Rows() [][]T {
	rows := make([][]T, img.height)
	for y := range rows {
		rows[y] = append([]T(nil), img.RowSlice(y)...)
	}
	return rows
}

// SameSize returns true if both images have the same dimensions.
func SameSize[T, U hwy.Lanes](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Equal returns true if both images have the same shape and samples.
// Row padding is ignored.
func Equal[T hwy.Lanes](a, b *Image[T]) bool {
	if !SameSize(a, b) {
		return false
	}
	for y := 0; y < a.height; y++ {
		ra, rb := a.RowSlice(y), b.RowSlice(y)
		for x := range ra {
			if ra[x] != rb[x] {
				return false
			}
		}
	}
	return true
}

// Clone creates a deep copy of the image.
func (img *Image[T]) Clone() *Image[T] {
	if img.data == nil {
		return NewImage[T](0, 0)
	}

	clone := &Image[T]{
		data:   make([]T, len(img.data)),
		width:  img.width,
		height: img.height,
		stride: img.stride,
	}
	copy(clone.data, img.data)
	return clone
}

// Fill sets all pixels to the specified value.
func (img *Image[T]) Fill(value T) {
	for i := range img.data {
		img.data[i] = value
	}
}

// Release drops the image storage and resets its shape to 0x0.
// The image must not be used afterwards except to call Release again.
func (img *Image[T]) Release() {
	if img == nil {
		return
	}
	img.data = nil
	img.width, img.height, img.stride = 0, 0, 0
}
