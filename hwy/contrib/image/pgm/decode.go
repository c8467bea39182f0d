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

package pgm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ajroetker/go-graymap/hwy/contrib/image"
)

// Decode reads a P5 image from r.
func Decode(r io.Reader) (*image.Image[uint8], error) {
	br := bufio.NewReader(r)
	shape, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	// Buffer what actually arrives; the header alone never sizes an
	// allocation.
	var raw bytes.Buffer
	if _, err := raw.ReadFrom(io.LimitReader(br, int64(shape.Len()))); err != nil {
		return nil, fmt.Errorf("pgm: reading samples: %w", err)
	}
	if raw.Len() < shape.Len() {
		return nil, fmt.Errorf("%w: got %d of %d samples: %w", ErrTruncated, raw.Len(), shape.Len(), io.ErrUnexpectedEOF)
	}

	img := image.NewImageShape[uint8](shape)
	samples := raw.Bytes()
	for y := 0; y < shape.Height; y++ {
		copy(img.RowSlice(y), samples[y*shape.Width:(y+1)*shape.Width])
	}
	return img, nil
}

// DecodeConfig reads only the header of a P5 image and returns its shape.
func DecodeConfig(r io.Reader) (image.Shape, error) {
	return readHeader(bufio.NewReader(r))
}

// readHeader consumes the header, including the single whitespace byte
// after the maximum value, leaving br at the first sample.
func readHeader(br *bufio.Reader) (image.Shape, error) {
	var magic [2]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return image.Shape{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if string(magic[:]) != Magic {
		return image.Shape{}, fmt.Errorf("%w: magic %q", ErrFormat, magic[:])
	}

	width, err := readInt(br, "width", maxDimension, ErrInvalidHeader)
	if err != nil {
		return image.Shape{}, err
	}
	height, err := readInt(br, "height", maxDimension, ErrInvalidHeader)
	if err != nil {
		return image.Shape{}, err
	}
	maxVal, err := readInt(br, "max value", maxMaxValue, ErrUnsupportedMaxValue)
	if err != nil {
		return image.Shape{}, err
	}

	if width == 0 || height == 0 {
		return image.Shape{}, fmt.Errorf("%w: %dx%d image", ErrInvalidHeader, width, height)
	}
	if int64(width)*int64(height) > maxSamples {
		return image.Shape{}, fmt.Errorf("%w: %dx%d image is too large", ErrInvalidHeader, width, height)
	}
	if maxVal != MaxValue {
		return image.Shape{}, fmt.Errorf("%w: got %d", ErrUnsupportedMaxValue, maxVal)
	}

	b, err := br.ReadByte()
	if err != nil {
		return image.Shape{}, fmt.Errorf("%w: got 0 of %d samples: %w", ErrTruncated, width*height, io.ErrUnexpectedEOF)
	}
	if !isSpace(b) {
		return image.Shape{}, fmt.Errorf("%w: want whitespace after max value, got %q", ErrInvalidHeader, b)
	}

	return image.Shape{Width: width, Height: height}, nil
}

// readInt skips whitespace and comments, then reads a non-negative decimal
// integer. The byte following the digits is left unread. Values above limit
// fail with tooLarge.
func readInt(br *bufio.Reader, field string, limit int, tooLarge error) (int, error) {
	if err := skipSpace(br); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidHeader, field, unexpected(err))
	}

	n, digits := 0, 0
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) && digits > 0 {
			return n, nil
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidHeader, field, unexpected(err))
		}
		if b < '0' || b > '9' {
			_ = br.UnreadByte()
			if digits == 0 {
				return 0, fmt.Errorf("%w: %s: unexpected %q", ErrInvalidHeader, field, b)
			}
			if !isSpace(b) && b != '#' {
				return 0, fmt.Errorf("%w: %s: unexpected %q after digits", ErrInvalidHeader, field, b)
			}
			return n, nil
		}
		n = n*10 + int(b-'0')
		digits++
		if n > limit {
			return 0, fmt.Errorf("%w: %s exceeds %d", tooLarge, field, limit)
		}
	}
}

// skipSpace consumes whitespace and '#' comments up to the next token.
func skipSpace(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case isSpace(b):
		case b == '#':
			if err := skipComment(br); err != nil {
				return err
			}
		default:
			return br.UnreadByte()
		}
	}
}

func skipComment(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' || b == '\r' {
			return nil
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
