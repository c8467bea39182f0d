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

// Package pgm reads and writes binary grayscale Netpbm images ("P5" PGM)
// with 8-bit samples.
//
// The header is the magic "P5" followed by whitespace-separated decimal
// width, height and maximum value. A '#' wherever whitespace is allowed
// starts a comment that runs to the end of the line. Exactly one whitespace
// byte separates the maximum value from width*height raw samples in
// row-major order. Only a maximum value of 255 is supported.
//
// Importing the package registers the "pgm" format with the standard
// library, so image.Decode returns an *image.Gray for P5 input. image.Decode
// uses the first registration whose magic matches: if another package that
// registers "P5" (for example github.com/jbuchbinder/gopnm) is initialized
// first, its decoder wins. Call Decode directly to be independent of
// registration order.
package pgm

import (
	"errors"

	"github.com/ajroetker/go-graymap/hwy/contrib/image"
)

const (
	// Magic is the two-byte signature of a binary PGM file.
	Magic = "P5"

	// MaxValue is the only supported maximum sample value.
	MaxValue = int(image.MaxValue)

	// maxDimension bounds width and height while parsing.
	maxDimension = 1 << 24

	// maxMaxValue bounds the max value field while parsing; Netpbm allows
	// up to 65535.
	maxMaxValue = 1<<16 - 1

	// maxSamples bounds width*height so the raster fits in memory.
	maxSamples = 1 << 30
)

var (
	// ErrFormat is returned when the input does not start with the P5
	// magic bytes.
	ErrFormat = errors.New("pgm: not a binary PGM (P5) file")

	// ErrInvalidHeader is returned when width, height or the maximum value
	// are missing, malformed or out of range.
	ErrInvalidHeader = errors.New("pgm: invalid header")

	// ErrUnsupportedMaxValue is returned for maximum values other than 255.
	ErrUnsupportedMaxValue = errors.New("pgm: unsupported max value, only 8-bit images are supported")

	// ErrTruncated is returned when the input ends before width*height
	// samples have been read.
	ErrTruncated = errors.New("pgm: truncated pixel data")

	// ErrEmptyImage is returned by Encode for images with no samples.
	ErrEmptyImage = errors.New("pgm: image has no samples")
)
