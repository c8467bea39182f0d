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
	"fmt"
	"io"

	"github.com/ajroetker/go-graymap/hwy/contrib/image"
)

// Encode writes img to w as a P5 image: the magic, a "<width> <height>"
// line, a "255" line, then the samples row by row. Row padding is not
// written.
func Encode(w io.Writer, img *image.Image[uint8]) error {
	if img == nil || img.Shape().IsEmpty() {
		return ErrEmptyImage
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", Magic, img.Width(), img.Height(), MaxValue)
	for y := 0; y < img.Height(); y++ {
		bw.Write(img.RowSlice(y))
	}
	// bufio.Writer errors are sticky; Flush reports the first one.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pgm: writing image: %w", err)
	}
	return nil
}
