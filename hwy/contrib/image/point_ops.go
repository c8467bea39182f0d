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
	"github.com/ajroetker/go-graymap/hwy"
)

const (
	// MaxValue is the largest 8-bit sample value.
	MaxValue uint8 = 255

	// BinarizeLevel is the cutoff used by Binarize. Samples strictly above
	// it become MaxValue, all others become 0.
	BinarizeLevel uint8 = 80
)

// Threshold returns a new image where each pixel is above if the input pixel
// is strictly greater than threshold, and below otherwise. img is not
// modified.
//
// uint8 images use the SWAR kernel unless the dispatch level is scalar.
func Threshold[T hwy.Lanes](img *Image[T], threshold, below, above T) *Image[T] {
	out := NewImage[T](img.width, img.height)
	if out.data == nil {
		return out
	}

	if in8, ok := any(img).(*Image[uint8]); ok && hwy.CurrentLevel() != hwy.DispatchScalar {
		thresholdSWAR(in8, any(out).(*Image[uint8]),
			any(threshold).(uint8), any(below).(uint8), any(above).(uint8))
		return out
	}

	BaseThreshold(img, out, threshold, below, above)
	return out
}

// Binarize maps every sample above BinarizeLevel to MaxValue and every other
// sample to 0. The result is a new image; img is not modified.
func Binarize(img *Image[uint8]) *Image[uint8] {
	return Threshold(img, BinarizeLevel, 0, MaxValue)
}

// BaseThreshold applies binary threshold: out = (in > threshold) ? above : below.
// out must have the same size as img.
func BaseThreshold[T hwy.Lanes](img, out *Image[T], threshold, below, above T) {
	if img == nil || out == nil || img.data == nil || out.data == nil {
		return
	}

	for y := 0; y < img.height; y++ {
		thresholdRow(img.RowSlice(y), out.RowSlice(y), threshold, below, above)
	}
}

func thresholdRow[T hwy.Lanes](in, out []T, threshold, below, above T) {
	for i, v := range in {
		if v > threshold {
			out[i] = above
		} else {
			out[i] = below
		}
	}
}

// thresholdSWAR is the uint8 kernel: full vector chunks are compared eight
// lanes per uint64 word, the tail goes through thresholdRow.
func thresholdSWAR(img, out *Image[uint8], threshold, below, above uint8) {
	if img.data == nil || out.data == nil {
		return
	}

	belowW := hwy.Broadcast8(below)
	aboveW := hwy.Broadcast8(above)
	lanes := hwy.MaxLanes[uint8]()

	for y := 0; y < img.height; y++ {
		inRow := img.RowSlice(y)
		outRow := out.RowSlice(y)

		hwy.ProcessWithTail[uint8](len(inRow),
			func(offset int) {
				for i := offset; i < offset+lanes; i += hwy.Lanes8 {
					mask := hwy.GreaterThan8(hwy.Load8(inRow[i:]), threshold)
					hwy.Store8(hwy.Select8(mask, aboveW, belowW), outRow[i:])
				}
			},
			func(offset, count int) {
				thresholdRow(inRow[offset:offset+count], outRow[offset:offset+count], threshold, below, above)
			},
		)
	}
}
