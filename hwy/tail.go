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

package hwy

// ProcessWithTail is a helper for processing arrays in vector-sized chunks
// that handles both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of vector width
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	// Process full vectors
	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	// Process tail if any
	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of vector width.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize[T Lanes](size int) int {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return size
	}
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// IsAligned returns true if size is a multiple of vector width.
func IsAligned[T Lanes](size int) bool {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return true
	}
	return size%maxLanes == 0
}
