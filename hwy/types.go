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

// Package hwy provides the lane-width dispatch layer shared by the raster
// kernels in hwy/contrib.
//
// At init time the package detects the widest vector unit the CPU offers
// (AVX-512, AVX2, SSE2, NEON) and records its width in bytes. Image rows are
// padded to that many lanes, and kernels process rows in chunks of
// MaxLanes[T] elements with a scalar tail:
//
//	hwy.ProcessWithTail[uint8](len(row),
//	    func(offset int) {
//	        // full chunk of MaxLanes[uint8]() samples at row[offset:]
//	    },
//	    func(offset, count int) {
//	        // remaining count samples at row[offset:]
//	    },
//	)
//
// Byte chunks are processed eight lanes at a time packed into uint64 words
// (see Broadcast8 and GreaterThan8).
//
// Set HWY_NO_SIMD=1 to force the scalar kernels.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}
