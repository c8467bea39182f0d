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

// Package image provides SIMD-friendly 2D raster types and the transforms
// applied to grayscale rasters.
//
// The core type is Image[T], a single-channel image whose rows are padded to
// the SIMD vector width. Dimensions travel with the image as a Shape value;
// transforms never modify their input and always return a newly allocated
// image.
//
// # Point Operations
//
// Point operations transform each pixel independently:
//
//	Threshold(img, thresh, below, above) // in > thresh ? above : below
//	Binarize(img)                        // Threshold(img, 80, 0, 255) on uint8
//
// # Geometry
//
//	Rotate90(img)  // clockwise quarter turn, shape transposed
//	Rotate180(img) // half turn, shape unchanged
//	Rotate270(img) // counter-clockwise quarter turn, shape transposed
//
// # Usage Example
//
//	img, _ := image.FromRows([][]uint8{{10, 200}, {90, 30}})
//	bin := image.Binarize(img)  // [[0 255] [255 0]]
//	rot := image.Rotate90(img)  // [[90 10] [30 200]]
//	defer bin.Release()
//	defer rot.Release()
package image
