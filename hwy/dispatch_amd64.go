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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		// Byte lanes need BW; F alone only covers 32/64-bit elements.
		currentLevel = DispatchAVX512
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
	case cpu.X86.HasSSE2:
		currentLevel = DispatchSSE2
		currentWidth = 16
	default:
		setScalarMode()
	}
}
