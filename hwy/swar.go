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

import "encoding/binary"

// Byte lanes packed into a uint64 word (SWAR). These let the portable
// kernels compare and select eight uint8 samples per operation.
const (
	lsb8 = 0x0101010101010101
	msb8 = 0x8080808080808080
	low7 = 0x7f7f7f7f7f7f7f7f
)

// Lanes8 is the number of uint8 lanes in one SWAR word.
const Lanes8 = 8

// Broadcast8 returns a word with every byte lane set to b.
func Broadcast8(b uint8) uint64 {
	return uint64(b) * lsb8
}

// Load8 packs src[0:8] into a word. src must hold at least 8 bytes.
func Load8(src []uint8) uint64 {
	return binary.LittleEndian.Uint64(src)
}

// Store8 unpacks w into dst[0:8]. dst must hold at least 8 bytes.
func Store8(w uint64, dst []uint8) {
	binary.LittleEndian.PutUint64(dst, w)
}

// greaterThanMSB sets the high bit of each lane whose byte is > n.
// Only valid for n < 128: the low seven bits plus 0x7f-n never carry into
// the neighbouring lane.
func greaterThanMSB(x uint64, n uint8) uint64 {
	return (((x & low7) + Broadcast8(0x7f-n)) | x) & msb8
}

// GreaterThan8 returns a mask word with 0xff in every lane whose byte is
// strictly greater than n and 0x00 elsewhere.
func GreaterThan8(x uint64, n uint8) uint64 {
	var m uint64
	switch {
	case n < 0x80:
		m = greaterThanMSB(x, n)
	case n == 0xff:
		return 0
	default:
		// x > n  <=>  ^x < 255-n  <=>  !(^x > 254-n), and 254-n < 128.
		m = msb8 &^ greaterThanMSB(^x, 0xfe-n)
	}
	return (m >> 7) * 0xff
}

// Select8 returns, lane by lane, a where mask is 0xff and b where it is 0x00.
func Select8(mask, a, b uint64) uint64 {
	return (a & mask) | (b &^ mask)
}
