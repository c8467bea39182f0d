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
	stdimage "image"
	"image/color"
	"io"

	"github.com/ajroetker/go-graymap/hwy/contrib/image"
)

func init() {
	stdimage.RegisterFormat("pgm", Magic, decodeStd, decodeConfigStd)
}

func decodeStd(r io.Reader) (stdimage.Image, error) {
	img, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return ToGray(img), nil
}

func decodeConfigStd(r io.Reader) (stdimage.Config, error) {
	s, err := DecodeConfig(r)
	if err != nil {
		return stdimage.Config{}, err
	}
	return stdimage.Config{ColorModel: color.GrayModel, Width: s.Width, Height: s.Height}, nil
}

// ToGray copies img into a new standard library *image.Gray with bounds
// (0, 0)-(width, height).
func ToGray(img *image.Image[uint8]) *stdimage.Gray {
	g := stdimage.NewGray(stdimage.Rect(0, 0, img.Width(), img.Height()))
	for y := 0; y < img.Height(); y++ {
		copy(g.Pix[y*g.Stride:], img.RowSlice(y))
	}
	return g
}

// FromImage copies any standard library image into a new Image[uint8],
// converting pixels through color.GrayModel. *image.Gray is copied directly.
func FromImage(m stdimage.Image) *image.Image[uint8] {
	b := m.Bounds()
	img := image.NewImage[uint8](b.Dx(), b.Dy())

	if g, ok := m.(*stdimage.Gray); ok {
		for y := 0; y < img.Height(); y++ {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			copy(img.RowSlice(y), g.Pix[off:off+img.Width()])
		}
		return img
	}

	for y := 0; y < img.Height(); y++ {
		row := img.RowSlice(y)
		for x := range row {
			row[x] = color.GrayModel.Convert(m.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
		}
	}
	return img
}
