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
	"fmt"
	"os"

	"github.com/ajroetker/go-graymap/hwy/contrib/image"
)

// ReadFile decodes the P5 image stored in the named file.
func ReadFile(name string) (*image.Image[uint8], error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("pgm: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

// WriteFile encodes img to the named file, creating or truncating it.
// An empty image fails with ErrEmptyImage and leaves the file untouched.
func WriteFile(name string, img *image.Image[uint8]) (err error) {
	if img == nil || img.Shape().IsEmpty() {
		return fmt.Errorf("%s: %w", name, ErrEmptyImage)
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("pgm: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("pgm: %w", cerr)
		}
	}()

	if err := Encode(f, img); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
