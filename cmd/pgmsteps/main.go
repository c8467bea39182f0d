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

// Command pgmsteps binarizes and rotates a grayscale PGM image.
//
// Usage:
//
//	pgmsteps
//
// It takes no flags. It reads lenna.pgm from the working directory and
// writes:
//
//	threshold.pgm     samples above 80 set to 255, all others to 0
//	rotate.pgm        lenna.pgm rotated 90 degrees clockwise
//	rotate_again.pgm  rotate.pgm rotated 90 degrees clockwise again
//
// Any failure is reported on stderr and the command exits with status 1.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajroetker/go-graymap/hwy/contrib/image"
	"github.com/ajroetker/go-graymap/hwy/contrib/image/pgm"
)

const (
	inputFile       = "lenna.pgm"
	thresholdFile   = "threshold.pgm"
	rotateFile      = "rotate.pgm"
	rotateAgainFile = "rotate_again.pgm"
)

func main() {
	if err := run("."); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run performs every step with files resolved relative to dir.
func run(dir string) error {
	original, err := pgm.ReadFile(filepath.Join(dir, inputFile))
	if err != nil {
		return err
	}
	defer original.Release()

	thresh := image.Binarize(original)
	defer thresh.Release()
	if err := save(dir, thresholdFile, thresh); err != nil {
		return err
	}

	rotated := image.Rotate90(original)
	defer rotated.Release()
	if err := save(dir, rotateFile, rotated); err != nil {
		return err
	}

	rotatedAgain := image.Rotate90(rotated)
	defer rotatedAgain.Release()
	return save(dir, rotateAgainFile, rotatedAgain)
}

func save(dir, name string, img *image.Image[uint8]) error {
	if err := pgm.WriteFile(filepath.Join(dir, name), img); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%v)\n", name, img.Shape())
	return nil
}
