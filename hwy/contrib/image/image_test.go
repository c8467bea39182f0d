package image

import (
	"errors"
	"testing"

	"github.com/ajroetker/go-graymap/hwy"
)

func TestNewImage(t *testing.T) {
	img := NewImage[uint8](100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}
	if got := img.Shape(); got != (Shape{Width: 100, Height: 50}) {
		t.Errorf("Shape: got %v, want 100x50", got)
	}

	// Stride should be >= width and aligned to vector width
	lanes := hwy.MaxLanes[uint8]()
	if img.Stride() < 100 {
		t.Errorf("Stride: got %d, want >= 100", img.Stride())
	}
	if img.Stride()%lanes != 0 {
		t.Errorf("Stride not aligned: got %d, want multiple of %d", img.Stride(), lanes)
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	img := NewImage[uint8](0, 0)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	img = NewImage[uint8](-1, 10)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", img.Width(), img.Height())
	}
	if !img.Shape().IsEmpty() {
		t.Error("Shape of empty image should be empty")
	}
}

func TestShape(t *testing.T) {
	s := Shape{Width: 3, Height: 7}
	if got := s.Transposed(); got != (Shape{Width: 7, Height: 3}) {
		t.Errorf("Transposed: got %v, want 7x3", got)
	}
	if s.Transposed().Transposed() != s {
		t.Error("Transposed twice should restore the shape")
	}
	if s.Len() != 21 {
		t.Errorf("Len: got %d, want 21", s.Len())
	}
	if s.String() != "3x7" {
		t.Errorf("String: got %q, want %q", s.String(), "3x7")
	}
}

func TestFromRows(t *testing.T) {
	img, err := FromRows([][]uint8{{10, 200}, {90, 30}, {1, 2}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if img.Width() != 2 || img.Height() != 3 {
		t.Fatalf("FromRows dimensions: got %dx%d, want 2x3", img.Width(), img.Height())
	}
	if got := img.At(1, 0); got != 200 {
		t.Errorf("At(1,0): got %d, want 200", got)
	}
	if got := img.At(0, 1); got != 90 {
		t.Errorf("At(0,1): got %d, want 90", got)
	}
}

func TestFromRows_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]uint8
		want error
	}{
		{"nil", nil, ErrEmpty},
		{"empty_row", [][]uint8{{}}, ErrEmpty},
		{"ragged", [][]uint8{{1, 2}, {3}}, ErrRagged},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromRows(tc.rows)
			if !errors.Is(err, tc.want) {
				t.Errorf("FromRows: got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestImage_Rows(t *testing.T) {
	want := [][]uint8{{1, 2, 3}, {4, 5, 6}}
	img, err := FromRows(want)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	got := img.Rows()
	assertRows(t, got, want)

	// Copy should be independent
	got[0][0] = 99
	if img.At(0, 0) != 1 {
		t.Error("Rows should return a copy")
	}
}

func TestImage_Row(t *testing.T) {
	img := NewImage[uint8](10, 5)

	row0 := img.Row(0)
	for i := range 10 {
		row0[i] = uint8(i)
	}
	for i := range 10 {
		if row0[i] != uint8(i) {
			t.Errorf("Row[0][%d]: got %v, want %v", i, row0[i], i)
		}
	}

	// Different row should be independent
	row1 := img.Row(1)
	row1[0] = 99
	if row0[0] == 99 {
		t.Error("Rows should be independent")
	}

	// Out of bounds
	if img.Row(-1) != nil {
		t.Error("Row(-1) should return nil")
	}
	if img.Row(5) != nil {
		t.Error("Row(5) should return nil")
	}
}

func TestImage_RowSlice(t *testing.T) {
	img := NewImage[uint8](10, 5)

	if got := len(img.RowSlice(0)); got != 10 {
		t.Errorf("RowSlice length: got %d, want 10", got)
	}
	if got := len(img.Row(0)); got < 10 {
		t.Errorf("Row length: got %d, want >= 10", got)
	}
	if img.RowSlice(5) != nil {
		t.Error("RowSlice(5) should return nil")
	}
}

func TestImage_AtSet(t *testing.T) {
	img := NewImage[uint8](10, 10)

	img.Set(5, 7, 42)
	if got := img.At(5, 7); got != 42 {
		t.Errorf("At(5,7): got %v, want 42", got)
	}

	// Out of bounds should return zero
	if got := img.At(-1, 0); got != 0 {
		t.Errorf("At(-1,0): got %v, want 0", got)
	}
	if got := img.At(10, 0); got != 0 {
		t.Errorf("At(10,0): got %v, want 0", got)
	}

	// Set out of bounds should be no-op
	img.Set(-1, 0, 99)
	img.Set(10, 0, 99)
	if got := img.At(0, 1); got != 0 {
		t.Errorf("out-of-bounds Set leaked into At(0,1): got %v", got)
	}
}

func TestImage_Clone(t *testing.T) {
	img := NewImage[uint8](10, 10)
	img.Set(5, 5, 42)

	clone := img.Clone()
	if !Equal(img, clone) {
		t.Fatal("Clone should equal the original")
	}

	// Should be independent
	clone.Set(5, 5, 100)
	if img.At(5, 5) != 42 {
		t.Error("Clone should be independent")
	}
}

func TestImage_Fill(t *testing.T) {
	img := NewImage[uint8](10, 10)
	img.Fill(42)
	for y := range 10 {
		for x := range 10 {
			if img.At(x, y) != 42 {
				t.Errorf("Fill: At(%d,%d) = %v, want 42", x, y, img.At(x, y))
			}
		}
	}
}

func TestImage_Release(t *testing.T) {
	img := NewImage[uint8](10, 10)
	clone := img.Clone()

	img.Release()
	if !img.Shape().IsEmpty() || img.Stride() != 0 {
		t.Errorf("Release: shape %v stride %d, want empty", img.Shape(), img.Stride())
	}
	if img.Row(0) != nil {
		t.Error("Row after Release should return nil")
	}

	// Idempotent, and other images are unaffected
	img.Release()
	if clone.Width() != 10 || clone.Height() != 10 {
		t.Error("Release should not affect clones")
	}

	var nilImg *Image[uint8]
	nilImg.Release()
}

func TestEqual(t *testing.T) {
	a, _ := FromRows([][]uint8{{1, 2}, {3, 4}})
	b, _ := FromRows([][]uint8{{1, 2}, {3, 4}})
	c, _ := FromRows([][]uint8{{1, 2}, {3, 5}})
	d, _ := FromRows([][]uint8{{1, 2, 3, 4}})

	if !Equal(a, b) {
		t.Error("Equal should be true for identical samples")
	}
	if Equal(a, c) {
		t.Error("Equal should be false for different samples")
	}
	if Equal(a, d) {
		t.Error("Equal should be false for different shapes")
	}

	// Padding is not part of the image
	if row := b.Row(0); len(row) > b.Width() {
		row[b.Width()] = 77
		if !Equal(a, b) {
			t.Error("Equal should ignore row padding")
		}
	}
}

func TestSameSize(t *testing.T) {
	a := NewImage[uint8](100, 50)
	b := NewImage[uint8](100, 50)
	c := NewImage[uint8](50, 100)

	if !SameSize(a, b) {
		t.Error("SameSize should return true for equal dimensions")
	}
	if SameSize(a, c) {
		t.Error("SameSize should return false for different dimensions")
	}

	// Different types
	d := NewImage[float32](100, 50)
	if !SameSize(a, d) {
		t.Error("SameSize should work across different element types")
	}
}

func assertRows[T hwy.Lanes](t *testing.T, got, want [][]T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("rows: got %d, want %d", len(got), len(want))
	}
	for y := range want {
		if len(got[y]) != len(want[y]) {
			t.Fatalf("row %d: got %d samples, want %d", y, len(got[y]), len(want[y]))
		}
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Errorf("(%d,%d): got %v, want %v", x, y, got[y][x], want[y][x])
			}
		}
	}
}

// patternImage fills a w x h image with a sample that encodes its position.
func patternImage(w, h int) *Image[uint8] {
	img := NewImage[uint8](w, h)
	for y := range h {
		row := img.RowSlice(y)
		for x := range row {
			row[x] = uint8(x*7 + y*13)
		}
	}
	return img
}
