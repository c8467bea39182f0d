package hwy

import "testing"

func TestProcessWithTail(t *testing.T) {
	lanes := MaxLanes[uint8]()
	sizes := []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes + 5}

	for _, size := range sizes {
		seen := make([]int, size)
		var tailCalls int

		ProcessWithTail[uint8](size,
			func(offset int) {
				for i := offset; i < offset+lanes; i++ {
					seen[i]++
				}
			},
			func(offset, count int) {
				tailCalls++
				if count <= 0 || count >= lanes {
					t.Errorf("size %d: tail count %d out of range", size, count)
				}
				for i := offset; i < offset+count; i++ {
					seen[i]++
				}
			},
		)

		for i, n := range seen {
			if n != 1 {
				t.Errorf("size %d: element %d visited %d times", size, i, n)
			}
		}
		wantTail := 0
		if size%lanes != 0 {
			wantTail = 1
		}
		if tailCalls != wantTail {
			t.Errorf("size %d: tail called %d times, want %d", size, tailCalls, wantTail)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	lanes := MaxLanes[uint8]()
	tests := []struct {
		size int
		want int
	}{
		{0, 0},
		{1, lanes},
		{lanes, lanes},
		{lanes + 1, 2 * lanes},
	}
	for _, tc := range tests {
		if got := AlignedSize[uint8](tc.size); got != tc.want {
			t.Errorf("AlignedSize(%d): got %d, want %d", tc.size, got, tc.want)
		}
		if !IsAligned[uint8](AlignedSize[uint8](tc.size)) {
			t.Errorf("IsAligned(AlignedSize(%d)) = false", tc.size)
		}
	}
}
