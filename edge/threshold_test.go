package edge

import (
	"math"
	"testing"

	"github.com/wbrown/edgedetect/imageutil"
)

func TestThresholdStrict(t *testing.T) {
	r := Response{{99.9, 100, 100.0000001, -500, math.NaN(), math.Inf(1), math.Inf(-1)}}
	mask := Threshold(r, 100)

	want := []uint8{MaskLow, MaskLow, MaskHigh, MaskLow, MaskLow, MaskHigh, MaskLow}
	if mask.Width() != len(want) || mask.Height() != 1 {
		t.Fatalf("Expected %dx1 mask, got %dx%d", len(want), mask.Width(), mask.Height())
	}
	for x, w := range want {
		if got := mask.GetGray(x, 0); got != w {
			t.Errorf("x=%d (value %v): expected %d, got %d", x, r[0][x], w, got)
		}
	}
}

func TestThresholdNegativeCutoff(t *testing.T) {
	// A negative cutoff marks every zero border pixel as an edge.
	mask := Threshold(NewResponse(4, 3), -1)
	if n := imageutil.CountNonZero(mask); n != 12 {
		t.Errorf("Expected 12 edge pixels, got %d", n)
	}
}

func TestThresholdIdempotent(t *testing.T) {
	mask := imageutil.CreateCheckerboardGray(16, 16, 3)

	again := Threshold(MaskToResponse(mask), DefaultCutoff)
	if !again.Equal(mask) {
		t.Error("Thresholding a 0/255 mask at 100 should return it unchanged")
	}

	third := Threshold(MaskToResponse(again), DefaultCutoff)
	if !third.Equal(again) {
		t.Error("Repeated thresholding should be stable")
	}
}

func TestThresholdEmpty(t *testing.T) {
	mask := Threshold(nil, DefaultCutoff)
	if mask.Width() != 0 || mask.Height() != 0 {
		t.Errorf("Expected empty mask, got %dx%d", mask.Width(), mask.Height())
	}
}
