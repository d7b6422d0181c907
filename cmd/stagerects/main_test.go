package main

import (
	"bytes"
	"testing"

	"github.com/gogpu/stage"
)

func TestWriteRects(t *testing.T) {
	set := stage.RectSet{
		Width:  4,
		Height: 2,
		Rects: []stage.RotRect{
			{Pose: stage.Pose{X: 0, Y: 1}, Size: stage.Size{X: 4, Y: 1}},
			{Pose: stage.Pose{X: 0.5, Y: 0}, Size: stage.Size{X: 0.25, Y: 1}},
		},
	}

	var buf bytes.Buffer
	if err := writeRects(&buf, set); err != nil {
		t.Fatalf("writeRects() error = %v", err)
	}

	want := "# 4x2 image, 2 rectangles\n0 1 4 1\n0.5 0 0.25 1\n"
	if got := buf.String(); got != want {
		t.Errorf("writeRects() = %q, want %q", got, want)
	}
}
