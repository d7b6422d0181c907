package stage_test

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/stage"
)

func ExampleLine3D() {
	// Cast a ray until it reaches the wall at x = 3.
	hit := stage.Line3D(0, 0, 0, 6, 2, 0, func(x, y, z int32) bool {
		fmt.Println(x, y, z)
		return x == 3
	})
	fmt.Println("hit:", hit)
	// Output:
	// 0 0 0
	// 1 0 0
	// 1 1 0
	// 2 1 0
	// 3 1 0
	// hit: true
}

func ExampleRectsFromImage() {
	img := image.NewGray(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	// A dark 3x2 block in the top-left corner.
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}

	set, err := stage.RectsFromImage(img)
	if err != nil {
		panic(err)
	}
	for _, r := range set.Rects {
		fmt.Println(r.Pose.X, r.Pose.Y, r.Size.X, r.Size.Y)
	}
	// Output:
	// 0 1 3 2
}

func ExamplePose_Compose() {
	robot := stage.Pose{X: 2, Y: 1, A: math.Pi / 2}
	sensor := stage.Pose{X: 0.5}

	p := robot.Compose(sensor)
	fmt.Printf("%.2f %.2f %.2f\n", p.X, p.Y, p.A)
	// Output:
	// 2.00 1.50 1.57
}
