// Command stagerects converts occupancy-map images into obstacle rectangles.
//
// Dark pixels (first channel at or below 127) are occupied. Each output line
// is one rectangle in conventional axes (origin bottom-left):
//
//	x y width height
//
// Usage:
//
//	stagerects [-normalize] [-color name [-rgb file]] [-v] map.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/stage"
)

func main() {
	var (
		normalize = flag.Bool("normalize", false, "scale rectangles into the unit square")
		colorName = flag.String("color", "", "also resolve a color name from rgb.txt")
		rgbPath   = flag.String("rgb", "", "color database to use instead of the search path")
		verbose   = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] image\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		stage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	set, err := stage.RectsFromImageFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	if *normalize && len(set.Rects) > 0 {
		if err := stage.NormalizeRects(set.Rects); err != nil {
			log.Fatalf("Failed to normalize: %v", err)
		}
	}

	if err := writeRects(os.Stdout, set); err != nil {
		log.Fatalf("Failed to write: %v", err)
	}

	if *colorName != "" {
		if *rgbPath != "" {
			table, err := stage.LoadColorTable(*rgbPath)
			if err != nil {
				log.Fatalf("Failed to load colors: %v", err)
			}
			stage.UseColorTable(table)
		}
		c, ok := stage.LookupColorOK(*colorName)
		if !ok {
			log.Fatalf("Unknown color %q", *colorName)
		}
		fmt.Printf("# color %s = %s (%#08x)\n", *colorName, c, uint32(c))
	}
}

// writeRects prints the image size followed by one rectangle per line.
func writeRects(w io.Writer, set stage.RectSet) error {
	if _, err := fmt.Fprintf(w, "# %dx%d image, %d rectangles\n", set.Width, set.Height, len(set.Rects)); err != nil {
		return err
	}
	for _, r := range set.Rects {
		if _, err := fmt.Fprintf(w, "%g %g %g %g\n", r.Pose.X, r.Pose.Y, r.Size.X, r.Size.Y); err != nil {
			return err
		}
	}
	return nil
}
