package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/voximity/raytracer-go/internal/prim"
)

// compareToReference decodes the PNG at path and reports its
// structural similarity (spec's SSIM, carried from the teacher's
// internal/prim.SSIM) against img, for catching unintended render
// regressions between runs.
func compareToReference(img image.Image, path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("compareToReference: open %q: %w", path, err)
	}
	defer f.Close()

	ref, err := png.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("compareToReference: decode %q: %w", path, err)
	}

	return prim.SSIM(img, ref)
}
