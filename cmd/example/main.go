// Command example renders a scene to a PNG file: either a built-in
// canned scene, or one parsed from a GML scene file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/voximity/raytracer-go/internal/gml"
	"github.com/voximity/raytracer-go/internal/rtlog"
	"go.uber.org/zap"
)

var (
	gmlFile   = flag.String("gml_file", "", "gml scene file to render")
	outFile   = flag.String("out_file", "", "png filename to write")
	width     = flag.Int("width", 1900, "output image width in pixels")
	height    = flag.Int("height", 1200, "output image height in pixels")
	debug     = flag.Bool("debug", false, "use a human-readable development logger")
	compareTo = flag.String("compare_to", "", "optional reference PNG to SSIM-compare the render against, for catching regressions")
)

func main() {
	flag.Parse()

	if err := rtlog.Init(*debug); err != nil {
		log.Fatalf("rtlog: init: %v", err)
	}
	defer rtlog.Sync()

	if *outFile == "" {
		log.Fatal("--out_file is required")
	}

	scene := cannedScene(*width, *height)
	if *gmlFile != "" {
		src, err := os.ReadFile(*gmlFile)
		if err != nil {
			log.Fatalf("reading gml file: %v", err)
		}
		scene, err = gml.BuildScene(string(src))
		if err != nil {
			log.Fatalf("building scene from gml: %v", err)
		}
	} else {
		rtlog.Log.Info("no --gml_file given, rendering canned scene", zap.Int("width", *width), zap.Int("height", *height))
	}

	if err := scene.RenderToFile(*outFile); err != nil {
		log.Fatalf("rendering: %v", err)
	}
	fmt.Printf("wrote %s\n", *outFile)

	if *compareTo != "" {
		f, err := os.Open(*outFile)
		if err != nil {
			log.Fatalf("reopening %s for comparison: %v", *outFile, err)
		}
		defer f.Close()
		rendered, err := png.Decode(f)
		if err != nil {
			log.Fatalf("decoding %s for comparison: %v", *outFile, err)
		}

		score, err := compareToReference(rendered, *compareTo)
		if err != nil {
			log.Fatalf("comparing against %s: %v", *compareTo, err)
		}
		rtlog.Log.Info("render regression check", zap.String("reference", *compareTo), zap.Float64("ssim", score))
	}
}
