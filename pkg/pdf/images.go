package pdf

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 90

// Page dimensions in inches, used to cap image pixel sizes at the selected DPI.
var pageInches = map[string][2]float64{
	"letter": {8.5, 11},
	"a4":     {8.27, 11.69},
}

// probeImage checks that path decodes as a supported raster format.
func probeImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _, err = image.DecodeConfig(f)
	return err
}

// preparePage decodes src, flattens it onto a white background, scales it
// down to the page pixel budget and re-encodes it as a JPEG temp file that
// pdfcpu can import directly. The caller removes the returned file.
func preparePage(src, format string, dpi int) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	flat := flatten(img)
	if size, ok := pageInches[format]; ok {
		maxW := int(size[0] * float64(dpi))
		maxH := int(size[1] * float64(dpi))
		flat = fit(flat, maxW, maxH)
	}

	tmp, err := os.CreateTemp("", "mkpdf-page-*.jpg")
	if err != nil {
		return "", err
	}

	if err := jpeg.Encode(tmp, flat, &jpeg.Options{Quality: jpegQuality}); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to encode page: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}

// flatten composites img onto white, normalizing alpha and color model.
func flatten(img image.Image) image.Image {
	bounds := img.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Over)
	return dst
}

// fit downscales img to maxW x maxH, keeping the aspect ratio. Images that
// already fit are returned unchanged; upscaling never happens.
func fit(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}

	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
