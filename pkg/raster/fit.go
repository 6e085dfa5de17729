package raster

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Fit scales img down to fit within maxW x maxH pixels, keeping its
// aspect ratio. Images that already fit are returned unchanged; there is
// no upscaling. Non-positive bounds leave that axis unconstrained.
func Fit(img image.Image, maxW, maxH int) image.Image {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= 0 || srcH <= 0 {
		return img
	}
	if maxW <= 0 {
		maxW = srcW
	}
	if maxH <= 0 {
		maxH = srcH
	}
	if srcW <= maxW && srcH <= maxH {
		return img
	}

	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	dstW := max(1, int(math.Round(float64(srcW)*scale)))
	dstH := max(1, int(math.Round(float64(srcH)*scale)))

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
