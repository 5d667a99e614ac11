package image

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Upscale enlarges img by an integer factor using nearest-neighbour
// sampling, so every source pixel becomes a factor×factor block.
func Upscale(img image.Image, factor int) (*image.NRGBA, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, factor)
	}

	src := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, src.Dx()*factor, src.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst, nil
}
