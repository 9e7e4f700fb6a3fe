package renderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// ToRGBA converts the render buffer to a standard library image.RGBA,
// the shape the PNG encoder (and the HTTP render endpoint) consume.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			idx := (y*img.Width + x) * 4
			out.SetRGBA(x, y, color.RGBA{
				R: img.Pixels[idx],
				G: img.Pixels[idx+1],
				B: img.Pixels[idx+2],
				A: img.Pixels[idx+3],
			})
		}
	}
	return out
}

// EncodePNG renders img to an in-memory PNG, for the HTTP render
// endpoint and CLI output.
func (img *Image) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.ToRGBA()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
