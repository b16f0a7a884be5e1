package output

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionPadding = 4

var (
	captionBackground = color.RGBA{R: 24, G: 24, B: 24, A: 255}
	captionForeground = color.RGBA{R: 235, G: 235, B: 235, A: 255}
)

// CaptionHeight is the height of the band Caption adds below the image
func CaptionHeight() int {
	return basicfont.Face7x13.Height + 2*captionPadding
}

// Caption returns a copy of img with a text band appended at the bottom.
// Text wider than the image is clipped.
func Caption(img image.Image, text string) *image.RGBA {
	src := img.Bounds()
	band := CaptionHeight()
	dst := image.NewRGBA(image.Rect(0, 0, src.Dx(), src.Dy()+band))

	draw.Draw(dst, image.Rect(0, 0, src.Dx(), src.Dy()), img, src.Min, draw.Src)
	bandRect := image.Rect(0, src.Dy(), src.Dx(), src.Dy()+band)
	draw.Draw(dst, bandRect, image.NewUniform(captionBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(captionForeground),
		Face: face,
		Dot:  fixed.P(captionPadding, src.Dy()+captionPadding+face.Ascent),
	}
	d.DrawString(text)
	return dst
}
