package wirerender

import (
	"image"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// captionMargin is the distance in pixels from the image corner to the caption.
const captionMargin = 8

func loadFont(ttf []byte) (*truetype.Font, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	return freetype.ParseFont(ttf)
}

func (ir *ImageRenderer) drawCaption(img draw.Image) error {
	size := ir.cfg.CaptionSize
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ir.font)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(ir.cfg.CaptionColor))
	ctx.SetHinting(font.HintingFull)
	baseline := captionMargin + int(ctx.PointToFixed(size)>>6)
	_, err := ctx.DrawString(ir.cfg.Caption, freetype.Pt(captionMargin, baseline))
	return err
}
