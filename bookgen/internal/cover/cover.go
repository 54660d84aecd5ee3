// Package cover draws the procedural cover image of a book.
package cover

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/errs"
	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/seedrand"
)

const (
	Width  = 200
	Height = 300

	titleSize  = 18
	authorSize = 14
	margin     = 20
	wrapAfter  = 3

	titleBaseline  = 80
	line1Baseline  = 70
	line2Baseline  = 95
	authorBaseline = 120
)

var (
	palette = []color.RGBA{
		{R: 0xe3, G: 0xf2, B: 0xfd, A: 0xff},
		{R: 0xe8, G: 0xea, B: 0xf6, A: 0xff},
		{R: 0xe0, G: 0xf2, B: 0xf1, A: 0xff},
		{R: 0xfc, G: 0xe4, B: 0xec, A: 0xff},
		{R: 0xf1, G: 0xf8, B: 0xe9, A: 0xff},
	}
	fallbackColor = palette[0]
	textColor     = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	borderColor   = color.RGBA{R: 0xcf, G: 0xcf, B: 0xcf, A: 0xff}
)

// Renderer holds the parsed fonts. Faces are built per call since a truetype
// face caches glyphs and is not safe for concurrent use.
type Renderer struct {
	bold     *truetype.Font
	italic   *truetype.Font
	fallback []byte
	encode   func(dc *gg.Context, w io.Writer) error
}

func NewRenderer() (*Renderer, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse bold font")
	}
	italic, err := truetype.Parse(goitalic.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse italic font")
	}
	r := &Renderer{
		bold:   bold,
		italic: italic,
		encode: (*gg.Context).EncodePNG,
	}

	dc := gg.NewContext(Width, Height)
	dc.SetColor(fallbackColor)
	dc.Clear()
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(err, "encode fallback cover")
	}
	r.fallback = buf.Bytes()
	return r, nil
}

// Background is the palette color a title maps to.
func Background(title string) color.RGBA {
	i := int(math.Floor(seedrand.New(title).Float64() * float64(len(palette))))
	if i < 0 || i >= len(palette) {
		return fallbackColor
	}
	return palette[i]
}

// WrapTitle splits titles of more than three space-separated words into two
// lines: the first three words and the rest.
func WrapTitle(title string) []string {
	words := strings.Split(title, " ")
	if len(words) <= wrapAfter {
		return []string{title}
	}
	return []string{
		strings.Join(words[:wrapAfter], " "),
		strings.Join(words[wrapAfter:], " "),
	}
}

// Render returns the PNG cover of a book. It never fails: on any drawing or
// encoding error the blank fallback cover is returned.
func (r *Renderer) Render(title, author string) []byte {
	data, err := r.Draw(title, author)
	if err != nil {
		return r.Fallback()
	}
	return data
}

// Fallback is the blank cover served when drawing fails.
func (r *Renderer) Fallback() []byte {
	out := make([]byte, len(r.fallback))
	copy(out, r.fallback)
	return out
}

// Draw is Render without the fallback. Errors wrap errs.ErrRender.
func (r *Renderer) Draw(title, author string) (data []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			data, err = nil, errors.Wrap(errs.ErrRender, fmt.Sprint(p))
		}
	}()

	dc := gg.NewContext(Width, Height)
	dc.SetColor(Background(title))
	dc.Clear()

	dc.SetColor(textColor)
	dc.SetFontFace(truetype.NewFace(r.bold, &truetype.Options{Size: titleSize}))
	if lines := WrapTitle(title); len(lines) == 2 {
		drawCentered(dc, lines[0], line1Baseline)
		drawCentered(dc, lines[1], line2Baseline)
	} else {
		drawCentered(dc, title, titleBaseline)
	}

	dc.SetFontFace(truetype.NewFace(r.italic, &truetype.Options{Size: authorSize}))
	drawCentered(dc, author, authorBaseline)

	dc.SetColor(borderColor)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, Width-1, Height-1)
	dc.Stroke()

	var buf bytes.Buffer
	if err := r.encode(dc, &buf); err != nil {
		return nil, errors.Wrap(errs.ErrRender, err.Error())
	}
	return buf.Bytes(), nil
}

// drawCentered draws s centered on the canvas with its baseline at y,
// squeezing it horizontally when it is wider than the canvas minus margins.
func drawCentered(dc *gg.Context, s string, y float64) {
	if s == "" {
		return
	}
	cx := float64(Width) / 2
	w, _ := dc.MeasureString(s)
	maxWidth := float64(Width - margin)
	dc.Push()
	if w > maxWidth {
		dc.ScaleAbout(maxWidth/w, 1, cx, y)
	}
	dc.DrawStringAnchored(s, cx, y, 0.5, 0)
	dc.Pop()
}
