package raster

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/smallbiznis/voicepost/internal/poster"
	"go.uber.org/zap"
)

// Rasterizer composes a layout tree into PNG bytes. It is the
// server-side counterpart of an off-screen DOM snapshot: same tree, same
// geometry, no wait step.
type Rasterizer struct {
	fonts  *FontSource
	assets *AssetFetcher
	log    *zap.Logger
}

func NewRasterizer(fonts *FontSource, assets *AssetFetcher, log *zap.Logger) *Rasterizer {
	return &Rasterizer{fonts: fonts, assets: assets, log: log.Named("raster")}
}

// Rasterize paints the tree at the spec's pixel size and encodes PNG.
func (r *Rasterizer) Rasterize(ctx context.Context, tree *poster.Node, sp poster.RenderSpec) ([]byte, error) {
	if sp.Width <= 0 || sp.Height <= 0 {
		return nil, failure("spec", fmt.Errorf("invalid dimensions %dx%d", sp.Width, sp.Height))
	}

	dc := gg.NewContext(sp.Width, sp.Height)
	if err := r.draw(ctx, dc, tree); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, failure("encode", err)
	}
	return buf.Bytes(), nil
}

func (r *Rasterizer) draw(ctx context.Context, dc *gg.Context, n *poster.Node) error {
	if n == nil {
		return nil
	}
	pushed := false
	if n.Rotation != 0 {
		dc.Push()
		dc.RotateAbout(gg.Radians(n.Rotation), n.X+n.W/2, n.Y+n.H/2)
		pushed = true
	}

	var err error
	switch n.Kind {
	case poster.KindBox:
		err = r.drawBox(dc, n)
	case poster.KindText:
		err = r.drawText(dc, n)
	case poster.KindImage:
		err = r.drawImage(ctx, dc, n)
	}
	if err == nil {
		for _, child := range n.Children {
			if err = r.draw(ctx, dc, child); err != nil {
				break
			}
		}
	}

	if pushed {
		dc.Pop()
	}
	return err
}

func (r *Rasterizer) drawBox(dc *gg.Context, n *poster.Node) error {
	if n.Background != "" {
		fill, err := parseHexColor(n.Background)
		if err != nil {
			return failure("style", err)
		}
		tracePath(dc, n)
		dc.SetColor(fill)
		dc.Fill()
	}
	return strokeBorder(dc, n)
}

func (r *Rasterizer) drawText(dc *gg.Context, n *poster.Node) error {
	col, err := parseHexColor(n.Color)
	if err != nil {
		return failure("style", err)
	}
	face, err := r.fonts.Face(n.FontSize)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetColor(col)

	lineHeight := n.LineHeight
	if lineHeight == 0 {
		lineHeight = 1.4
	}
	lines := wrapRunes(dc, n.Text, n.W, n.LetterSpacing)
	lineStep := n.FontSize * lineHeight

	top := n.Y
	if n.VCenter {
		block := lineStep * float64(len(lines))
		top += (n.H - block) / 2
	}
	for i, line := range lines {
		y := top + lineStep*(float64(i)+0.5)
		drawLine(dc, line, n, y)
	}
	return nil
}

func drawLine(dc *gg.Context, line string, n *poster.Node, y float64) {
	if n.LetterSpacing == 0 {
		switch n.Align {
		case poster.AlignCenter:
			dc.DrawStringAnchored(line, n.X+n.W/2, y, 0.5, 0.35)
		case poster.AlignRight:
			dc.DrawStringAnchored(line, n.X+n.W, y, 1, 0.35)
		default:
			dc.DrawStringAnchored(line, n.X, y, 0, 0.35)
		}
		return
	}

	runes := []rune(line)
	total := 0.0
	widths := make([]float64, len(runes))
	for i, r := range runes {
		w, _ := dc.MeasureString(string(r))
		widths[i] = w
		total += w + n.LetterSpacing
	}
	x := n.X
	switch n.Align {
	case poster.AlignCenter:
		x = n.X + (n.W-total)/2
	case poster.AlignRight:
		x = n.X + n.W - total
	}
	for i, r := range runes {
		dc.DrawStringAnchored(string(r), x, y, 0, 0.35)
		x += widths[i] + n.LetterSpacing
	}
}

// wrapRunes breaks text to the node width one rune at a time. Japanese
// has no word boundaries to split on, so space-based wrapping is useless
// here.
func wrapRunes(dc *gg.Context, text string, width, spacing float64) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	var current []rune
	lineWidth := 0.0
	for _, r := range text {
		if r == '\n' {
			lines = append(lines, string(current))
			current = current[:0]
			lineWidth = 0
			continue
		}
		w, _ := dc.MeasureString(string(r))
		w += spacing
		if lineWidth+w > width && len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
			lineWidth = 0
		}
		current = append(current, r)
		lineWidth += w
	}
	if len(current) > 0 || len(lines) == 0 {
		lines = append(lines, string(current))
	}
	return lines
}

func (r *Rasterizer) drawImage(ctx context.Context, dc *gg.Context, n *poster.Node) error {
	img, err := r.assets.Fetch(ctx, n.ImageRef)
	if err != nil {
		return err
	}

	dc.Push()
	tracePath(dc, n)
	dc.Clip()

	bounds := img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw > 0 && ih > 0 {
		sx, sy := n.W/iw, n.H/ih
		scale := sx
		if n.ImageCover {
			if sy > sx {
				scale = sy
			}
		} else {
			if sy < sx {
				scale = sy
			}
		}
		dc.Translate(n.X+n.W/2, n.Y+n.H/2)
		dc.Scale(scale, scale)
		dc.DrawImageAnchored(img, 0, 0, 0.5, 0.5)
	}
	dc.ResetClip()
	dc.Pop()

	return strokeBorder(dc, n)
}

// tracePath outlines the node's shape: circle, rounded rect, or rect.
func tracePath(dc *gg.Context, n *poster.Node) {
	switch {
	case n.Circle:
		dc.DrawCircle(n.X+n.W/2, n.Y+n.H/2, n.W/2)
	case n.CornerRadius > 0:
		dc.DrawRoundedRectangle(n.X, n.Y, n.W, n.H, n.CornerRadius)
	default:
		dc.DrawRectangle(n.X, n.Y, n.W, n.H)
	}
}

func strokeBorder(dc *gg.Context, n *poster.Node) error {
	if n.BorderWidth <= 0 || n.BorderColor == "" {
		return nil
	}
	col, err := parseHexColor(n.BorderColor)
	if err != nil {
		return failure("style", err)
	}
	tracePath(dc, n)
	dc.SetColor(col)
	dc.SetLineWidth(n.BorderWidth)
	dc.Stroke()
	return nil
}

// parseHexColor accepts #RRGGBB and #RRGGBBAA.
func parseHexColor(s string) (color.Color, error) {
	if len(s) != 7 && len(s) != 9 {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	if s[0] != '#' {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	var rr, gg8, bb, aa uint8
	aa = 0xFF
	if _, err := fmt.Sscanf(s[1:7], "%02x%02x%02x", &rr, &gg8, &bb); err != nil {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	if len(s) == 9 {
		if _, err := fmt.Sscanf(s[7:9], "%02x", &aa); err != nil {
			return nil, fmt.Errorf("invalid color %q", s)
		}
	}
	return color.NRGBA{R: rr, G: gg8, B: bb, A: aa}, nil
}
