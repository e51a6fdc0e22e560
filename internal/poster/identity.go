package poster

const (
	placeholderBackground = "#E5E7EB"
	placeholderColor      = "#6B7280"
)

// BusinessIdentity carries everything a layout needs to brand a poster.
// Image refs may be empty; layouts degrade gracefully when they are.
type BusinessIdentity struct {
	ServiceName  string
	Description  string
	WhatYouDo    string
	OwnerName    string
	FaceImageRef string
	LogoImageRef string
}

// Initial returns the first rune of the owner name, or "?" when the
// owner name is unknown. Used for the face placeholder glyph.
func (id BusinessIdentity) Initial() string {
	for _, r := range id.OwnerName {
		return string(r)
	}
	return "?"
}

// FaceStyle controls the face slot's clip shape and border.
type FaceStyle struct {
	Size        float64
	BorderColor string
	BorderWidth float64
	Rounded     bool
}

// FaceNode builds a face slot at the given origin. When no face image is
// set it renders a monogram placeholder so the slot never collapses.
func (id BusinessIdentity) FaceNode(x, y float64, style FaceStyle) *Node {
	radius := style.Size * 0.08
	if id.FaceImageRef != "" {
		n := image(x, y, style.Size, style.Size, id.FaceImageRef)
		n.ImageCover = true
		n.Circle = style.Rounded
		if !style.Rounded {
			n.CornerRadius = radius
		}
		n.BorderColor = style.BorderColor
		n.BorderWidth = style.BorderWidth
		return n
	}
	n := box(x, y, style.Size, style.Size, placeholderBackground)
	n.Circle = style.Rounded
	if !style.Rounded {
		n.CornerRadius = radius
	}
	n.BorderColor = style.BorderColor
	n.BorderWidth = style.BorderWidth
	glyph := text(x, y, style.Size, style.Size, id.Initial(), placeholderColor, style.Size*0.4)
	glyph.Align = AlignCenter
	glyph.VCenter = true
	glyph.Bold = true
	return n.add(glyph)
}

// LogoNode builds a logo slot, or returns nil when the business has no
// logo so callers can skip the slot entirely.
func (id BusinessIdentity) LogoNode(x, y, w, h float64) *Node {
	if id.LogoImageRef == "" {
		return nil
	}
	return image(x, y, w, h, id.LogoImageRef)
}
