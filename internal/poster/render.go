package poster

// RenderSpec selects a template and target geometry for one render.
type RenderSpec struct {
	TemplateID string
	Width      int
	Height     int
}

func (s RenderSpec) dims() (w, h, m float64) {
	w = float64(s.Width)
	h = float64(s.Height)
	m = w
	if h < w {
		m = h
	}
	return w, h, m
}

// Renderer produces a fully resolved layout tree for one poster. Renderers
// are pure: the same inputs always yield a structurally identical tree.
type Renderer func(id BusinessIdentity, ct ReviewContent, sp RenderSpec) *Node

// DefaultTemplateID is the renderer used for any unknown template id.
const DefaultTemplateID = "tpl-000"

var renderers = map[string]Renderer{
	"tpl-000": renderRecommend,
	"tpl-001": renderYellowCard,
	"tpl-002": renderTypography,
	"tpl-003": renderWatercolor,
	"tpl-004": renderMinimal,
	"tpl-005": renderBeforeAfter,
	"tpl-006": renderTrustBadge,
	"tpl-007": renderMagazine,
	"tpl-008": renderCasual,
	"tpl-009": renderNumbers,
}

// Resolve returns the renderer for id, falling back to the default
// renderer for any unknown id. It is total over all strings.
func Resolve(id string) Renderer {
	if r, ok := renderers[id]; ok {
		return r
	}
	return renderers[DefaultTemplateID]
}

// Render derives the poster content from the raw review text and renders
// the template sp names, at sp's geometry.
func Render(id BusinessIdentity, reviewText string, sp RenderSpec) *Node {
	return Resolve(sp.TemplateID)(id, DeriveContent(reviewText), sp)
}

// stars builds the fixed five-star decoration. The rating shown is always
// the maximum; it is a visual motif, not a computed score.
func stars(x, y, size float64, color string) *Node {
	n := text(x, y, size*7, size*1.4, "★★★★★", color, size)
	n.LetterSpacing = size * 0.1
	return n
}

func bold(n *Node) *Node {
	n.Bold = true
	return n
}

func centered(n *Node) *Node {
	n.Align = AlignCenter
	return n
}

func rotated(n *Node, degrees float64) *Node {
	n.Rotation = degrees
	return n
}

func rounded(n *Node, radius float64) *Node {
	n.CornerRadius = radius
	return n
}

func circle(x, y, d float64, background string) *Node {
	n := box(x, y, d, d, background)
	n.Circle = true
	return n
}

func line(x, y, w, h float64, color string) *Node {
	return box(x, y, w, h, color)
}
