package poster

// Kind discriminates layout node variants.
type Kind int

const (
	KindBox Kind = iota
	KindText
	KindImage
)

// Align positions wrapped text horizontally inside its node rect.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Node is one element of a rendered layout tree. All geometry is resolved
// to concrete pixels for a single RenderSpec; colors are #RRGGBB or
// #RRGGBBAA hex strings. Children are painted after their parent, in order.
type Node struct {
	Kind Kind

	X, Y, W, H float64

	Background   string
	CornerRadius float64
	Circle       bool
	BorderColor  string
	BorderWidth  float64
	Rotation     float64 // degrees, about the node centre

	Text          string
	FontSize      float64
	Color         string
	Bold          bool
	LineHeight    float64 // multiplier of FontSize
	Align         Align
	VCenter       bool
	LetterSpacing float64 // extra px between glyphs

	ImageRef   string
	ImageCover bool // cover crop; contain otherwise

	Children []*Node
}

func box(x, y, w, h float64, background string) *Node {
	return &Node{Kind: KindBox, X: x, Y: y, W: w, H: h, Background: background}
}

func text(x, y, w, h float64, value, color string, size float64) *Node {
	return &Node{
		Kind:       KindText,
		X:          x,
		Y:          y,
		W:          w,
		H:          h,
		Text:       value,
		Color:      color,
		FontSize:   size,
		LineHeight: 1.4,
	}
}

func image(x, y, w, h float64, ref string) *Node {
	return &Node{Kind: KindImage, X: x, Y: y, W: w, H: h, ImageRef: ref}
}

func (n *Node) add(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Walk visits every node in paint order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// ContainsText reports whether the given string appears verbatim in any
// text node of the tree.
func (n *Node) ContainsText(value string) bool {
	found := false
	n.Walk(func(node *Node) {
		if node.Kind == KindText && node.Text == value {
			found = true
		}
	})
	return found
}
