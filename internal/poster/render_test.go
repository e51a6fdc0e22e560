package poster

import (
	"reflect"
	"testing"
)

var testIdentity = BusinessIdentity{
	ServiceName: "〇〇整体",
	Description: "地域密着の整体院",
	WhatYouDo:   "肩こり・腰痛の施術",
	OwnerName:   "山田太郎",
}

const testReview = "初めて利用しましたが、とても丁寧な対応で安心できました。肩の痛みが楽になり、通うのが楽しみです。"

func allTemplateIDs() []string {
	ids := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestRenderIsDeterministic(t *testing.T) {
	for _, id := range allTemplateIDs() {
		sp := RenderSpec{TemplateID: id, Width: 1080, Height: 1350}
		a := Render(testIdentity, testReview, sp)
		b := Render(testIdentity, testReview, sp)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("template %s: repeated renders differ", id)
		}
	}
}

func TestRenderScalesProportionally(t *testing.T) {
	for _, id := range allTemplateIDs() {
		small := Render(testIdentity, testReview, RenderSpec{TemplateID: id, Width: 540, Height: 675})
		large := Render(testIdentity, testReview, RenderSpec{TemplateID: id, Width: 1080, Height: 1350})

		var smallNodes, largeNodes []*Node
		small.Walk(func(n *Node) { smallNodes = append(smallNodes, n) })
		large.Walk(func(n *Node) { largeNodes = append(largeNodes, n) })
		if len(smallNodes) != len(largeNodes) {
			t.Fatalf("template %s: tree shapes differ across scales", id)
		}
		for i := range smallNodes {
			s, l := smallNodes[i], largeNodes[i]
			pairs := [][2]float64{
				{s.X, l.X}, {s.Y, l.Y}, {s.W, l.W}, {s.H, l.H},
				{s.FontSize, l.FontSize},
				{s.BorderWidth, l.BorderWidth},
				{s.CornerRadius, l.CornerRadius},
				{s.LetterSpacing, l.LetterSpacing},
			}
			for _, p := range pairs {
				if p[0]*2 != p[1] {
					t.Fatalf("template %s node %d: %v is not exactly double %v", id, i, p[1], p[0])
				}
			}
		}
	}
}

func TestRenderKeepsReviewTextComplete(t *testing.T) {
	ct := DeriveContent(testReview)
	for _, id := range allTemplateIDs() {
		tree := Render(testIdentity, testReview, RenderSpec{TemplateID: id, Width: 1080, Height: 1350})
		whole := tree.ContainsText(testReview)
		split := tree.ContainsText(ct.Highlight) && (ct.Remainder == "" || tree.ContainsText(ct.Remainder))
		if !whole && !split {
			t.Fatalf("template %s: review text does not appear in full", id)
		}
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	sp := RenderSpec{Width: 1080, Height: 1350}
	unknown := Resolve("tpl-999")(testIdentity, DeriveContent(testReview), sp)
	def := Resolve(DefaultTemplateID)(testIdentity, DeriveContent(testReview), sp)
	if !reflect.DeepEqual(unknown, def) {
		t.Fatalf("unknown template id must render via the default renderer")
	}
}

func TestFacePlaceholderGlyph(t *testing.T) {
	id := BusinessIdentity{ServiceName: "x", OwnerName: "田中"}
	n := id.FaceNode(0, 0, FaceStyle{Size: 100, Rounded: true})
	if !n.ContainsText("田") {
		t.Fatalf("expected placeholder glyph 田")
	}

	anon := BusinessIdentity{ServiceName: "x"}
	n = anon.FaceNode(0, 0, FaceStyle{Size: 100})
	if !n.ContainsText("?") {
		t.Fatalf("expected placeholder glyph ?")
	}
}

func TestFaceNodeUsesImageWhenPresent(t *testing.T) {
	id := BusinessIdentity{ServiceName: "x", OwnerName: "田中", FaceImageRef: "https://example.com/face.png"}
	n := id.FaceNode(0, 0, FaceStyle{Size: 100, Rounded: true})
	if n.Kind != KindImage || n.ImageRef != id.FaceImageRef {
		t.Fatalf("expected image node for present face ref")
	}
	if n.ContainsText("田") {
		t.Fatalf("placeholder glyph must not render alongside the photo")
	}
}

func TestLogoNodeOmittedWhenAbsent(t *testing.T) {
	if n := (BusinessIdentity{ServiceName: "x"}).LogoNode(0, 0, 100, 40); n != nil {
		t.Fatalf("expected nil logo node when no logo is set")
	}
}

func TestWatercolorEndToEnd(t *testing.T) {
	anon := BusinessIdentity{ServiceName: "〇〇整体", Description: "地域密着の整体院"}
	review := "初めて利用しましたが、とても丁寧な対応で安心できました。"
	tree := Render(anon, review, RenderSpec{TemplateID: "tpl-003", Width: 1080, Height: 1350})

	if !tree.ContainsText(review) {
		t.Fatalf("tree must contain the literal review text")
	}
	if !tree.ContainsText("任せて、安心。") {
		t.Fatalf("tree must contain the reassurance catch copy")
	}
	if !tree.ContainsText("?") {
		t.Fatalf("tree must contain the anonymous placeholder glyph")
	}
}

func TestTemplatesMatchRendererRegistry(t *testing.T) {
	if len(descriptors) != len(renderers) {
		t.Fatalf("descriptor and renderer sets differ: %d vs %d", len(descriptors), len(renderers))
	}
	for _, d := range Templates() {
		if _, ok := renderers[d.ID]; !ok {
			t.Fatalf("descriptor %s has no renderer", d.ID)
		}
		if len(d.SizePresets) == 0 {
			t.Fatalf("descriptor %s has no size presets", d.ID)
		}
	}
}

func TestPresetByLabelFallsBackToFirst(t *testing.T) {
	d, ok := DescriptorByID("tpl-000")
	if !ok {
		t.Fatalf("tpl-000 must exist")
	}
	got := d.PresetByLabel("存在しないサイズ")
	if got != d.SizePresets[0] {
		t.Fatalf("unknown preset label must fall back to the first preset")
	}
}
