package poster

// SizePreset is one named output geometry for a template.
type SizePreset struct {
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Style summarises a template's palette for pickers.
type Style struct {
	BackgroundColor string `json:"backgroundColor"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	Layout          string `json:"layout"`
}

// Constraints are the soft limits a picker should enforce on input text.
type Constraints struct {
	MaxBodyChars int `json:"max_body_chars"`
}

// Descriptor is the public listing shape of one template.
type Descriptor struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
	Orientation string       `json:"orientation"`
	SizePresets []SizePreset `json:"size_presets"`
	Style       Style        `json:"style"`
	Constraints Constraints  `json:"constraints"`
}

var defaultPresets = []SizePreset{
	{Label: "SNS投稿", Width: 1080, Height: 1350},
	{Label: "スクエア", Width: 1080, Height: 1080},
	{Label: "ストーリー", Width: 1080, Height: 1920},
	{Label: "プレビュー", Width: 540, Height: 675},
}

var descriptors = []Descriptor{
	{
		ID: "tpl-000", Name: "モノクロ・コラージュ", Description: "推薦ポスター風の黒背景レイアウト",
		Tags: []string{"モノクロ", "インパクト"}, Orientation: "portrait", SizePresets: defaultPresets,
		Style:       Style{BackgroundColor: "#111111", PrimaryColor: "#E8D44D", SecondaryColor: "#FFFFFF", Layout: "recommendation"},
		Constraints: Constraints{MaxBodyChars: 200},
	},
	{
		ID: "tpl-001", Name: "アイソメトリック・イエロー", Description: "口コミカードを主役にした明るいレイアウト",
		Tags: []string{"カジュアル", "イエロー"}, Orientation: "portrait", SizePresets: defaultPresets,
		Style:       Style{BackgroundColor: "#FFFFFF", PrimaryColor: "#FFD700", SecondaryColor: "#1A1A1A", Layout: "card"},
		Constraints: Constraints{MaxBodyChars: 220},
	},
	{
		ID: "tpl-002", Name: "コラージュ・タイポグラフィ", Description: "赤と黄色の帯で組んだタイポグラフィ重視レイアウト",
		Tags: []string{"ポップ", "タイポ"}, Orientation: "portrait", SizePresets: defaultPresets,
		Style:       Style{BackgroundColor: "#FAFAFA", PrimaryColor: "#E53935", SecondaryColor: "#FFD600", Layout: "headline"},
		Constraints: Constraints{MaxBodyChars: 180},
	},
	{
		ID: "tpl-003", Name: "手書き水彩風", Description: "あたたかみのあるナチュラルなレイアウト",
		Tags: []string{"ナチュラル", "やさしい"}, Orientation: "portrait", SizePresets: defaultPresets,
		Style:       Style{BackgroundColor: "#FFF8F0", PrimaryColor: "#E8927C", SecondaryColor: "#A7C4A0", Layout: "multi"},
		Constraints: Constraints{MaxBodyChars: 200},
	},
	{
		ID: "tpl-004", Name: "手書きモノクロ", Description: "余白を生かしたミニマル和風レイアウト",
		Tags: []string{"ミニマル", "和風"}, Orientation: "portrait", SizePresets: defaultPresets,
		Style:       Style{BackgroundColor: "#F7F3EE", PrimaryColor: "#C4956A", SecondaryColor: "#2C2C2C", Layout: "minimal"},
		Constraints: Constraints{MaxBodyChars: 150},
	},
	{
		ID: "tpl-005", Name: "ビジネス・スタンダード", Description: "ビフォーアフターで変化を伝えるレイアウト",
		Tags: []string{"ビジネス", "信頼"}, Orientation: "portrait", SizePresets: defaultPresets,
		Style:       Style{BackgroundColor: "#FFFFFF", PrimaryColor: "#2563EB", SecondaryColor: "#64748B", Layout: "before_after"},
		Constraints: Constraints{MaxBodyChars: 180},
	},
	{
		ID: "tpl-006", Name: "アイソメトリック・カラー", Description: "信頼バッジを軸にしたダークレイアウト",
		Tags: []string{"高級感", "ダーク"}, Orientation: "portrait", SizePresets: defaultPresets,
		Style:       Style{BackgroundColor: "#0C1220", PrimaryColor: "#D4A853", SecondaryColor: "#FFFFFF", Layout: "badge"},
		Constraints: Constraints{MaxBodyChars: 180},
	},
	{
		ID: "tpl-007", Name: "雑誌風コラージュ", Description: "インタビュー記事風の二段組レイアウト",
		Tags: []string{"雑誌風", "インタビュー"}, Orientation: "portrait", SizePresets: defaultPresets,
		Style:       Style{BackgroundColor: "#FFFFFF", PrimaryColor: "#DC2626", SecondaryColor: "#1A1A1A", Layout: "magazine"},
		Constraints: Constraints{MaxBodyChars: 240},
	},
	{
		ID: "tpl-008", Name: "シティポップ・コラージュ", Description: "SNS向けのカジュアルな吹き出しレイアウト",
		Tags: []string{"SNS", "カジュアル"}, Orientation: "portrait", SizePresets: defaultPresets,
		Style:       Style{BackgroundColor: "#FDF2F8", PrimaryColor: "#EC4899", SecondaryColor: "#8B5CF6", Layout: "sns_casual"},
		Constraints: Constraints{MaxBodyChars: 200},
	},
	{
		ID: "tpl-009", Name: "ミニチュア・フォトリアル", Description: "実績数字を打ち出すダークレイアウト",
		Tags: []string{"数字", "実績"}, Orientation: "portrait", SizePresets: defaultPresets,
		Style:       Style{BackgroundColor: "#0F172A", PrimaryColor: "#06B6D4", SecondaryColor: "#94A3B8", Layout: "numbers"},
		Constraints: Constraints{MaxBodyChars: 200},
	},
}

// Templates returns the fixed template catalogue. The ids here, the
// renderer registry, and the public listing endpoint share one source of
// truth: this slice.
func Templates() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// DescriptorByID looks up one template descriptor.
func DescriptorByID(id string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// PresetByLabel finds a named size preset on a descriptor, falling back
// to the first preset when the label is unknown.
func (d Descriptor) PresetByLabel(label string) SizePreset {
	for _, p := range d.SizePresets {
		if p.Label == label {
			return p
		}
	}
	return d.SizePresets[0]
}
