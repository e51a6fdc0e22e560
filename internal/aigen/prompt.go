package aigen

import (
	"fmt"
	"strings"

	surveydomain "github.com/smallbiznis/voicepost/internal/survey/domain"
)

// buildReviewPrompt constructs the Japanese instruction prompt for the
// text model from the survey answers.
func buildReviewPrompt(in ReviewInput) string {
	var summary []string
	for _, q := range in.Questions {
		answer, ok := findAnswer(in.Answers, q.ID)
		if !ok {
			continue
		}
		switch q.Type {
		case "rating":
			summary = append(summary, fmt.Sprintf("- %s: %v点 / 5点", q.Label, answer))
		case "multi_select":
			summary = append(summary, fmt.Sprintf("- %s: %s", q.Label, joinSelected(answer)))
		case "free_text":
			summary = append(summary, fmt.Sprintf("- %s: %v", q.Label, answer))
		}
	}

	var sb strings.Builder
	sb.WriteString("あなたは口コミ文章の作成アシスタントです。以下の情報をもとに、自然で信頼感のある口コミ文章を日本語で1つ生成してください。\n\n")
	fmt.Fprintf(&sb, "【サービス名】%s\n", in.ServiceName)
	fmt.Fprintf(&sb, "【サービス概要】%s\n", in.Description)
	fmt.Fprintf(&sb, "【提供内容】%s\n\n", in.WhatYouDo)
	sb.WriteString("【アンケート回答】\n")
	sb.WriteString(strings.Join(summary, "\n"))
	sb.WriteString("\n")
	if in.FreeComment != "" {
		fmt.Fprintf(&sb, "【自由コメント】%s\n", in.FreeComment)
	}
	sb.WriteString(`
【生成ルール】
- 100〜200文字程度の自然な口コミ文にしてください
- 実際の利用者が書いたような、リアルで具体的な表現を使ってください
- アンケートの回答内容を自然に組み込んでください
- 電話番号、メールアドレス、住所などの個人情報は絶対に含めないでください
- 過度な宣伝文句や誇張表現は避けてください
- 敬体（です・ます調）で書いてください
- 口コミ文章のみを出力してください（説明や注釈は不要）`)
	return sb.String()
}

// Per-template design direction for the image model.
var imageDesigns = map[string]string{
	"tpl-000": `【デザインスタイル：推薦ポスター型】
- 深い紺色のグラデーション背景に、ゴールドの★とキャッチコピーを上部に配置
- 中央の白い角丸カードに口コミ文を大きく表示し、先頭に装飾的な引用符を置く
- カードの下に★★★★★の五つ星評価
- 信頼感・プロフェッショナル感を強調`,
	"tpl-001": `【デザインスタイル：口コミカード型】
- 白基調で薄いブルーのグラデーション背景、中央に大きな白いカード
- カード上部にサービス名、「✨ お客様の声 ✨」のラベルと大きめの五つ星
- 口コミ文を中央揃えで読みやすく、上品で誠実な印象に`,
	"tpl-002": `【デザインスタイル：大見出しポスター型】
- ダークな背景に超大きな「お客様の声」ヘッダー（ゴールド系）
- 中央のクリーム色の口コミボックスに力強いフォントで口コミ文
- 背景に大きな円形のアクセント装飾、力強く簡潔に`,
	"tpl-003": `【デザインスタイル：口コミまとめ型】
- 薄いグリーンの背景で安心感を出し、上部にサービス名を大きく表示
- 口コミカードの左にグリーンのアクセントライン、★評価を添える
- 信頼感と実績を強調するレイアウト`,
	"tpl-004": `【デザインスタイル：シンプルモダン型】
- オフホワイトのミニマルな背景に「VOICE」の英字レタリング
- 口コミ文を繊細なフォントで中央表示し、細い線でセクションを区切る
- 余白を活かした高級感あるエレガントなデザイン`,
	"tpl-005": `【デザインスタイル：ビフォーアフター型】
- 左右2分割。左「Before（お悩み）」はグレー系、右「After（解決）」は明るいトーン
- 中央に口コミ文をオーバーレイし、★★★★★を目立つ位置に
- 変化・成長を視覚的に表現`,
	"tpl-006": `【デザインスタイル：信頼のバッジ型】
- 濃いネイビーの高級感ある背景に大きなゴールドのバッジ
- バッジ内に「TRUSTED」の文言、口コミ文は白文字で格調高く
- 金色のアクセントラインで区切り、権威性を演出`,
	"tpl-007": `【デザインスタイル：雑誌風インタビュー型】
- 白ベースの洗練された二段組。上部に「Customer Interview」の英字ヘッダー
- 口コミ文を対話形式風に配置し、サービス名を洗練されたタイポグラフィで
- 雑誌のインタビューページ風の知的な印象`,
	"tpl-008": `【デザインスタイル：SNS風カジュアル型】
- ピンク〜パープルのパステルグラデーション背景に吹き出し型の口コミボックス
- 「#おすすめ」風のハッシュタグ装飾、Instagram投稿風のレイアウト
- 若い世代向けの親しみやすいデザイン`,
	"tpl-009": `【デザインスタイル：実績数字アピール型】
- 紺色の信頼感ある背景に「★4.9」のような大きな数字
- 中央の白いカードに口コミ文、★★★★★の大きな星評価
- 数字で信頼を可視化するデータドリブンな訴求`,
}

// buildImagePrompt constructs the Japanese design prompt for the image
// model. Unknown template ids reuse the default design direction.
func buildImagePrompt(in ImageInput) string {
	design, ok := imageDesigns[in.TemplateID]
	if !ok {
		design = imageDesigns["tpl-000"]
	}
	orientation := "縦長（portrait）"
	if in.Width > in.Height {
		orientation = "横長（landscape）"
	}

	var sb strings.Builder
	sb.WriteString("あなたはプロフェッショナルなグラフィックデザイナーです。\n")
	sb.WriteString("以下の情報をもとに、「利用者の声・推薦の声」のポスター画像を生成してください。\n\n")
	sb.WriteString("【サービス情報】\n")
	fmt.Fprintf(&sb, "サービス名：%s\n", in.ServiceName)
	fmt.Fprintf(&sb, "サービス概要：%s\n", in.Description)
	fmt.Fprintf(&sb, "提供内容：%s\n", in.WhatYouDo)
	if in.OwnerName != "" {
		fmt.Fprintf(&sb, "運営者名：%s\n", in.OwnerName)
	}
	fmt.Fprintf(&sb, "\n【口コミ文（必ず画像に含めること）】\n「%s」\n\n", in.ReviewText)
	sb.WriteString(design)
	if in.HasFace {
		sb.WriteString("\n- 添付の顔写真を利用者として丸く切り抜いて配置する")
	}
	if in.HasLogo {
		sb.WriteString("\n- 添付のロゴ画像を邪魔にならない位置に配置する")
	}
	sb.WriteString("\n\n【共通デザイン要件】\n")
	fmt.Fprintf(&sb, "- 向き: %s（アスペクト比 %d:%d）\n", orientation, in.Width, in.Height)
	sb.WriteString(`- 日本語テキストをすべて正しく、美しく表示する
- 口コミ文は必ず画像内に読みやすく配置する
- サービス名を必ず含める
- 文字は読みやすいサイズとコントラストを確保
- SNSでシェアされたときに目を引くデザイン

画像を生成してください。`)
	return sb.String()
}

func findAnswer(answers []surveydomain.Answer, questionID string) (any, bool) {
	for _, a := range answers {
		if a.QuestionID == questionID {
			return a.Value, true
		}
	}
	return nil, false
}

// joinSelected renders a multi-select answer as 「a、b、c」.
func joinSelected(value any) string {
	items, ok := value.([]any)
	if !ok {
		return fmt.Sprintf("%v", value)
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return strings.Join(parts, "、")
}
