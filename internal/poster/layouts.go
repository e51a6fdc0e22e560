package poster

// The ten layout arrangements. Every measurement is derived from the
// requested width, height, or their minimum, so a render at twice the
// size scales every value by exactly two.

// tpl-000: モノクロ・コラージュ（推薦ポスター）
func renderRecommend(id BusinessIdentity, ct ReviewContent, sp RenderSpec) *Node {
	w, h, m := sp.dims()
	pad := w * 0.05
	photo := m * 0.22

	root := box(0, 0, w, h, "#111111")

	watermark := bold(centered(text(0, (h-w*0.21)/2, w, w*0.21, "RECOMMEND", "#FFFFFF14", w*0.15)))
	watermark.LetterSpacing = w * 0.015
	watermark.VCenter = true
	root.add(rotated(watermark, -15))

	catch := bold(text(pad, pad, w-2*pad, w*0.16, ct.CatchCopy, "#FFFFFF", w*0.06))
	catch.LineHeight = 1.3
	root.add(catch)

	colY := pad + w*0.16 + h*0.03
	root.add(id.FaceNode(pad, colY, FaceStyle{Size: photo, BorderColor: "#FFFFFF", BorderWidth: m * 0.002}))
	if id.OwnerName != "" {
		root.add(centered(text(pad, colY+photo+m*0.008, photo, w*0.035, id.OwnerName, "#CCCCCC", w*0.025)))
	}

	bodyX := pad + photo + w*0.04
	footerY := h - pad - h*0.06
	root.add(bold(text(bodyX, colY, w*0.07, w*0.07, "「", "#E8D44D", w*0.06)))
	body := text(bodyX, colY+w*0.07, w-pad-bodyX, footerY-h*0.04-colY-w*0.14, ct.ReviewText, "#FFFFFF", w*0.028)
	body.LineHeight = 1.8
	root.add(body)
	closing := bold(text(bodyX, footerY-h*0.04-w*0.07, w-pad-bodyX, w*0.07, "」", "#E8D44D", w*0.06))
	closing.Align = AlignRight
	root.add(closing)

	root.add(line(pad, footerY-h*0.02, w-2*pad, h*0.001, "#FFFFFF33"))
	root.add(bold(text(pad, footerY, w*0.3, w*0.05, id.ServiceName, "#E8D44D", w*0.035)))
	root.add(stars(pad+w*0.32, footerY+w*0.005, w*0.025, "#E8D44D"))
	root.add(id.LogoNode(w-pad-h*0.18, footerY, h*0.18, h*0.06))
	return root
}

// tpl-001: アイソメトリック・イエロー（口コミカード）
func renderYellowCard(id BusinessIdentity, ct ReviewContent, sp RenderSpec) *Node {
	w, h, m := sp.dims()
	pad := w * 0.05
	photo := m * 0.2

	root := box(0, 0, w, h, "#FFFFFF")
	root.add(line(0, 0, w, h*0.008, "#FFD700"))

	headerY := h*0.008 + h*0.03
	root.add(bold(text(pad, headerY, w*0.6, w*0.055, id.ServiceName, "#1A1A1A", w*0.04)))
	root.add(id.LogoNode(w-pad-h*0.18, headerY, h*0.18, h*0.06))

	mainY := headerY + w*0.055 + h*0.03
	footerY := h - h*0.004 - h*0.03 - w*0.03
	root.add(id.FaceNode(pad, mainY, FaceStyle{Size: photo, BorderColor: "#FFD700", BorderWidth: m * 0.004, Rounded: true}))
	if id.OwnerName != "" {
		root.add(bold(centered(text(pad, mainY+photo+m*0.008, photo, w*0.03, id.OwnerName, "#1A1A1A", w*0.022))))
	}

	cardX := pad + photo + w*0.04
	card := rounded(box(cardX, mainY, w-pad-cardX, footerY-h*0.03-mainY, "#F5F5F5"), m*0.015)
	card.add(line(cardX, mainY, m*0.006, footerY-h*0.03-mainY, "#FFD700"))
	inX := cardX + w*0.04
	inW := w - pad - cardX - 2*w*0.04
	card.add(stars(inX, mainY+w*0.04, w*0.03, "#FFD700"))
	card.add(bold(text(inX, mainY+w*0.04+w*0.055, inW, w*0.045, ct.CatchCopy, "#1A1A1A", w*0.03)))
	body := text(inX, mainY+w*0.04+w*0.1, inW, footerY-h*0.03-mainY-w*0.04-w*0.1-w*0.04, ct.ReviewText, "#1A1A1A", w*0.025)
	body.LineHeight = 1.7
	card.add(body)
	root.add(card)

	root.add(line(pad, footerY-h*0.004, w-2*pad, h*0.001, "#E0E0E0"))
	root.add(text(pad, footerY, w-2*pad, w*0.028, id.Description, "#666666", w*0.02))
	root.add(line(0, h-h*0.004, w, h*0.004, "#FFD700"))
	return root
}

// tpl-002: コラージュ・タイポグラフィ
func renderTypography(id BusinessIdentity, ct ReviewContent, sp RenderSpec) *Node {
	w, h, m := sp.dims()
	band := w * 0.08
	pad := w * 0.04
	photo := m * 0.18

	root := box(0, 0, w, h, "#FAFAFA")

	rail := box(0, 0, band, h, "#E53935")
	voice := bold(centered(text(0, h/2-w*0.1, band, w*0.2, "VOICE", "#FFFFFF", w*0.03)))
	voice.LetterSpacing = w * 0.006
	voice.VCenter = true
	rail.add(rotated(voice, 90))
	root.add(rail)

	topBand := box(band, 0, w-band, h*0.05, "#1565C0")
	name := bold(text(band+w*0.03, 0, w-band-w*0.06, h*0.05, id.ServiceName, "#FFFFFF", w*0.025))
	name.VCenter = true
	topBand.add(name)
	root.add(topBand)

	x := band + pad
	innerW := w - band - 2*pad
	catchY := h*0.05 + pad
	root.add(line(x, catchY, m*0.006, w*0.14, "#E53935"))
	catch := bold(text(x+m*0.018, catchY, innerW-m*0.018, w*0.14, ct.CatchCopy, "#111111", w*0.055))
	catch.LineHeight = 1.2
	root.add(catch)

	midY := catchY + w*0.14 + h*0.03
	footerY := h - pad - w*0.05
	root.add(id.FaceNode(x, midY, FaceStyle{Size: photo, BorderColor: "#111111", BorderWidth: m * 0.002}))
	if id.OwnerName != "" {
		root.add(centered(text(x, midY+photo+m*0.008, photo, w*0.028, id.OwnerName, "#111111", w*0.02)))
	}

	boxX := x + photo + pad
	review := rounded(box(boxX, midY, w-pad-boxX, footerY-h*0.02-midY, "#FFD600"), m*0.012)
	body := text(boxX+w*0.03, midY+w*0.03, w-pad-boxX-2*w*0.03, footerY-h*0.02-midY-2*w*0.03, ct.ReviewText, "#111111", w*0.024)
	body.LineHeight = 1.6
	review.add(body)
	root.add(review)

	root.add(stars(x, footerY, w*0.03, "#FFD600"))
	root.add(id.LogoNode(w-pad-h*0.15, footerY, h*0.15, h*0.05))
	return root
}

// tpl-003: 手書き水彩風
func renderWatercolor(id BusinessIdentity, ct ReviewContent, sp RenderSpec) *Node {
	w, h, m := sp.dims()
	pad := w * 0.05
	photo := m * 0.18

	root := box(0, 0, w, h, "#FFF8F0")
	root.add(circle(w-m*0.14, -m*0.046, m*0.19, "#E8927C26"))
	root.add(circle(-m*0.028, h-m*0.112, m*0.14, "#A7C4A026"))

	root.add(id.LogoNode(pad, pad, h*0.15, h*0.05))
	nameX := pad
	if id.LogoImageRef != "" {
		nameX += h*0.15 + m*0.015
	}
	root.add(bold(text(nameX, pad, w-pad-nameX, w*0.05, id.ServiceName, "#4A3728", w*0.035)))

	faceY := pad + w*0.05 + h*0.02
	root.add(id.FaceNode((w-photo)/2, faceY, FaceStyle{Size: photo, BorderColor: "#E8927C", BorderWidth: m * 0.003, Rounded: true}))

	cardY := faceY + photo + h*0.02
	footerY := h - h*0.04 - w*0.028
	card := rounded(box(pad, cardY, w-2*pad, footerY-h*0.03-cardY, "#FFFFFF"), m*0.015)
	card.Rotation = -1
	inX := pad + w*0.04
	inW := w - 2*pad - 2*w*0.04
	card.add(stars(inX, cardY+w*0.04, w*0.025, "#E8927C"))
	card.add(bold(text(inX+w*0.2, cardY+w*0.04, inW-w*0.2, w*0.042, ct.CatchCopy, "#E8927C", w*0.03)))
	body := text(inX, cardY+w*0.04+w*0.05, inW, footerY-h*0.03-cardY-w*0.04-w*0.05-w*0.04, ct.ReviewText, "#4A3728", w*0.025)
	body.LineHeight = 1.8
	card.add(body)
	if id.OwnerName != "" {
		sig := text(inX, footerY-h*0.03-w*0.04-w*0.028, inW, w*0.028, "— "+id.OwnerName+" 様", "#A7C4A0", w*0.02)
		sig.Align = AlignRight
		card.add(sig)
	}
	root.add(card)

	footer := box(0, footerY, w, h-footerY, "#A7C4A0")
	caption := text(pad, footerY, w-2*pad, h-footerY, id.Description, "#4A3728", w*0.02)
	caption.VCenter = true
	footer.add(caption)
	root.add(footer)
	return root
}

// tpl-004: 手書きモノクロ（ミニマル和風）
func renderMinimal(id BusinessIdentity, ct ReviewContent, sp RenderSpec) *Node {
	w, h, m := sp.dims()
	photo := m * 0.12

	root := box(0, 0, w, h, "#F7F3EE")

	y := h * 0.08
	voice := centered(text(0, y, w, w*0.042, "VOICE", "#C4956A", w*0.03))
	voice.LetterSpacing = w * 0.009
	root.add(voice)
	y += w*0.042 + m*0.015
	root.add(line(w*0.2, y, w*0.6, h*0.001, "#2C2C2C"))
	y += h * 0.04

	root.add(id.FaceNode((w-photo)/2, y, FaceStyle{Size: photo, BorderColor: "#C4956A", BorderWidth: m * 0.002, Rounded: true}))
	y += photo + m*0.012
	if id.OwnerName != "" {
		root.add(centered(text(0, y, w, w*0.028, id.OwnerName, "#2C2C2C", w*0.02)))
		y += w * 0.028
	}
	y += h * 0.03
	root.add(line(w*0.1, y, w*0.8, h*0.001, "#2C2C2C"))
	y += h * 0.03

	bottom := h - h*0.08 - h*0.04 - w*0.028 - h*0.03 - w*0.028 - h*0.03
	body := centered(text(w*0.08, y, w*0.84, bottom-y, ct.ReviewText, "#2C2C2C", w*0.026))
	body.LineHeight = 2.0
	body.VCenter = true
	root.add(body)

	y = bottom
	root.add(line(w*0.1, y, w*0.8, h*0.001, "#2C2C2C"))
	y += h * 0.03
	root.add(stars((w-w*0.14)/2, y, w*0.02, "#C4956A"))
	y += w*0.028 + h*0.03
	root.add(id.LogoNode(w*0.3, y, h*0.12, h*0.04))
	nameX := w * 0.3
	if id.LogoImageRef != "" {
		nameX += h*0.12 + m*0.015
	}
	root.add(text(nameX, y, w*0.7-nameX, w*0.028, id.ServiceName, "#8C8C8C", w*0.02))
	return root
}

// tpl-005: ビジネス・スタンダード（ビフォーアフター）
func renderBeforeAfter(id BusinessIdentity, ct ReviewContent, sp RenderSpec) *Node {
	w, h, m := sp.dims()
	pad := w * 0.05
	photo := m * 0.18
	headerH := h*0.04 + w*0.03
	footerH := h*0.04 + w*0.05

	root := box(0, 0, w, h, "#FFFFFF")

	header := box(0, 0, w, headerH, "#2563EB")
	title := bold(text(pad, 0, w*0.5, headerH, "お客様の声", "#FFFFFF", w*0.03))
	title.VCenter = true
	header.add(title, stars(w-pad-w*0.175, (headerH-w*0.035)/2, w*0.025, "#FFFFFF"))
	root.add(header)

	mainH := h - headerH - footerH
	half := (w - m*0.002) / 2
	before := box(0, headerH, half, mainH, "#F1F5F9")
	before.add(bold(text(w*0.04, headerH+w*0.04, half-2*w*0.04, w*0.035, "Before", "#94A3B8", w*0.025)))
	before.add(text(w*0.04, headerH+w*0.04+w*0.05, half-2*w*0.04, mainH-w*0.14, "こんなお悩みありませんか？", "#64748B", w*0.022))
	root.add(before)

	root.add(line(half, headerH, m*0.002, mainH, "#2563EB"))

	afterX := half + m*0.002
	after := box(afterX, headerH, w-afterX, mainH, "#F8FAFC")
	after.add(bold(text(afterX+w*0.04, headerH+w*0.04, w-afterX-2*w*0.04, w*0.035, "After", "#2563EB", w*0.025)))
	after.add(bold(text(afterX+w*0.04, headerH+w*0.04+w*0.05, w-afterX-2*w*0.04, w*0.042, ct.CatchCopy, "#2563EB", w*0.028)))
	body := text(afterX+w*0.04, headerH+w*0.04+w*0.1, w-afterX-2*w*0.04, mainH-w*0.18, ct.ReviewText, "#1E293B", w*0.022)
	body.LineHeight = 1.7
	after.add(body)
	root.add(after)

	root.add(id.FaceNode((w-photo)/2, headerH+(mainH-photo)/2, FaceStyle{Size: photo, BorderColor: "#2563EB", BorderWidth: m * 0.004, Rounded: true}))

	footerTop := h - footerH
	root.add(line(0, footerTop, w, h*0.001, "#E2E8F0"))
	root.add(id.LogoNode(pad, footerTop+h*0.02, h*0.12, h*0.04))
	nameX := pad
	if id.LogoImageRef != "" {
		nameX += h*0.12 + m*0.015
	}
	root.add(bold(text(nameX, footerTop+h*0.02, w*0.5, w*0.035, id.ServiceName, "#1E293B", w*0.025)))
	root.add(text(nameX, footerTop+h*0.02+w*0.035, w*0.5, w*0.025, id.Description, "#64748B", w*0.018))
	if id.OwnerName != "" {
		owner := text(w*0.6, footerTop+h*0.02, w-pad-w*0.6, w*0.025, id.OwnerName, "#64748B", w*0.018)
		owner.Align = AlignRight
		root.add(owner)
	}
	return root
}

// tpl-006: アイソメトリック・カラー（信頼バッジ）
func renderTrustBadge(id BusinessIdentity, ct ReviewContent, sp RenderSpec) *Node {
	w, h, m := sp.dims()
	photo := m * 0.16
	badge := w * 0.25

	root := box(0, 0, w, h, "#0C1220")
	for _, corner := range [][2]float64{
		{m * 0.02, m * 0.02},
		{w - m*0.057, m * 0.02},
		{m * 0.02, h - m*0.057},
		{w - m*0.057, h - m*0.057},
	} {
		deco := box(corner[0], corner[1], m*0.037, m*0.037, "")
		deco.BorderColor = "#3B82F64D"
		deco.BorderWidth = m * 0.002
		root.add(rotated(deco, 45))
	}

	y := h * 0.05
	ring := circle((w-badge)/2, y, badge, "")
	ring.BorderColor = "#D4A853"
	ring.BorderWidth = m * 0.004
	trusted := bold(centered(text((w-badge)/2, y+badge*0.3, badge, w*0.035, "TRUSTED", "#D4A853", w*0.025)))
	trusted.LetterSpacing = w * 0.0025
	ring.add(trusted)
	ring.add(id.LogoNode((w-badge)/2+badge*0.25, y+badge*0.3+w*0.043, badge*0.5, h*0.04))
	root.add(ring)
	y += badge + h*0.02

	root.add(id.FaceNode((w-photo)/2, y, FaceStyle{Size: photo, BorderColor: "#D4A853", BorderWidth: m * 0.003, Rounded: true}))
	y += photo + m*0.008
	if id.OwnerName != "" {
		root.add(centered(text(0, y, w, w*0.03, id.OwnerName, "#FFFFFF", w*0.022)))
		y += w * 0.03
	}
	y += h * 0.02
	root.add(ornamentRow(w, y, m))
	y += m*0.008 + h*0.02

	root.add(bold(centered(text(0, y, w, w*0.042, ct.CatchCopy, "#D4A853", w*0.03))))
	y += w*0.042 + m*0.012

	tail := h - h*0.05 - w*0.07 - w*0.042 - h*0.02 - m*0.008 - h*0.02
	body := centered(text(w*0.08, y, w*0.84, tail-y, ct.ReviewText, "#FFFFFF", w*0.024))
	body.LineHeight = 1.7
	root.add(body)

	y = tail
	root.add(ornamentRow(w, y, m))
	y += m*0.008 + h*0.02
	root.add(stars((w-w*0.21)/2, y, w*0.03, "#D4A853"))
	y += w*0.042 + h*0.02
	root.add(bold(centered(text(0, y, w, w*0.04, id.ServiceName, "#D4A853", w*0.028))))
	root.add(centered(text(0, y+w*0.04, w, w*0.025, id.Description, "#CCCCCC", w*0.018)))
	return root
}

// ornamentRow draws the line-diamond-line divider used by the badge layout.
func ornamentRow(w, y, m float64) *Node {
	row := box((w-m*0.09)/2, y, m*0.09, m*0.008, "")
	row.add(
		line((w-m*0.09)/2, y+m*0.003, m*0.037, m*0.002, "#D4A853"),
		rotated(box((w-m*0.008)/2, y, m*0.008, m*0.008, "#D4A853"), 45),
		line((w+m*0.09)/2-m*0.037, y+m*0.003, m*0.037, m*0.002, "#D4A853"),
	)
	return row
}

// tpl-007: 雑誌風コラージュ（インタビュー）
func renderMagazine(id BusinessIdentity, ct ReviewContent, sp RenderSpec) *Node {
	w, h, m := sp.dims()
	pad := w * 0.04
	photo := m * 0.28
	bandH := h*0.03 + w*0.018

	root := box(0, 0, w, h, "#FFFFFF")

	band := box(0, 0, w, bandH, "#DC2626")
	label := bold(text(w*0.05, 0, w*0.9, bandH, "CUSTOMER INTERVIEW", "#FFFFFF", w*0.018))
	label.LetterSpacing = w * 0.0027
	label.VCenter = true
	band.add(label)
	root.add(band)

	colW := w * 0.4
	colX := pad
	y := bandH + pad
	root.add(id.FaceNode(colX+(colW-photo)/2, y, FaceStyle{Size: photo, BorderColor: "#1A1A1A", BorderWidth: m * 0.002}))
	y += photo + m*0.015
	if id.OwnerName != "" {
		root.add(bold(centered(text(colX, y, colW, w*0.035, id.OwnerName, "#1A1A1A", w*0.025))))
		y += w * 0.035
	}
	root.add(centered(text(colX, y+m*0.008, colW, w*0.03, id.ServiceName, "#DC2626", w*0.022)))
	root.add(id.LogoNode(colX+(colW-h*0.15)/2, y+m*0.008+w*0.03+m*0.015, h*0.15, h*0.05))

	ruleX := pad + colW + w*0.015
	root.add(line(ruleX, bandH+pad, m*0.001, h-bandH-2*pad, "#E5E7EB"))

	rx := ruleX + w*0.03
	rw := w - pad - rx
	ry := bandH + pad
	root.add(bold(text(rx, ry, rw, w*0.07, "“", "#DC2626", w*0.08)))
	ry += w * 0.07
	root.add(text(rx, ry, rw, w*0.025, "Q. サービスを受けていかがでしたか？", "#6B7280", w*0.018))
	ry += w*0.025 + m*0.012
	root.add(bold(text(rx, ry, rw, w*0.04, ct.CatchCopy, "#1A1A1A", w*0.028)))
	ry += w*0.04 + m*0.015

	// Interview body leads with the highlighted clause, then the rest.
	lead := bold(text(rx, ry, rw, w*0.072, ct.Highlight, "#1A1A1A", w*0.024))
	lead.LineHeight = 2.0
	root.add(lead)
	ry += w * 0.072
	tail := h - pad - w*0.035 - m*0.015 - w*0.022 - m*0.012
	if ct.Remainder != "" {
		body := text(rx, ry, rw, tail-ry, ct.Remainder, "#1A1A1A", w*0.022)
		body.LineHeight = 2.0
		root.add(body)
	}
	root.add(stars(rx, tail, w*0.025, "#DC2626"))
	root.add(text(rx, tail+w*0.035+m*0.015, rw, w*0.022, id.Description, "#6B7280", w*0.016))
	return root
}

// tpl-008: シティポップ・コラージュ（SNSカジュアル）
func renderCasual(id BusinessIdentity, ct ReviewContent, sp RenderSpec) *Node {
	w, h, m := sp.dims()
	pad := w * 0.05
	photo := m * 0.22

	root := box(0, 0, w, h, "#FDF2F8")
	root.add(box(0, h/2, w, h/2, "#EDE9FE"))
	for i, glyph := range []string{"★", "○", "△"} {
		f := float64(i)
		deco := text(w*(0.9-0.15*f)-m*0.028, h*(0.2+0.3*f), m*0.04, m*0.04, glyph, "#FFFFFF66", m*0.028)
		root.add(rotated(deco, 15*f))
	}
	root.add(bold(text(w*0.05, h*0.85-w*0.084, w*0.6, w*0.084, "LOVE IT!", "#FFFFFF26", w*0.06)))

	y := pad
	root.add(rotated(id.FaceNode((w-photo)/2, y, FaceStyle{Size: photo, BorderColor: "#FFFFFF", BorderWidth: m * 0.006, Rounded: true}), 3))
	y += photo + m*0.012
	if id.OwnerName != "" {
		root.add(bold(centered(text(0, y, w, w*0.035, id.OwnerName, "#EC4899", w*0.025))))
		y += w * 0.035
	}
	y += h * 0.02

	tagY := h - pad - w*0.028 - h*0.02 - w*0.028 - h*0.02
	root.add(rotated(box((w-m*0.022)/2, y-m*0.011, m*0.022, m*0.022, "#FFFFFF"), 45))
	card := rounded(box(pad, y, w-2*pad, tagY-h*0.02-y, "#FFFFFF"), m*0.022)
	inX := pad + w*0.04
	inW := w - 2*pad - 2*w*0.04
	card.add(stars(inX, y+w*0.04, w*0.025, "#EC4899"))
	card.add(bold(text(inX, y+w*0.04+w*0.042, inW, w*0.04, ct.CatchCopy, "#EC4899", w*0.028)))
	body := text(inX, y+w*0.04+w*0.09, inW, tagY-h*0.02-y-w*0.04-w*0.09-w*0.04, ct.ReviewText, "#1F2937", w*0.024)
	body.LineHeight = 1.6
	card.add(body)
	root.add(card)

	root.add(bold(text(pad, tagY, w-2*pad, w*0.028, "#おすすめ #リピート確定", "#8B5CF6", w*0.02)))
	footY := tagY + w*0.028 + h*0.02
	root.add(id.LogoNode(pad, footY, h*0.12, h*0.04))
	nameX := pad
	if id.LogoImageRef != "" {
		nameX += h*0.12 + m*0.012
	}
	root.add(bold(text(nameX, footY, w-pad-nameX, w*0.028, id.ServiceName, "#1F2937", w*0.02)))
	return root
}

// tpl-009: ミニチュア・フォトリアル（実績数字）
func renderNumbers(id BusinessIdentity, ct ReviewContent, sp RenderSpec) *Node {
	w, h, m := sp.dims()
	pad := w * 0.05
	photo := m * 0.16

	root := box(0, 0, w, h, "#0F172A")
	root.add(bold(text(w*0.55, h*0.2, w*0.45, w*0.42, "4.9", "#164E6326", w*0.3)))

	y := pad
	root.add(text(pad, y+w*0.08, w*0.055, w*0.055, "★", "#06B6D4", w*0.04))
	root.add(bold(text(pad+w*0.055, y, w*0.3, w*0.16, "4.9", "#06B6D4", w*0.12)))
	y += w*0.16 + m*0.008
	root.add(text(pad, y, w*0.5, w*0.035, "お客様満足度", "#FFFFFF", w*0.025))
	y += w*0.035 + h*0.03

	footerY := h - pad - w*0.035 - w*0.025 - h*0.02
	colX := pad
	colY := y
	colY += func() float64 {
		if id.LogoImageRef != "" {
			root.add(id.LogoNode(colX, colY, h*0.12, h*0.04))
			return h*0.04 + m*0.012
		}
		return 0
	}()
	root.add(id.FaceNode(colX, colY, FaceStyle{Size: photo, BorderColor: "#06B6D4", BorderWidth: m * 0.003, Rounded: true}))
	if id.OwnerName != "" {
		root.add(centered(text(colX, colY+photo+m*0.008, photo, w*0.028, id.OwnerName, "#FFFFFF", w*0.02)))
	}

	cardX := pad + photo + w*0.04
	card := rounded(box(cardX, y, w-pad-cardX, footerY-h*0.02-y, "#FFFFFF"), m*0.015)
	inX := cardX + w*0.03
	inW := w - pad - cardX - 2*w*0.03
	card.add(stars(inX, y+w*0.03, w*0.02, "#06B6D4"))
	card.add(bold(text(inX, y+w*0.03+w*0.035, inW, w*0.035, ct.CatchCopy, "#06B6D4", w*0.025)))
	body := text(inX, y+w*0.03+w*0.078, inW, footerY-h*0.02-y-w*0.03-w*0.078-w*0.03, ct.ReviewText, "#1A1A1A", w*0.022)
	body.LineHeight = 1.7
	card.add(body)
	root.add(card)

	root.add(line(0, footerY-h*0.01, w, h*0.001, "#164E63"))
	root.add(bold(text(pad, footerY, w-2*pad, w*0.035, id.ServiceName, "#06B6D4", w*0.025)))
	root.add(text(pad, footerY+w*0.035, w-2*pad, w*0.025, id.Description, "#94A3B8", w*0.018))
	return root
}
