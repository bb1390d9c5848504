package font

import (
	"math"
	"strings"
	"unicode"

	"github.com/ByLCY/folio/geom"
	"github.com/ByLCY/folio/layout"
)

// wrapLines 按贪心策略折行：优先在空白处分割，超出宽度时在词内拆分。
// breakable 为 false 时只按显式换行划分。measure 返回一段文本的宽度（mm）。
func wrapLines(content string, limit float64, measure func(string) float64, breakable bool) []layout.Line {
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	if !breakable {
		parts := strings.Split(content, "\n")
		lines := make([]layout.Line, 0, len(parts))
		for _, p := range parts {
			lines = append(lines, layout.Line{Content: p, Width: geom.Abs(measure(p))})
		}
		return lines
	}

	tokens := tokenizeContent(content)
	var lines []layout.Line
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, layout.Line{Content: "", Width: 0})
			}
			return
		}
		lines = append(lines, layout.Line{
			Content: builder.String(),
			Width:   geom.Abs(currentWidth),
		})
		builder.Reset()
		currentWidth = 0
	}

	appendToken := func(token string) {
		builder.WriteString(token)
		currentWidth += measure(token)
	}

	for _, token := range tokens {
		if token == "\n" {
			emit(true)
			continue
		}
		// 行首的空白记号直接丢弃，避免折行后出现悬挂空格。
		if builder.Len() == 0 && strings.TrimSpace(token) == "" {
			continue
		}

		tokenWidth := measure(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token)
			if currentWidth > limit {
				emit(false)
			}
			continue
		}

		for _, chunk := range splitTokenByWidth(token, limit, measure) {
			chunkWidth := measure(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk)
			if currentWidth > limit {
				emit(false)
			}
		}
	}

	emit(true)
	return lines
}

// tokenizeContent 将文本分为空白段、非空白段与显式换行三类记号。
func tokenizeContent(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

// splitTokenByWidth 把超宽的单个记号按宽度上限逐字拆开。
func splitTokenByWidth(token string, limit float64, measure func(string) float64) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var builder strings.Builder
	for _, r := range token {
		builder.WriteRune(r)
		if measure(builder.String()) > limit && builder.Len() > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
