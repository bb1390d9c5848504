// Package font 基于 github.com/tdewolff/canvas 实现排版后端：
// 从 World 加载字体字节，缓存字体族，并按宽度约束将文本折成行。
package font

import (
	"fmt"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/folio/geom"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/world"
)

// Book 按名称缓存字体族，实现 layout.Typesetter。
type Book struct {
	world world.World

	mu       sync.Mutex
	families map[string]*canvas.FontFamily
}

var _ layout.Typesetter = (*Book)(nil)

// NewBook 创建以 w 为字体来源的排版后端。
func NewBook(w world.World) *Book {
	return &Book{
		world:    w,
		families: map[string]*canvas.FontFamily{},
	}
}

func (b *Book) family(name string) (*canvas.FontFamily, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if fam, ok := b.families[name]; ok {
		return fam, nil
	}
	data, err := b.world.Font(name)
	if err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", name, err)
	}
	fam := canvas.NewFontFamily(name)
	if err := fam.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("解析字体 %s 失败: %w", name, err)
	}
	b.families[name] = fam
	return fam, nil
}

// Face 返回指定字体在给定字号下的字面。字号入参为 mm，创建字面使用 pt。
func (b *Book) Face(name string, size geom.Abs) (*canvas.FontFace, error) {
	fam, err := b.family(name)
	if err != nil {
		return nil, err
	}
	return fam.Face(size.Pt(), canvas.Black, canvas.FontRegular, canvas.FontNormal), nil
}

// LayoutLines 实现 layout.Typesetter：贪心换行后回填行高与行间距。
// 宽度比较与累计均以 mm 进行。
func (b *Book) LayoutLines(content string, width geom.Abs, fontName string, size, leading geom.Abs, breakable bool) ([]layout.Line, error) {
	face, err := b.Face(fontName, size)
	if err != nil {
		return nil, err
	}
	measure := func(s string) float64 {
		return face.TextWidth(s)
	}
	lines := wrapLines(content, width.Mm(), measure, breakable)

	metrics := face.Metrics()
	textHeight := geom.Abs(metrics.LineHeight)
	if textHeight <= 0 {
		textHeight = size
	}
	if len(lines) == 0 {
		lines = []layout.Line{{Content: "", Width: 0, Height: textHeight}}
	}
	for i := range lines {
		if lines[i].Height <= 0 {
			lines[i].Height = textHeight
		}
		if i > 0 {
			lines[i].GapBefore = leading
		}
	}
	return lines, nil
}
