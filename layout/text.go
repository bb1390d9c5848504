package layout

import (
	"fmt"

	"github.com/ByLCY/folio/geom"
)

// TextNode 是持有字面文本的内建叶子节点。
type TextNode struct {
	Text string
}

// Layout 实现布局契约：将文本交给排版后端断行，再把各行定位进一个帧。
// 排版后端的资源错误（例如字体缺失）由后端自行处理，这里只产出空结果。
func (t TextNode) Layout(ctx *Context, cs Constraints) []Item {
	if ctx.Typesetter == nil {
		return nil
	}
	size := EmOf(ctx.Styles)
	font := FontOf(ctx.Styles)
	leading := LeadingOf(ctx.Styles)

	lines, err := ctx.Typesetter.LayoutLines(t.Text, cs.Size.W, font, size, leading, cs.Breakable)
	if err != nil || len(lines) == 0 {
		return nil
	}

	var frame Frame
	cursorY := geom.Abs(0)
	for _, line := range lines {
		cursorY += line.GapBefore
		frame.Push(TextRun{
			Pos:     geom.Point{X: 0, Y: cursorY},
			Content: line.Content,
			Font:    font,
			Size:    size,
		})
		cursorY += line.Height
		if line.Width > frame.Size.W {
			frame.Size.W = line.Width
		}
	}
	frame.Size.H = cursorY
	return []Item{FrameItem(frame)}
}

func (t TextNode) String() string {
	return fmt.Sprintf("Text(%q)", t.Text)
}
