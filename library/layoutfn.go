package library

import (
	"github.com/ByLCY/folio/diag"
	"github.com/ByLCY/folio/geom"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/style"
)

// 根布局的页面参数：A4 纵向，四边 20mm 边距。
// 页面模型的完整配置属于样式系统的后续工作，这里先取固定值。
var (
	pageSize   = geom.Size{W: geom.Mm(210), H: geom.Mm(297)}
	pageMargin = geom.Mm(20)
)

// layoutDocument 是根布局函数：自上而下遍历内容树产出的片段，
// 纵向堆叠进页面帧，超出内容区高度时另起一页。
// 子树布局严格按源顺序深度优先执行，不做任何重排。
func layoutDocument(ctx *layout.Context, content layout.Node, styles style.Chain) (*layout.Document, error) {
	if ctx == nil || ctx.Typesetter == nil {
		return nil, diag.Errorf(diag.Detached(), "缺少排版后端，无法执行布局")
	}

	inner := geom.Size{
		W: pageSize.W - 2*pageMargin,
		H: pageSize.H - 2*pageMargin,
	}
	cs := layout.Constraints{Size: inner, Breakable: true}
	items := content.Layout(ctx.WithStyles(styles), cs)

	var pages []layout.Frame
	page := layout.Frame{Size: inner}
	cursor := geom.Abs(0)
	flush := func() {
		pages = append(pages, page)
		page = layout.Frame{Size: inner}
		cursor = 0
	}

	for _, item := range items {
		if space, ok := item.Space(); ok {
			cursor += space
			if cursor > inner.H {
				flush()
			}
			continue
		}
		frame, ok := item.Frame()
		if !ok {
			continue
		}
		if cursor > 0 && cursor+frame.Size.H > inner.H {
			flush()
		}
		page.Merge(*frame, geom.Point{X: 0, Y: cursor})
		cursor += frame.Size.H
	}
	flush()

	return &layout.Document{Pages: pages}, nil
}
