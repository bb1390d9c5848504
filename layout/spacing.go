package layout

import (
	"fmt"

	"github.com/ByLCY/folio/geom"
)

// SpacingNode 是描述元素间空白的内建叶子节点。
// 间距量允许携带相对字号的部分，布局时按当前字号解析。
type SpacingNode struct {
	Amount geom.Rel
}

// Layout 实现布局契约：间距节点产出单个间距片段。
func (s SpacingNode) Layout(ctx *Context, cs Constraints) []Item {
	return []Item{SpaceItem(s.Amount.Resolve(EmOf(ctx.Styles)))}
}

func (s SpacingNode) String() string {
	return fmt.Sprintf("Spacing(%gmm + %gem)", float64(s.Amount.Abs), float64(s.Amount.Em))
}
