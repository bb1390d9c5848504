package library

import (
	"fmt"
	"strings"

	"github.com/ByLCY/folio/layout"
)

// 数学节点只保留结构与分派行为：公式内部的间距与定位算法不在本核心范围内，
// 这里以顺序排版子内容代替。

// FormulaNode 表示数学公式，Block 区分行内与独立成段。
type FormulaNode struct {
	Body  layout.Node
	Block bool
}

func (n FormulaNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	items := n.Body.Layout(ctx, cs)
	if !n.Block {
		return items
	}
	spacing := layout.SpaceItem(layout.ParSpacingOf(ctx.Styles))
	out := []layout.Item{spacing}
	out = append(out, items...)
	return append(out, spacing)
}

func (n FormulaNode) String() string { return fmt.Sprintf("Formula(block: %v, %v)", n.Block, n.Body) }
func (n FormulaNode) Equal(other FormulaNode) bool {
	return n.Block == other.Block && n.Body.Equal(other.Body)
}
func (n FormulaNode) Clone() FormulaNode {
	return FormulaNode{Body: n.Body.Clone(), Block: n.Block}
}

// AlignPointNode 表示公式内的对齐点。
type AlignPointNode struct{}

func (AlignPointNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	return nil
}

func (AlignPointNode) String() string { return "AlignPoint" }
func (AlignPointNode) Equal(other AlignPointNode) bool { return true }
func (n AlignPointNode) Clone() AlignPointNode { return n }

// DelimitedNode 表示成对定界符包裹的公式内容。
type DelimitedNode struct {
	Open  layout.Node
	Body  layout.Node
	Close layout.Node
}

func (n DelimitedNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	items := n.Open.Layout(ctx, cs)
	items = append(items, n.Body.Layout(ctx, cs)...)
	return append(items, n.Close.Layout(ctx, cs)...)
}

func (n DelimitedNode) String() string {
	return fmt.Sprintf("Delimited(%v %v %v)", n.Open, n.Body, n.Close)
}
func (n DelimitedNode) Equal(other DelimitedNode) bool {
	return n.Open.Equal(other.Open) && n.Body.Equal(other.Body) && n.Close.Equal(other.Close)
}
func (n DelimitedNode) Clone() DelimitedNode {
	return DelimitedNode{Open: n.Open.Clone(), Body: n.Body.Clone(), Close: n.Close.Clone()}
}

// AttachNode 表示带可选上下标的基底。
type AttachNode struct {
	Base   layout.Node
	Bottom *layout.Node
	Top    *layout.Node
}

func (n AttachNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	items := n.Base.Layout(ctx, cs)
	if n.Bottom != nil {
		items = append(items, n.Bottom.Layout(ctx, cs)...)
	}
	if n.Top != nil {
		items = append(items, n.Top.Layout(ctx, cs)...)
	}
	return items
}

func (n AttachNode) String() string { return fmt.Sprintf("Attach(%v)", n.Base) }
func (n AttachNode) Equal(other AttachNode) bool {
	return n.Base.Equal(other.Base) && equalOpt(n.Bottom, other.Bottom) && equalOpt(n.Top, other.Top)
}
func (n AttachNode) Clone() AttachNode {
	return AttachNode{Base: n.Base.Clone(), Bottom: cloneOpt(n.Bottom), Top: cloneOpt(n.Top)}
}

// PrimesNode 表示撇号标记。
type PrimesNode struct {
	Count int
}

func (n PrimesNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	return layout.TextNode{Text: strings.Repeat("′", n.Count)}.Layout(ctx, cs)
}

func (n PrimesNode) String() string { return fmt.Sprintf("Primes(%d)", n.Count) }
func (n PrimesNode) Equal(other PrimesNode) bool { return n == other }
func (n PrimesNode) Clone() PrimesNode { return n }

// AccentNode 表示带音标符的基底。
type AccentNode struct {
	Base   layout.Node
	Accent rune
}

func (n AccentNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	items := n.Base.Layout(ctx, cs)
	return append(items, layout.TextNode{Text: string(n.Accent)}.Layout(ctx, cs)...)
}

func (n AccentNode) String() string { return fmt.Sprintf("Accent(%v, %q)", n.Base, n.Accent) }
func (n AccentNode) Equal(other AccentNode) bool {
	return n.Accent == other.Accent && n.Base.Equal(other.Base)
}
func (n AccentNode) Clone() AccentNode {
	return AccentNode{Base: n.Base.Clone(), Accent: n.Accent}
}

// FracNode 表示分数。
type FracNode struct {
	Num   layout.Node
	Denom layout.Node
}

func (n FracNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	items := n.Num.Layout(ctx, cs)
	items = append(items, layout.TextNode{Text: "/"}.Layout(ctx, cs)...)
	return append(items, n.Denom.Layout(ctx, cs)...)
}

func (n FracNode) String() string { return fmt.Sprintf("Frac(%v / %v)", n.Num, n.Denom) }
func (n FracNode) Equal(other FracNode) bool {
	return n.Num.Equal(other.Num) && n.Denom.Equal(other.Denom)
}
func (n FracNode) Clone() FracNode {
	return FracNode{Num: n.Num.Clone(), Denom: n.Denom.Clone()}
}

// RootNode 表示根式，Index 为可选的根指数。
type RootNode struct {
	Index    *layout.Node
	Radicand layout.Node
}

func (n RootNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	items := layout.TextNode{Text: "√"}.Layout(ctx, cs)
	if n.Index != nil {
		items = append(items, n.Index.Layout(ctx, cs)...)
	}
	return append(items, n.Radicand.Layout(ctx, cs)...)
}

func (n RootNode) String() string { return fmt.Sprintf("Root(%v)", n.Radicand) }
func (n RootNode) Equal(other RootNode) bool {
	return equalOpt(n.Index, other.Index) && n.Radicand.Equal(other.Radicand)
}
func (n RootNode) Clone() RootNode {
	return RootNode{Index: cloneOpt(n.Index), Radicand: n.Radicand.Clone()}
}
