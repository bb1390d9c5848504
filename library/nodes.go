// Package library 是标准库层：提供全部具体节点类型、
// 全局与数学作用域、默认样式，并组装语言项表供会话启动时安装。
package library

import (
	"fmt"

	"github.com/ByLCY/folio/geom"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/style"
)

// cloneOpt 深拷贝可选节点。
func cloneOpt(n *layout.Node) *layout.Node {
	if n == nil {
		return nil
	}
	c := n.Clone()
	return &c
}

// equalOpt 比较两个可选节点。
func equalOpt(a, b *layout.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// SequenceNode 按源顺序串联多个子节点。
type SequenceNode struct {
	Children []layout.Node
}

// Layout 依次排版子节点并拼接输出，不做任何重排。
func (n SequenceNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	var items []layout.Item
	for _, child := range n.Children {
		items = append(items, child.Layout(ctx, cs)...)
	}
	return items
}

func (n SequenceNode) String() string {
	return fmt.Sprintf("Sequence(%d)", len(n.Children))
}

func (n SequenceNode) Equal(other SequenceNode) bool {
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

func (n SequenceNode) Clone() SequenceNode {
	children := make([]layout.Node, len(n.Children))
	for i := range n.Children {
		children[i] = n.Children[i].Clone()
	}
	return SequenceNode{Children: children}
}

// SpaceNode 表示词间空白。
type SpaceNode struct{}

func (SpaceNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	return []layout.Item{layout.SpaceItem(geom.Em(0.25).At(layout.EmOf(ctx.Styles)))}
}

func (SpaceNode) String() string { return "Space" }
func (SpaceNode) Equal(other SpaceNode) bool { return true }
func (n SpaceNode) Clone() SpaceNode { return n }

// LinebreakNode 表示强制换行。
type LinebreakNode struct{}

func (LinebreakNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	return []layout.Item{layout.SpaceItem(layout.LeadingOf(ctx.Styles))}
}

func (LinebreakNode) String() string { return "Linebreak" }
func (LinebreakNode) Equal(other LinebreakNode) bool { return true }
func (n LinebreakNode) Clone() LinebreakNode { return n }

// ParbreakNode 表示段落分隔。
type ParbreakNode struct{}

func (ParbreakNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	return []layout.Item{layout.SpaceItem(layout.ParSpacingOf(ctx.Styles))}
}

func (ParbreakNode) String() string { return "Parbreak" }
func (ParbreakNode) Equal(other ParbreakNode) bool { return true }
func (n ParbreakNode) Clone() ParbreakNode { return n }

// SmartQuoteNode 表示智能引号，Double 区分双引号与单引号。
type SmartQuoteNode struct {
	Double bool
}

func (n SmartQuoteNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	quote := "'"
	if n.Double {
		quote = "\""
	}
	return layout.TextNode{Text: quote}.Layout(ctx, cs)
}

func (n SmartQuoteNode) String() string { return fmt.Sprintf("SmartQuote(double: %v)", n.Double) }
func (n SmartQuoteNode) Equal(other SmartQuoteNode) bool { return n == other }
func (n SmartQuoteNode) Clone() SmartQuoteNode { return n }

// StrongNode 表示加粗强调的内容。
type StrongNode struct {
	Body layout.Node
}

// Layout 直接排版子内容：字重的落实属于字体选择，由排版后端决定。
func (n StrongNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	return n.Body.Layout(ctx, cs)
}

func (n StrongNode) String() string { return fmt.Sprintf("Strong(%v)", n.Body) }
func (n StrongNode) Equal(other StrongNode) bool { return n.Body.Equal(other.Body) }
func (n StrongNode) Clone() StrongNode { return StrongNode{Body: n.Body.Clone()} }

// EmphNode 表示斜体强调的内容。
type EmphNode struct {
	Body layout.Node
}

func (n EmphNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	return n.Body.Layout(ctx, cs)
}

func (n EmphNode) String() string { return fmt.Sprintf("Emph(%v)", n.Body) }
func (n EmphNode) Equal(other EmphNode) bool { return n.Body.Equal(other.Body) }
func (n EmphNode) Clone() EmphNode { return EmphNode{Body: n.Body.Clone()} }

// RawNode 表示原文代码，Lang 为可选的语言标签。
type RawNode struct {
	Text  string
	Lang  string
	Block bool
}

// Layout 以等宽字体排版原文内容；行内原文不允许按宽度折行。
func (n RawNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	mono := style.NewMap().Set(style.TextFont, "Mono")
	child := ctx.WithStyles(ctx.Styles.Chained(mono))
	cs.Breakable = cs.Breakable && n.Block
	return layout.TextNode{Text: n.Text}.Layout(child, cs)
}

func (n RawNode) String() string {
	return fmt.Sprintf("Raw(lang: %q, block: %v, %q)", n.Lang, n.Block, n.Text)
}
func (n RawNode) Equal(other RawNode) bool { return n == other }
func (n RawNode) Clone() RawNode { return n }

// LinkNode 表示超链接，正文即链接地址。
type LinkNode struct {
	URL string
}

func (n LinkNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	return layout.TextNode{Text: n.URL}.Layout(ctx, cs)
}

func (n LinkNode) String() string { return fmt.Sprintf("Link(%q)", n.URL) }
func (n LinkNode) Equal(other LinkNode) bool { return n == other }
func (n LinkNode) Clone() LinkNode { return n }

// RefNode 表示交叉引用，目标在后续阶段解析。
type RefNode struct {
	Target     string
	Supplement *layout.Node
}

func (n RefNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	return layout.TextNode{Text: "@" + n.Target}.Layout(ctx, cs)
}

func (n RefNode) String() string { return fmt.Sprintf("Ref(%q)", n.Target) }
func (n RefNode) Equal(other RefNode) bool {
	return n.Target == other.Target && equalOpt(n.Supplement, other.Supplement)
}
func (n RefNode) Clone() RefNode {
	return RefNode{Target: n.Target, Supplement: cloneOpt(n.Supplement)}
}

// HeadingNode 表示章节标题，Level 从 1 开始。
type HeadingNode struct {
	Level int
	Body  layout.Node
}

// 各级标题相对正文字号的缩放。
var headingScale = []float64{1.6, 1.4, 1.2}

// Layout 放大字号后排版标题内容。
func (n HeadingNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	scale := 1.1
	if n.Level >= 1 && n.Level <= len(headingScale) {
		scale = headingScale[n.Level-1]
	}
	size := geom.Abs(float64(layout.EmOf(ctx.Styles)) * scale)
	bigger := style.NewMap().Set(style.TextSize, size)
	child := ctx.WithStyles(ctx.Styles.Chained(bigger))
	return n.Body.Layout(child, cs)
}

func (n HeadingNode) String() string { return fmt.Sprintf("Heading(level: %d, %v)", n.Level, n.Body) }
func (n HeadingNode) Equal(other HeadingNode) bool {
	return n.Level == other.Level && n.Body.Equal(other.Body)
}
func (n HeadingNode) Clone() HeadingNode {
	return HeadingNode{Level: n.Level, Body: n.Body.Clone()}
}

// ListItemNode 表示无序列表项。
type ListItemNode struct {
	Body layout.Node
}

func (n ListItemNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	marker := layout.TextNode{Text: "•"}.Layout(ctx, cs)
	return append(marker, n.Body.Layout(ctx, cs)...)
}

func (n ListItemNode) String() string { return fmt.Sprintf("ListItem(%v)", n.Body) }
func (n ListItemNode) Equal(other ListItemNode) bool { return n.Body.Equal(other.Body) }
func (n ListItemNode) Clone() ListItemNode { return ListItemNode{Body: n.Body.Clone()} }

// EnumItemNode 表示有序列表项，Number 为 0 表示自动编号。
type EnumItemNode struct {
	Number int
	Body   layout.Node
}

func (n EnumItemNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	number := n.Number
	if number <= 0 {
		number = 1
	}
	marker := layout.TextNode{Text: fmt.Sprintf("%d.", number)}.Layout(ctx, cs)
	return append(marker, n.Body.Layout(ctx, cs)...)
}

func (n EnumItemNode) String() string {
	return fmt.Sprintf("EnumItem(number: %d, %v)", n.Number, n.Body)
}
func (n EnumItemNode) Equal(other EnumItemNode) bool {
	return n.Number == other.Number && n.Body.Equal(other.Body)
}
func (n EnumItemNode) Clone() EnumItemNode {
	return EnumItemNode{Number: n.Number, Body: n.Body.Clone()}
}

// TermItemNode 表示术语列表项。
type TermItemNode struct {
	Term        layout.Node
	Description layout.Node
}

func (n TermItemNode) Layout(ctx *layout.Context, cs layout.Constraints) []layout.Item {
	items := n.Term.Layout(ctx, cs)
	return append(items, n.Description.Layout(ctx, cs)...)
}

func (n TermItemNode) String() string {
	return fmt.Sprintf("TermItem(%v: %v)", n.Term, n.Description)
}
func (n TermItemNode) Equal(other TermItemNode) bool {
	return n.Term.Equal(other.Term) && n.Description.Equal(other.Description)
}
func (n TermItemNode) Clone() TermItemNode {
	return TermItemNode{Term: n.Term.Clone(), Description: n.Description.Clone()}
}
