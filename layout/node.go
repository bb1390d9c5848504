package layout

// 该文件定义编译器统一的内容节点表示：两个内建变体（间距、文本）
// 加一个开放的动态变体。动态变体通过包装器持有任意具体节点类型，
// 包装器的相等、克隆与调试输出完全由具体类型的能力机械推导。

import "fmt"

// AnyNode 是动态节点在包装器内的最小视图：参与布局并可打印。
// 相等与克隆不在接口上，由 NewDynamic 按具体类型推导，具体类型无法覆盖。
type AnyNode interface {
	Layouter
	fmt.Stringer
}

// Nodeful 约束可被包装为动态节点的具体类型：
// 除布局与打印外，还需提供同类型的相等比较与深拷贝。
type Nodeful[T any] interface {
	AnyNode
	Equal(other T) bool
	Clone() T
}

// Node 是布局阶段统一的内容表示，三个变体中恰有一个生效。
// 相等与克隆都是对生效变体的结构化透传，Node 自身不携带额外身份。
type Node struct {
	spacing *SpacingNode
	text    *TextNode
	dyn     *Dynamic
}

// NewSpacing 构造间距节点。
func NewSpacing(s SpacingNode) Node {
	return Node{spacing: &s}
}

// NewText 构造文本节点。
func NewText(text string) Node {
	return Node{text: &TextNode{Text: text}}
}

// Dyn 将任意满足 Nodeful 的具体类型包装为动态节点。
func Dyn[T Nodeful[T]](inner T) Node {
	d := NewDynamic(inner)
	return Node{dyn: &d}
}

// AsSpacing 返回间距变体的内容，第二个返回值表示该变体是否生效。
func (n Node) AsSpacing() (SpacingNode, bool) {
	if n.spacing == nil {
		return SpacingNode{}, false
	}
	return *n.spacing, true
}

// AsText 返回文本变体的内容。
func (n Node) AsText() (TextNode, bool) {
	if n.text == nil {
		return TextNode{}, false
	}
	return *n.text, true
}

// AsDynamic 返回动态变体的包装器。
func (n Node) AsDynamic() (*Dynamic, bool) {
	return n.dyn, n.dyn != nil
}

// Equal 判断两个节点结构相等：变体不同恒为不等，变体相同时比较内容。
func (n Node) Equal(other Node) bool {
	switch {
	case n.spacing != nil:
		return other.spacing != nil && *n.spacing == *other.spacing
	case n.text != nil:
		return other.text != nil && *n.text == *other.text
	case n.dyn != nil:
		return other.dyn != nil && n.dyn.Equal(*other.dyn)
	default:
		return other.spacing == nil && other.text == nil && other.dyn == nil
	}
}

// Clone 返回完全独立的副本，修改任意一方不影响另一方。
func (n Node) Clone() Node {
	switch {
	case n.spacing != nil:
		s := *n.spacing
		return Node{spacing: &s}
	case n.text != nil:
		t := *n.text
		return Node{text: &t}
	case n.dyn != nil:
		d := n.dyn.Clone()
		return Node{dyn: &d}
	default:
		return Node{}
	}
}

// Layout 将布局分派到生效的变体。
func (n Node) Layout(ctx *Context, cs Constraints) []Item {
	switch {
	case n.spacing != nil:
		return n.spacing.Layout(ctx, cs)
	case n.text != nil:
		return n.text.Layout(ctx, cs)
	case n.dyn != nil:
		return n.dyn.Layout(ctx, cs)
	default:
		return nil
	}
}

func (n Node) String() string {
	switch {
	case n.spacing != nil:
		return n.spacing.String()
	case n.text != nil:
		return n.text.String()
	case n.dyn != nil:
		return n.dyn.String()
	default:
		return "Empty"
	}
}

// Dynamic 独占地持有一个具体节点值。
// eq 与 clone 在 NewDynamic 中按具体类型生成，保证
// “包装器相等当且仅当具体类型相同且值相等”这一不变式无法被破坏。
type Dynamic struct {
	inner AnyNode
	eq    func(AnyNode) bool
	clone func() Dynamic
}

// NewDynamic 包装一个具体节点，并为其推导相等与克隆。
func NewDynamic[T Nodeful[T]](inner T) Dynamic {
	return Dynamic{
		inner: inner,
		eq: func(other AnyNode) bool {
			// 类型不同不是错误，只是不相等。
			o, ok := other.(T)
			return ok && inner.Equal(o)
		},
		clone: func() Dynamic {
			return NewDynamic(inner.Clone())
		},
	}
}

// Downcast 尝试以具体类型 T 查看包装器中的节点。
func Downcast[T AnyNode](d *Dynamic) (T, bool) {
	var zero T
	if d == nil || d.inner == nil {
		return zero, false
	}
	t, ok := d.inner.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Equal 判断两个包装器持有相同具体类型且值相等。
func (d Dynamic) Equal(other Dynamic) bool {
	if d.eq == nil || other.inner == nil {
		return d.inner == nil && other.inner == nil
	}
	return d.eq(other.inner)
}

// Clone 返回持有独立副本的新包装器。
func (d Dynamic) Clone() Dynamic {
	if d.clone == nil {
		return Dynamic{}
	}
	return d.clone()
}

// Layout 转发到具体节点的布局实现。
func (d Dynamic) Layout(ctx *Context, cs Constraints) []Item {
	if d.inner == nil {
		return nil
	}
	return d.inner.Layout(ctx, cs)
}

func (d Dynamic) String() string {
	if d.inner == nil {
		return "Dynamic(nil)"
	}
	return d.inner.String()
}
