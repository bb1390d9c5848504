// Package eval 定义求值层与本核心交互所需的最小值模型：
// 运行时值、命名作用域、调用参数与可装箱的动态值。
package eval

import (
	"fmt"

	"github.com/ByLCY/folio/layout"
)

// Value 是运行时值的统一表示，具体种类通过 value 标记方法封闭在本包内。
type Value interface {
	value()
	fmt.Stringer
}

// None 表示缺省值。
type None struct{}

func (None) value() {}
func (None) String() string { return "none" }

// Int 是整数值。
type Int int64

func (Int) value() {}
func (v Int) String() string { return fmt.Sprintf("%d", int64(v)) }

// Str 是字符串值。
type Str string

func (Str) value() {}
func (v Str) String() string { return fmt.Sprintf("%q", string(v)) }

// Content 是内容值，持有一棵布局节点。
type Content struct {
	Node layout.Node
}

func (Content) value() {}
func (v Content) String() string { return v.Node.String() }

// Func 是可调用值。
type Func func(args Args) (Value, error)

func (Func) value() {}
func (Func) String() string { return "<function>" }

// Dyn 是装箱的动态值。
type Dyn struct {
	*Dynamic
}

func (Dyn) value() {}

// Scope 是名字到值的绑定集合。
type Scope struct {
	bindings map[string]Value
}

// NewScope 创建空作用域。
func NewScope() *Scope {
	return &Scope{bindings: map[string]Value{}}
}

// Define 绑定一个名字，返回自身便于链式构建。
func (s *Scope) Define(name string, v Value) *Scope {
	s.bindings[name] = v
	return s
}

// Get 查找名字对应的值。
func (s *Scope) Get(name string) (Value, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.bindings[name]
	return v, ok
}

// Names 返回已绑定的名字数量，用于一致性检查与测试。
func (s *Scope) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bindings)
}

// Module 是带名字的作用域，作为顶层绑定环境暴露给求值器。
type Module struct {
	Name  string
	Scope *Scope
}
