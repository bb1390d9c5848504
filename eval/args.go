package eval

import "github.com/ByLCY/folio/diag"

// Arg 是一次调用中的单个参数，可以带名字。
type Arg struct {
	Name  string
	Value Value
	Span  diag.Span
}

// Args 聚合一次调用的全部参数及调用位置。
type Args struct {
	Span  diag.Span
	Items []Arg
}

// NewArgs 以调用位置构造参数列表。
func NewArgs(span diag.Span, values ...Value) Args {
	args := Args{Span: span}
	for _, v := range values {
		args.Items = append(args.Items, Arg{Value: v, Span: span})
	}
	return args
}

// Pos 返回第 i 个位置参数。
func (a Args) Pos(i int) (Value, bool) {
	n := 0
	for _, arg := range a.Items {
		if arg.Name != "" {
			continue
		}
		if n == i {
			return arg.Value, true
		}
		n++
	}
	return nil, false
}

// Named 返回指定名字的参数。
func (a Args) Named(name string) (Value, bool) {
	for _, arg := range a.Items {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}
