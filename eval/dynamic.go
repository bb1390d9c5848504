package eval

import "fmt"

// Dynamic 将任意宿主值装箱为带类型名的运行时值，
// 供方法分派（例如计数器）在不知道具体类型的情况下传递。
type Dynamic struct {
	name  string
	inner any
}

// NewDynamic 以类型名装箱一个值。
func NewDynamic(name string, inner any) *Dynamic {
	return &Dynamic{name: name, inner: inner}
}

// TypeName 返回装箱时记录的类型名。
func (d *Dynamic) TypeName() string {
	if d == nil {
		return "nil"
	}
	return d.name
}

// Inner 返回被装箱的值。
func (d *Dynamic) Inner() any {
	if d == nil {
		return nil
	}
	return d.inner
}

func (d *Dynamic) String() string {
	return fmt.Sprintf("<%s>", d.TypeName())
}
