package eval

import (
	"testing"

	"github.com/ByLCY/folio/diag"
	"github.com/ByLCY/folio/layout"
)

// TestArgsPos 验证位置参数的定位会跳过具名参数。
func TestArgsPos(t *testing.T) {
	span := diag.Detached()
	args := Args{Span: span, Items: []Arg{
		{Value: Int(1)},
		{Name: "lang", Value: Str("go")},
		{Value: Int(2)},
	}}
	if v, ok := args.Pos(0); !ok || v.(Int) != 1 {
		t.Fatalf("第 0 个位置参数错误: %v", v)
	}
	if v, ok := args.Pos(1); !ok || v.(Int) != 2 {
		t.Fatalf("第 1 个位置参数应跳过具名参数: %v", v)
	}
	if _, ok := args.Pos(2); ok {
		t.Fatalf("越界的位置参数应取不到")
	}
}

// TestArgsNamed 验证具名参数的查找。
func TestArgsNamed(t *testing.T) {
	span := diag.Detached()
	args := Args{Span: span, Items: []Arg{
		{Name: "lang", Value: Str("go")},
	}}
	if v, ok := args.Named("lang"); !ok || v.(Str) != "go" {
		t.Fatalf("具名参数查找失败: %v", v)
	}
	if _, ok := args.Named("block"); ok {
		t.Fatalf("不存在的具名参数应取不到")
	}
}

// TestScope 验证作用域的定义与查找。
func TestScope(t *testing.T) {
	s := NewScope().Define("a", Int(1)).Define("b", Str("x"))
	if s.Len() != 2 {
		t.Fatalf("作用域应有两个绑定，实际 %d", s.Len())
	}
	if v, ok := s.Get("a"); !ok || v.(Int) != 1 {
		t.Fatalf("查找 a 失败: %v", v)
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatalf("不存在的名字应取不到")
	}
	var nilScope *Scope
	if _, ok := nilScope.Get("a"); ok {
		t.Fatalf("空作用域查找应失败而不是崩溃")
	}
	if nilScope.Len() != 0 {
		t.Fatalf("空作用域的绑定数应为 0")
	}
}

// TestDynamic 验证动态值的装箱与取出。
func TestDynamic(t *testing.T) {
	d := NewDynamic("color", "red")
	if d.TypeName() != "color" {
		t.Fatalf("类型名不符: %q", d.TypeName())
	}
	if s, ok := d.Inner().(string); !ok || s != "red" {
		t.Fatalf("载荷不符: %v", d.Inner())
	}
}

// TestValueString 验证各类值的显示形式。
func TestValueString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{None{}, "none"},
		{Int(42), "42"},
		{Str("x"), `"x"`},
		{Content{Node: layout.NewText("hi")}, `Text("hi")`},
		{Func(nil), "<function>"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Fatalf("值 %T 的显示期望 %q，实际 %q", c.v, c.want, got)
		}
	}
}
