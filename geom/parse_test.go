package geom

import (
	"math"
	"testing"
)

// TestParseRel 覆盖长度表达式的各种写法。
func TestParseRel(t *testing.T) {
	cases := []struct {
		input string
		want  Rel
	}{
		{"12pt", Rel{Abs: Pt(12)}},
		{"10mm", Rel{Abs: Mm(10)}},
		{"2.5cm", Rel{Abs: Cm(2.5)}},
		{"1in", Rel{Abs: In(1)}},
		{"0.65em", Rel{Em: 0.65}},
		{"1.2x", Rel{Em: 1.2}},
		{"1em + 2pt", Rel{Abs: Pt(2), Em: 1}},
		{"2pt + 1em + 1mm", Rel{Abs: Pt(2) + Mm(1), Em: 1}},
		{" 12pt ", Rel{Abs: Pt(12)}},
	}
	for _, c := range cases {
		got, err := ParseRel(c.input)
		if err != nil {
			t.Fatalf("解析 %q 失败: %v", c.input, err)
		}
		if math.Abs(got.Abs.Mm()-c.want.Abs.Mm()) > 1e-9 || math.Abs(float64(got.Em-c.want.Em)) > 1e-9 {
			t.Fatalf("解析 %q 期望 %+v，实际 %+v", c.input, c.want, got)
		}
	}
}

// TestParseRelInvalid 验证非法输入返回错误而不是崩溃。
func TestParseRelInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12", "12 pt", "pt", "1em +", "+ 2pt", "12qq"} {
		if _, err := ParseRel(input); err == nil {
			t.Fatalf("输入 %q 应当解析失败", input)
		}
	}
}

// TestParseAbs 验证绝对长度解析拒绝相对部分。
func TestParseAbs(t *testing.T) {
	got, err := ParseAbs("11pt")
	if err != nil {
		t.Fatalf("解析 11pt 失败: %v", err)
	}
	if math.Abs(got.Mm()-Pt(11).Mm()) > 1e-9 {
		t.Fatalf("11pt 期望 %gmm，实际 %g", Pt(11).Mm(), got.Mm())
	}
	if _, err := ParseAbs("1em"); err == nil {
		t.Fatalf("含相对部分的输入应当解析失败")
	}
}
