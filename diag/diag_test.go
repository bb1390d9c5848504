package diag

import (
	"errors"
	"strings"
	"testing"
)

// TestErrorf 验证单条诊断的构造与 error 输出。
func TestErrorf(t *testing.T) {
	err := Errorf(Span{Start: 3, End: 7}, "未知方法 %q", "reset")
	if len(err) != 1 {
		t.Fatalf("Errorf 应产出单条诊断")
	}
	if got := err.Error(); got != `3..7: 未知方法 "reset"` {
		t.Fatalf("诊断输出不符: %q", got)
	}
}

// TestDetached 验证无位置诊断的标记与输出。
func TestDetached(t *testing.T) {
	s := Detached()
	if !s.IsDetached() {
		t.Fatalf("Detached 应标记为无位置")
	}
	if s.String() != "<detached>" {
		t.Fatalf("无位置 Span 的输出不符: %q", s.String())
	}
	if (Span{Start: 0, End: 4}).IsDetached() {
		t.Fatalf("起点为 0 的 Span 不应视作无位置")
	}
}

// TestAppend 验证诊断的合并与普通错误的降级。
func TestAppend(t *testing.T) {
	l := Errorf(Span{Start: 1, End: 2}, "第一条")
	l = Append(l, Errorf(Span{Start: 5, End: 6}, "第二条"))
	l = Append(l, errors.New("普通错误"))
	l = Append(l, nil)

	if len(l) != 3 {
		t.Fatalf("合并后应有 3 条诊断，实际 %d", len(l))
	}
	if !l[2].Span.IsDetached() {
		t.Fatalf("普通错误降级后应无位置")
	}
	if !strings.Contains(l.Error(), "第二条") {
		t.Fatalf("合并输出应包含所有诊断: %q", l.Error())
	}
}
