package library

import (
	"testing"

	"github.com/ByLCY/folio/diag"
	"github.com/ByLCY/folio/eval"
)

// TestCounterDispatch 验证计数器各方法的分派与状态变化。
func TestCounterDispatch(t *testing.T) {
	dyn := NewCounterValue(0)
	span := diag.Detached()

	if _, err := counterMethod(dyn, "step", eval.NewArgs(span), span); err != nil {
		t.Fatalf("step 失败: %v", err)
	}
	if _, err := counterMethod(dyn, "step", eval.NewArgs(span), span); err != nil {
		t.Fatalf("step 失败: %v", err)
	}
	v, err := counterMethod(dyn, "get", eval.NewArgs(span), span)
	if err != nil {
		t.Fatalf("get 失败: %v", err)
	}
	if n, ok := v.(eval.Int); !ok || n != 2 {
		t.Fatalf("两次 step 后 get 期望 2，实际 %v", v)
	}

	if _, err := counterMethod(dyn, "update", eval.NewArgs(span, eval.Int(7)), span); err != nil {
		t.Fatalf("update 失败: %v", err)
	}
	v, err = counterMethod(dyn, "display", eval.NewArgs(span), span)
	if err != nil {
		t.Fatalf("display 失败: %v", err)
	}
	if s, ok := v.(eval.Str); !ok || s != "7" {
		t.Fatalf("display 期望 \"7\"，实际 %v", v)
	}
}

// TestCounterDiagnostics 验证各种误用场景返回诊断而不是崩溃。
func TestCounterDiagnostics(t *testing.T) {
	span := diag.Detached()

	// 接收者不是计数器。
	other := eval.NewDynamic("color", "red")
	if _, err := counterMethod(other, "step", eval.NewArgs(span), span); err == nil {
		t.Fatalf("非计数器接收者应返回诊断")
	}

	dyn := NewCounterValue(0)
	// 方法不存在。
	if _, err := counterMethod(dyn, "reset", eval.NewArgs(span), span); err == nil {
		t.Fatalf("未知方法应返回诊断")
	}
	// update 缺参数。
	if _, err := counterMethod(dyn, "update", eval.NewArgs(span), span); err == nil {
		t.Fatalf("update 缺少参数应返回诊断")
	}
	// update 参数类型错误。
	if _, err := counterMethod(dyn, "update", eval.NewArgs(span, eval.Str("x")), span); err == nil {
		t.Fatalf("update 参数类型错误应返回诊断")
	}
}

// TestCounterViaScope 验证从全局作用域取 counter 构造动态值的路径。
func TestCounterViaScope(t *testing.T) {
	lib := Build()
	v, ok := lib.Global.Scope.Get("counter")
	if !ok {
		t.Fatalf("全局作用域应有 counter 绑定")
	}
	fn, ok := v.(eval.Func)
	if !ok {
		t.Fatalf("counter 绑定应为函数")
	}
	span := diag.Detached()
	out, err := fn(eval.NewArgs(span, eval.Int(3)))
	if err != nil {
		t.Fatalf("counter(3) 失败: %v", err)
	}
	boxed, ok := out.(eval.Dyn)
	if !ok {
		t.Fatalf("counter 应返回动态值，实际 %v", out)
	}
	got, err := counterMethod(boxed.Dynamic, "get", eval.NewArgs(span), span)
	if err != nil {
		t.Fatalf("get 失败: %v", err)
	}
	if n, ok := got.(eval.Int); !ok || n != 3 {
		t.Fatalf("初值为 3 的计数器 get 期望 3，实际 %v", got)
	}
}
