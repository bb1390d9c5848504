// Package diag 定义带源码范围标注的诊断信息。
// 文档层面的可恢复错误统一通过该包返回，调用方可以收集后继续编译。
package diag

import (
	"fmt"
	"strings"
)

// Span 标记源码中的一段字节区间。
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Detached 返回一个不关联任何源码位置的 Span（用于程序合成的节点）。
func Detached() Span { return Span{Start: -1, End: -1} }

// IsDetached 判断该 Span 是否未关联源码位置。
func (s Span) IsDetached() bool { return s.Start < 0 }

func (s Span) String() string {
	if s.IsDetached() {
		return "<detached>"
	}
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Diagnostic 是一条面向用户的诊断，携带出错位置与描述。
type Diagnostic struct {
	Span    Span   `json:"span"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Span, d.Message)
}

// List 聚合多条诊断，并实现 error 以便沿调用链返回。
type List []Diagnostic

// Error 实现 error 接口，拼接所有诊断描述。
func (l List) Error() string {
	parts := make([]string, len(l))
	for i, d := range l {
		parts[i] = d.String()
	}
	return strings.Join(parts, "; ")
}

// Errorf 构造仅含一条诊断的 List。
func Errorf(span Span, format string, args ...any) List {
	return List{{Span: span, Message: fmt.Sprintf(format, args...)}}
}

// Append 合并另一个错误中的诊断；非 List 错误会被降级为无位置诊断。
func Append(l List, err error) List {
	if err == nil {
		return l
	}
	if other, ok := err.(List); ok {
		return append(l, other...)
	}
	return append(l, Diagnostic{Span: Detached(), Message: err.Error()})
}
