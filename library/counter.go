package library

import (
	"strconv"

	"github.com/ByLCY/folio/diag"
	"github.com/ByLCY/folio/eval"
)

// counterTypeName 是计数器装箱后的动态类型名。
const counterTypeName = "counter"

// Counter 是计数器的运行时状态，以动态值的形式在求值层流转。
type Counter struct {
	value int64
}

// NewCounter 创建初值为 initial 的计数器。
func NewCounter(initial int64) *Counter {
	return &Counter{value: initial}
}

// Get 返回当前计数。
func (c *Counter) Get() int64 { return c.value }

// Step 将计数加一。
func (c *Counter) Step() { c.value++ }

// Display 返回计数的显示形式。
func (c *Counter) Display() string { return strconv.FormatInt(c.value, 10) }

// NewCounterValue 把一个新计数器装箱为动态值。
func NewCounterValue(initial int64) *eval.Dynamic {
	return eval.NewDynamic(counterTypeName, NewCounter(initial))
}

// counterMethod 在计数器动态值上分派方法调用。
// 接收者不是计数器或方法不存在时返回带位置的诊断，不中断会话。
func counterMethod(dyn *eval.Dynamic, method string, args eval.Args, span diag.Span) (eval.Value, error) {
	c, ok := dyn.Inner().(*Counter)
	if !ok {
		return nil, diag.Errorf(span, "类型 %s 不支持计数器方法", dyn.TypeName())
	}
	switch method {
	case "step":
		c.Step()
		return eval.None{}, nil
	case "get":
		return eval.Int(c.Get()), nil
	case "update":
		v, ok := args.Pos(0)
		if !ok {
			return nil, diag.Errorf(span, "update 缺少新的计数值")
		}
		n, ok := v.(eval.Int)
		if !ok {
			return nil, diag.Errorf(span, "update 的参数应为整数，实际为 %s", v)
		}
		c.value = int64(n)
		return eval.None{}, nil
	case "display":
		return eval.Str(c.Display()), nil
	default:
		return nil, diag.Errorf(span, "计数器没有方法 %q", method)
	}
}
