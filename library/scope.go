package library

import (
	"github.com/ByLCY/folio/diag"
	"github.com/ByLCY/folio/eval"
	"github.com/ByLCY/folio/layout"
)

// globalModule 构造处处可见的绑定。
func globalModule() eval.Module {
	scope := eval.NewScope().
		Define("text", eval.Func(fnText)).
		Define("strong", eval.Func(fnStrong)).
		Define("emph", eval.Func(fnEmph)).
		Define("heading", eval.Func(fnHeading)).
		Define("link", eval.Func(fnLink)).
		Define("ref", eval.Func(fnRef)).
		Define("raw", eval.Func(fnRaw)).
		Define("parbreak", eval.Func(fnParbreak)).
		Define("linebreak", eval.Func(fnLinebreak)).
		Define("counter", eval.Func(fnCounter))
	return eval.Module{Name: "global", Scope: scope}
}

// mathModule 构造仅在公式内可见的绑定。
func mathModule() eval.Module {
	scope := eval.NewScope().
		Define("frac", eval.Func(fnFrac)).
		Define("accent", eval.Func(fnAccent)).
		Define("root", eval.Func(fnRoot)).
		Define("sqrt", eval.Func(fnRoot)).
		Define("primes", eval.Func(fnPrimes)).
		Define("alignpoint", eval.Func(fnAlignPoint))
	return eval.Module{Name: "math", Scope: scope}
}

// contentArg 取第 i 个位置参数并转为内容节点，字符串参数按纯文本处理。
func contentArg(args eval.Args, i int) (layout.Node, error) {
	v, ok := args.Pos(i)
	if !ok {
		return layout.Node{}, diag.Errorf(args.Span, "缺少第 %d 个参数", i+1)
	}
	switch t := v.(type) {
	case eval.Content:
		return t.Node, nil
	case eval.Str:
		return layout.NewText(string(t)), nil
	default:
		return layout.Node{}, diag.Errorf(args.Span, "参数应为内容或字符串，实际为 %s", v)
	}
}

// strArg 取第 i 个位置参数并要求其为字符串。
func strArg(args eval.Args, i int) (string, error) {
	v, ok := args.Pos(i)
	if !ok {
		return "", diag.Errorf(args.Span, "缺少第 %d 个参数", i+1)
	}
	s, ok := v.(eval.Str)
	if !ok {
		return "", diag.Errorf(args.Span, "参数应为字符串，实际为 %s", v)
	}
	return string(s), nil
}

// intArg 取第 i 个位置参数并要求其为整数。
func intArg(args eval.Args, i int) (int64, error) {
	v, ok := args.Pos(i)
	if !ok {
		return 0, diag.Errorf(args.Span, "缺少第 %d 个参数", i+1)
	}
	n, ok := v.(eval.Int)
	if !ok {
		return 0, diag.Errorf(args.Span, "参数应为整数，实际为 %s", v)
	}
	return int64(n), nil
}

func fnText(args eval.Args) (eval.Value, error) {
	s, err := strArg(args, 0)
	if err != nil {
		return nil, err
	}
	return eval.Content{Node: layout.NewText(s)}, nil
}

func fnStrong(args eval.Args) (eval.Value, error) {
	body, err := contentArg(args, 0)
	if err != nil {
		return nil, err
	}
	return eval.Content{Node: makeStrong(body)}, nil
}

func fnEmph(args eval.Args) (eval.Value, error) {
	body, err := contentArg(args, 0)
	if err != nil {
		return nil, err
	}
	return eval.Content{Node: makeEmph(body)}, nil
}

func fnHeading(args eval.Args) (eval.Value, error) {
	level, err := intArg(args, 0)
	if err != nil {
		return nil, err
	}
	body, err := contentArg(args, 1)
	if err != nil {
		return nil, err
	}
	return eval.Content{Node: makeHeading(int(level), body)}, nil
}

func fnLink(args eval.Args) (eval.Value, error) {
	url, err := strArg(args, 0)
	if err != nil {
		return nil, err
	}
	return eval.Content{Node: makeLink(url)}, nil
}

func fnRef(args eval.Args) (eval.Value, error) {
	target, err := strArg(args, 0)
	if err != nil {
		return nil, err
	}
	return eval.Content{Node: makeReference(target, nil)}, nil
}

func fnRaw(args eval.Args) (eval.Value, error) {
	text, err := strArg(args, 0)
	if err != nil {
		return nil, err
	}
	tag := ""
	if v, ok := args.Named("lang"); ok {
		s, ok := v.(eval.Str)
		if !ok {
			return nil, diag.Errorf(args.Span, "lang 参数应为字符串，实际为 %s", v)
		}
		tag = string(s)
	}
	block := false
	if _, ok := args.Named("block"); ok {
		block = true
	}
	return eval.Content{Node: makeRaw(text, tag, block)}, nil
}

func fnParbreak(args eval.Args) (eval.Value, error) {
	return eval.Content{Node: makeParbreak()}, nil
}

func fnLinebreak(args eval.Args) (eval.Value, error) {
	return eval.Content{Node: makeLinebreak()}, nil
}

func fnCounter(args eval.Args) (eval.Value, error) {
	initial := int64(0)
	if v, ok := args.Pos(0); ok {
		n, ok := v.(eval.Int)
		if !ok {
			return nil, diag.Errorf(args.Span, "计数器初值应为整数，实际为 %s", v)
		}
		initial = int64(n)
	}
	return eval.Dyn{Dynamic: NewCounterValue(initial)}, nil
}

func fnFrac(args eval.Args) (eval.Value, error) {
	num, err := contentArg(args, 0)
	if err != nil {
		return nil, err
	}
	denom, err := contentArg(args, 1)
	if err != nil {
		return nil, err
	}
	return eval.Content{Node: makeMathFrac(num, denom)}, nil
}

func fnAccent(args eval.Args) (eval.Value, error) {
	base, err := contentArg(args, 0)
	if err != nil {
		return nil, err
	}
	mark, err := strArg(args, 1)
	if err != nil {
		return nil, err
	}
	runes := []rune(mark)
	if len(runes) != 1 {
		return nil, diag.Errorf(args.Span, "音标符应为单个字符，实际为 %q", mark)
	}
	return eval.Content{Node: makeMathAccent(base, runes[0])}, nil
}

func fnRoot(args eval.Args) (eval.Value, error) {
	radicand, err := contentArg(args, 0)
	if err != nil {
		return nil, err
	}
	return eval.Content{Node: makeMathRoot(nil, radicand)}, nil
}

func fnPrimes(args eval.Args) (eval.Value, error) {
	count, err := intArg(args, 0)
	if err != nil {
		return nil, err
	}
	return eval.Content{Node: makeMathPrimes(int(count))}, nil
}

func fnAlignPoint(args eval.Args) (eval.Value, error) {
	return eval.Content{Node: makeMathAlignPoint()}, nil
}
