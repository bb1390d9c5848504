package library

import (
	"sort"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/ByLCY/folio/diag"
	"github.com/ByLCY/folio/eval"
	"github.com/ByLCY/folio/geom"
	"github.com/ByLCY/folio/lang"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/style"
	"github.com/ByLCY/folio/world"
)

// Library 把全局作用域、数学作用域、默认样式与语言项表打包成一个整体，
// 会话启动时组装一次，之后不再变化。
type Library struct {
	// Global 是处处可见的绑定。
	Global eval.Module
	// Math 是仅在公式内可见的绑定。
	Math eval.Module
	// Styles 是默认样式。
	Styles *style.Map
	// Items 声明哪些标准库定义承担哪些语法角色。
	Items lang.Items
}

// Build 组装标准库。每次调用产出的语言项表绑定同一批函数，
// 因此重复 Build 再 Install 是安全的幂等操作。
func Build() *Library {
	return &Library{
		Global: globalModule(),
		Math:   mathModule(),
		Styles: defaultStyles(),
		Items:  itemsTable(),
	}
}

// Install 安装标准库：注册语言项表。
// Global/Math/Styles 由宿主在此之后交给求值器作为顶层绑定环境。
// 每个会话恰好调用一次；携带相同内容的重复安装是空操作。
func Install(lib *Library) {
	lang.Install(lib.Items)
}

// defaultStyles 构造默认样式。字面量统一走长度表达式解析，
// 保证与作者在文档里写出的样式值遵循同一语法。
func defaultStyles() *style.Map {
	return style.NewMap().
		Set(style.TextSize, mustAbs("11pt")).
		Set(style.TextDir, geom.LTR).
		Set(style.TextFont, "Body").
		Set(style.ParLeading, mustRel("0.65em")).
		Set(style.ParSpacing, mustRel("1.2em"))
}

func mustAbs(s string) geom.Abs {
	v, err := geom.ParseAbs(s)
	if err != nil {
		panic("library: 默认样式不合法: " + err.Error())
	}
	return v
}

func mustRel(s string) geom.Rel {
	v, err := geom.ParseRel(s)
	if err != nil {
		panic("library: 默认样式不合法: " + err.Error())
	}
	return v
}

// itemsTable 把语法角色逐一绑定到具体构造函数。
// 绑定的都是包级函数：函数指针稳定，表的内容摘要才稳定。
func itemsTable() lang.Items {
	return lang.Items{
		Layout:           layoutDocument,
		Em:               layout.EmOf,
		Dir:              layout.DirOf,
		Space:            makeSpace,
		Linebreak:        makeLinebreak,
		Text:             layout.NewText,
		IsText:           isText,
		TextStr:          textStr,
		SmartQuote:       makeSmartQuote,
		Parbreak:         makeParbreak,
		Strong:           makeStrong,
		Emph:             makeEmph,
		Raw:              makeRaw,
		RawLanguages:     rawLanguages,
		Link:             makeLink,
		Reference:        makeReference,
		BibliographyKeys: bibliographyKeys,
		Heading:          makeHeading,
		ListItem:         makeListItem,
		EnumItem:         makeEnumItem,
		TermItem:         makeTermItem,
		Formula:          makeFormula,
		MathAlignPoint:   makeMathAlignPoint,
		MathDelimited:    makeMathDelimited,
		MathAttach:       makeMathAttach,
		MathPrimes:       makeMathPrimes,
		MathAccent:       makeMathAccent,
		MathFrac:         makeMathFrac,
		MathRoot:         makeMathRoot,
		CounterMethod:    counterMethod,
	}
}

func makeSpace() layout.Node { return layout.Dyn(SpaceNode{}) }
func makeLinebreak() layout.Node { return layout.Dyn(LinebreakNode{}) }
func makeParbreak() layout.Node { return layout.Dyn(ParbreakNode{}) }

func isText(n layout.Node) bool {
	_, ok := n.AsText()
	return ok
}

func textStr(n layout.Node) (string, bool) {
	t, ok := n.AsText()
	return t.Text, ok
}

func makeSmartQuote(double bool) layout.Node {
	return layout.Dyn(SmartQuoteNode{Double: double})
}

func makeStrong(body layout.Node) layout.Node {
	return layout.Dyn(StrongNode{Body: body})
}

func makeEmph(body layout.Node) layout.Node {
	return layout.Dyn(EmphNode{Body: body})
}

func makeRaw(text, tag string, block bool) layout.Node {
	return layout.Dyn(RawNode{Text: text, Lang: tag, Block: block})
}

// rawLanguages 枚举原文代码块支持的语言：名称来自语法高亮词法器注册表。
func rawLanguages() []lang.RawLanguage {
	var out []lang.RawLanguage
	for _, l := range lexers.GlobalLexerRegistry.Lexers {
		cfg := l.Config()
		if cfg == nil {
			continue
		}
		out = append(out, lang.RawLanguage{Name: cfg.Name, Tags: cfg.Aliases})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func makeLink(url string) layout.Node {
	return layout.Dyn(LinkNode{URL: url})
}

func makeReference(target string, supplement *layout.Node) layout.Node {
	return layout.Dyn(RefNode{Target: target, Supplement: cloneOpt(supplement)})
}

// bibliographyKeys 列出参考文献中的条目；没有可用的文献信息时返回诊断。
func bibliographyKeys(w world.World, in world.Introspector, span diag.Span) ([]world.BibEntry, error) {
	if in == nil {
		return nil, diag.Errorf(span, "当前编译环境没有参考文献信息")
	}
	entries := in.BibliographyKeys()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

func makeHeading(level int, body layout.Node) layout.Node {
	if level < 1 {
		level = 1
	}
	return layout.Dyn(HeadingNode{Level: level, Body: body})
}

func makeListItem(body layout.Node) layout.Node {
	return layout.Dyn(ListItemNode{Body: body})
}

func makeEnumItem(number int, body layout.Node) layout.Node {
	return layout.Dyn(EnumItemNode{Number: number, Body: body})
}

func makeTermItem(term, description layout.Node) layout.Node {
	return layout.Dyn(TermItemNode{Term: term, Description: description})
}

func makeFormula(body layout.Node, block bool) layout.Node {
	return layout.Dyn(FormulaNode{Body: body, Block: block})
}

func makeMathAlignPoint() layout.Node { return layout.Dyn(AlignPointNode{}) }

func makeMathDelimited(open, body, close layout.Node) layout.Node {
	return layout.Dyn(DelimitedNode{Open: open, Body: body, Close: close})
}

func makeMathAttach(base layout.Node, bottom, top *layout.Node) layout.Node {
	return layout.Dyn(AttachNode{Base: base, Bottom: cloneOpt(bottom), Top: cloneOpt(top)})
}

func makeMathPrimes(count int) layout.Node {
	return layout.Dyn(PrimesNode{Count: count})
}

func makeMathAccent(base layout.Node, accent rune) layout.Node {
	return layout.Dyn(AccentNode{Base: base, Accent: accent})
}

func makeMathFrac(num, denom layout.Node) layout.Node {
	return layout.Dyn(FracNode{Num: num, Denom: denom})
}

func makeMathRoot(index *layout.Node, radicand layout.Node) layout.Node {
	return layout.Dyn(RootNode{Index: cloneOpt(index), Radicand: radicand})
}
