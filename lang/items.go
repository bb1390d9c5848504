// Package lang 维护语言项表：从抽象的语法角色（段落分隔、强调、标题……）
// 到标准库提供的具体构造函数的命名绑定。
// 编译器的任意位置都可以通过本包解析语言项，而不必把表层层传递下去。
package lang

import (
	"encoding/binary"
	"reflect"

	"github.com/zeebo/blake3"

	"github.com/ByLCY/folio/diag"
	"github.com/ByLCY/folio/eval"
	"github.com/ByLCY/folio/geom"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/style"
	"github.com/ByLCY/folio/world"
)

// RawLanguage 描述原文代码块支持的一种语言及其标签别名。
type RawLanguage struct {
	Name string
	Tags []string
}

// Items 是语言项表：每个字段对应一个封闭枚举中的角色。
// 表一旦安装便不再变化；字段集合本身就是角色集合的契约。
type Items struct {
	// 根布局函数：把一棵内容树排成文档。
	Layout func(ctx *layout.Context, content layout.Node, styles style.Chain) (*layout.Document, error)
	// 读取当前生效的字号。
	Em func(styles style.Chain) geom.Abs
	// 读取当前生效的文本方向。
	Dir func(styles style.Chain) geom.Dir
	// 空白。
	Space func() layout.Node
	// 强制换行。
	Linebreak func() layout.Node
	// 不带标记的纯文本。
	Text func(text string) layout.Node
	// 判断节点是否为纯文本节点。
	IsText func(node layout.Node) bool
	// 提取纯文本节点的内容。
	TextStr func(node layout.Node) (string, bool)
	// 智能引号，double 区分双引号与单引号。
	SmartQuote func(double bool) layout.Node
	// 段落分隔。
	Parbreak func() layout.Node
	// 加粗强调。
	Strong func(body layout.Node) layout.Node
	// 斜体强调。
	Emph func(body layout.Node) layout.Node
	// 原文代码，lang 为可选语言标签，block 区分行内与块级。
	Raw func(text, lang string, block bool) layout.Node
	// 原文代码支持的语言名称及标签。
	RawLanguages func() []RawLanguage
	// 超链接。
	Link func(url string) layout.Node
	// 交叉引用，supplement 为可选的补充内容。
	Reference func(target string, supplement *layout.Node) layout.Node
	// 参考文献键及其简述；文献缺失等问题以带位置的诊断返回。
	BibliographyKeys func(w world.World, in world.Introspector, span diag.Span) ([]world.BibEntry, error)
	// 章节标题，level 从 1 开始。
	Heading func(level int, body layout.Node) layout.Node
	// 无序列表项。
	ListItem func(body layout.Node) layout.Node
	// 有序列表项，number 为 0 表示自动编号。
	EnumItem func(number int, body layout.Node) layout.Node
	// 术语列表项。
	TermItem func(term, description layout.Node) layout.Node
	// 数学公式，block 区分行内与独立成段。
	Formula func(body layout.Node, block bool) layout.Node
	// 公式内的对齐点。
	MathAlignPoint func() layout.Node
	// 成对定界符包裹的公式内容。
	MathDelimited func(open, body, close layout.Node) layout.Node
	// 带可选上下标的基底。
	MathAttach func(base layout.Node, bottom, top *layout.Node) layout.Node
	// 撇号标记。
	MathPrimes func(count int) layout.Node
	// 带音标符的基底。
	MathAccent func(base layout.Node, accent rune) layout.Node
	// 分数。
	MathFrac func(num, denom layout.Node) layout.Node
	// 根式，index 为可选的根指数。
	MathRoot func(index *layout.Node, radicand layout.Node) layout.Node
	// 在计数器值上分派方法。这种逐方法的分派比较临时，
	// 以后应当换成更通用的动态方法分派。
	CounterMethod func(dyn *eval.Dynamic, method string, args eval.Args, span diag.Span) (eval.Value, error)
}

// hashKey 是语言项表哈希的域分隔密钥：ASCII 域名补零到 32 字节，
// 保证同样的函数指针在其他哈希场景下不会撞出相同摘要。
var hashKey = [32]byte{
	'f', 'o', 'l', 'i', 'o', '.', 'l', 'a', 'n', 'g', '.', 'i', 't', 'e', 'm', 's',
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Hash 计算语言项表的内容摘要。
// 函数绑定按指针身份参与哈希（两个表绑定同一批函数即视为同一个表），
// 字段通过反射逐个纳入，新增角色无需手工维护哈希实现。
func (it *Items) Hash() [32]byte {
	h, err := blake3.NewKeyed(hashKey[:])
	if err != nil {
		panic("lang: 初始化哈希失败: " + err.Error())
	}
	v := reflect.ValueOf(*it)
	t := v.Type()
	var buf [8]byte
	for i := 0; i < t.NumField(); i++ {
		h.WriteString(t.Field(i).Name)
		binary.LittleEndian.PutUint64(buf[:], uint64(v.Field(i).Pointer()))
		h.Write(buf[:])
	}
	var out [32]byte
	h.Digest().Read(out[:])
	return out
}
