package library

import (
	"math"
	"sort"
	"testing"

	"github.com/ByLCY/folio/diag"
	"github.com/ByLCY/folio/geom"
	"github.com/ByLCY/folio/lang"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/style"
	"github.com/ByLCY/folio/world"
)

// stubIntrospector 提供固定的文献与标签信息。
type stubIntrospector struct {
	entries []world.BibEntry
}

func (s stubIntrospector) BibliographyKeys() []world.BibEntry { return s.entries }
func (s stubIntrospector) Labels() []string { return nil }

// TestInstallIdempotent 验证重复组装并安装标准库是安全的空操作。
func TestInstallIdempotent(t *testing.T) {
	Install(Build())
	Install(Build())
	if !lang.Installed() {
		t.Fatalf("安装后注册表应处于已安装状态")
	}
}

// TestRoleBindings 验证注册表解析出的构造函数与直接构造的节点结构相等。
func TestRoleBindings(t *testing.T) {
	Install(Build())
	items := lang.Current()

	if got := items.Parbreak(); !got.Equal(layout.Dyn(ParbreakNode{})) {
		t.Fatalf("段落分隔角色解析出的节点不符: %v", got)
	}
	if got := items.Space(); !got.Equal(layout.Dyn(SpaceNode{})) {
		t.Fatalf("空白角色解析出的节点不符: %v", got)
	}
	body := items.Text("hi")
	if got := items.Strong(body); !got.Equal(layout.Dyn(StrongNode{Body: layout.NewText("hi")})) {
		t.Fatalf("加粗角色解析出的节点不符: %v", got)
	}
	if got := items.Heading(2, body); !got.Equal(layout.Dyn(HeadingNode{Level: 2, Body: layout.NewText("hi")})) {
		t.Fatalf("标题角色解析出的节点不符: %v", got)
	}
	if got := items.MathFrac(items.Text("a"), items.Text("b")); !got.Equal(layout.Dyn(FracNode{Num: layout.NewText("a"), Denom: layout.NewText("b")})) {
		t.Fatalf("分数角色解析出的节点不符: %v", got)
	}
}

// TestTextRoundtrip 验证纯文本的判别与提取。
func TestTextRoundtrip(t *testing.T) {
	items := itemsTable()
	n := items.Text("hello")
	if !items.IsText(n) {
		t.Fatalf("文本节点应被识别为文本")
	}
	if s, ok := items.TextStr(n); !ok || s != "hello" {
		t.Fatalf("文本提取失败: ok=%v s=%q", ok, s)
	}
	if items.IsText(items.Parbreak()) {
		t.Fatalf("段落分隔不应被识别为文本")
	}
	if _, ok := items.TextStr(items.Space()); ok {
		t.Fatalf("非文本节点的提取应当失败")
	}
}

// TestDefaultStyles 验证默认样式的取值。
func TestDefaultStyles(t *testing.T) {
	chain := style.NewChain(Build().Styles)
	if got := layout.EmOf(chain); math.Abs(got.Mm()-geom.Pt(11).Mm()) > 1e-9 {
		t.Fatalf("默认字号应为 11pt，实际 %gmm", got.Mm())
	}
	if layout.DirOf(chain) != geom.LTR {
		t.Fatalf("默认方向应为 ltr")
	}
	if layout.FontOf(chain) != "Body" {
		t.Fatalf("默认字体应为 Body")
	}
	wantLeading := geom.Em(0.65).At(geom.Pt(11))
	if got := layout.LeadingOf(chain); math.Abs(got.Mm()-wantLeading.Mm()) > 1e-9 {
		t.Fatalf("默认行距应为 0.65em，实际 %gmm", got.Mm())
	}
	wantSpacing := geom.Em(1.2).At(geom.Pt(11))
	if got := layout.ParSpacingOf(chain); math.Abs(got.Mm()-wantSpacing.Mm()) > 1e-9 {
		t.Fatalf("默认段距应为 1.2em，实际 %gmm", got.Mm())
	}
}

// TestRawLanguages 验证原文语言清单非空且按名称有序。
func TestRawLanguages(t *testing.T) {
	langs := rawLanguages()
	if len(langs) == 0 {
		t.Fatalf("原文语言清单不应为空")
	}
	sorted := sort.SliceIsSorted(langs, func(i, j int) bool { return langs[i].Name < langs[j].Name })
	if !sorted {
		t.Fatalf("原文语言清单应按名称有序")
	}
	found := false
	for _, l := range langs {
		if l.Name == "Go" {
			found = true
		}
	}
	if !found {
		t.Fatalf("原文语言清单应包含 Go")
	}
}

// TestBibliographyKeys 验证文献键的枚举与缺失场景的诊断。
func TestBibliographyKeys(t *testing.T) {
	in := stubIntrospector{entries: []world.BibEntry{
		{Key: "zhang2024", Detail: "Zhang 2024"},
		{Key: "adams2019", Detail: "Adams 2019"},
	}}
	entries, err := bibliographyKeys(nil, in, diag.Detached())
	if err != nil {
		t.Fatalf("枚举文献键失败: %v", err)
	}
	if len(entries) != 2 || entries[0].Key != "adams2019" || entries[1].Key != "zhang2024" {
		t.Fatalf("文献键应按键名有序: %v", entries)
	}

	if _, err := bibliographyKeys(nil, nil, diag.Detached()); err == nil {
		t.Fatalf("缺少文献信息时应返回诊断")
	}
}

// TestScopes 验证全局与数学作用域的绑定齐备。
func TestScopes(t *testing.T) {
	lib := Build()
	if lib.Global.Name != "global" || lib.Math.Name != "math" {
		t.Fatalf("模块名不符: %q %q", lib.Global.Name, lib.Math.Name)
	}
	for _, name := range []string{"text", "strong", "emph", "heading", "link", "ref", "raw", "parbreak", "linebreak", "counter"} {
		if _, ok := lib.Global.Scope.Get(name); !ok {
			t.Fatalf("全局作用域缺少绑定 %q", name)
		}
	}
	for _, name := range []string{"frac", "accent", "root", "sqrt", "primes", "alignpoint"} {
		if _, ok := lib.Math.Scope.Get(name); !ok {
			t.Fatalf("数学作用域缺少绑定 %q", name)
		}
	}
}
