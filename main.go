package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/folio/font"
	"github.com/ByLCY/folio/lang"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/library"
	"github.com/ByLCY/folio/style"
	"github.com/ByLCY/folio/world"
)

func main() {
	fontsDir := flag.String("fonts", "fonts", "字体目录，按 <名称>.ttf 查找")
	output := flag.String("out", "output/layout.json", "布局调试 JSON 输出路径")
	flag.Parse()

	if err := run(*fontsDir, *output); err != nil {
		log.Fatalf("布局计算失败: %v", err)
	}
	fmt.Printf("已生成布局调试 JSON：%s\n", *output)
}

// run 组装标准库、构造示例内容树并执行根布局。
func run(fontsDir, outputPath string) error {
	lib := library.Build()
	library.Install(lib)
	items := lang.Current()

	// 示例内容：标题、段落分隔、一段带强调的正文与一个行内公式。
	content := layout.Dyn(library.SequenceNode{Children: []layout.Node{
		items.Heading(1, items.Text("Folio")),
		items.Parbreak(),
		items.Text("文档排版的调度核心。"),
		items.Space(),
		items.Strong(items.Text("结构化")),
		items.Text("且可扩展。"),
		items.Parbreak(),
		items.Formula(items.MathFrac(items.Text("1"), items.Text("2")), false),
	}})

	w := dirWorld{base: fontsDir}
	ctx := &layout.Context{
		World:      w,
		Typesetter: font.NewBook(w),
		Styles:     style.NewChain(lib.Styles),
	}
	doc, err := items.Layout(ctx, content, ctx.Styles)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(doc, outputPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

// dirWorld 以目录为根提供编译环境资源。
type dirWorld struct {
	base string
}

var _ world.World = dirWorld{}

func (w dirWorld) Font(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(w.base, name+".ttf"))
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", name, err)
	}
	return data, nil
}

func (w dirWorld) File(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(w.base, path))
}
