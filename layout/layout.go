package layout

// 该文件定义布局契约：每种节点都实现同一个操作——
// 给定上下文与约束，产出有序的布局片段。调用严格按深度优先顺序进行，
// 过程中可能阻塞在外部资源（如字体加载）上，但同一会话内不存在并行布局。

import (
	"github.com/ByLCY/folio/geom"
	"github.com/ByLCY/folio/style"
	"github.com/ByLCY/folio/world"
)

// Layouter 是所有内容节点必须实现的布局契约。
// 布局本身不返回可恢复错误：正确性诊断属于产出节点树的求值器，
// 子资源加载失败由对应的外部实现自行处理。
type Layouter interface {
	Layout(ctx *Context, cs Constraints) []Item
}

// Context 汇集布局期间可用的环境资源。
type Context struct {
	World        world.World
	Introspector world.Introspector
	Typesetter   Typesetter
	Styles       style.Chain
}

// WithStyles 返回替换了样式级联的上下文副本，供子树布局使用。
func (c *Context) WithStyles(styles style.Chain) *Context {
	child := *c
	child.Styles = styles
	return &child
}

// Constraints 描述一次布局调用可用的空间与断行规则。
type Constraints struct {
	Size      geom.Size // 可用区域
	Breakable bool      // 是否允许按宽度断行
}

// Item 是布局输出的片段：间距或一个已定位内容的帧，两者恰有其一。
type Item struct {
	space *geom.Abs
	frame *Frame
}

// SpaceItem 构造一个间距片段。
func SpaceItem(amount geom.Abs) Item {
	return Item{space: &amount}
}

// FrameItem 构造一个帧片段。
func FrameItem(frame Frame) Item {
	return Item{frame: &frame}
}

// Space 返回间距值，第二个返回值表示该片段是否为间距。
func (it Item) Space() (geom.Abs, bool) {
	if it.space == nil {
		return 0, false
	}
	return *it.space, true
}

// Frame 返回帧内容。
func (it Item) Frame() (*Frame, bool) {
	return it.frame, it.frame != nil
}

// Frame 是一块已经确定尺寸、内部元素均已定位的输出区域。
type Frame struct {
	Size  geom.Size `json:"size"`
	Texts []TextRun `json:"texts,omitempty"`
}

// Push 追加一个文本元素。
func (f *Frame) Push(run TextRun) {
	f.Texts = append(f.Texts, run)
}

// Merge 将另一个帧的元素平移 offset 后并入本帧，并扩展尺寸。
func (f *Frame) Merge(other Frame, offset geom.Point) {
	for _, run := range other.Texts {
		run.Pos.X += offset.X
		run.Pos.Y += offset.Y
		f.Texts = append(f.Texts, run)
	}
	if w := offset.X + other.Size.W; w > f.Size.W {
		f.Size.W = w
	}
	if h := offset.Y + other.Size.H; h > f.Size.H {
		f.Size.H = h
	}
}

// TextRun 是帧内一段已定位的文本。坐标单位为 mm，原点在帧左上角。
type TextRun struct {
	Pos     geom.Point `json:"pos"`
	Content string     `json:"content"`
	Font    string     `json:"font"`
	Size    geom.Abs   `json:"size"`
}

// Document 是根布局的产物：按顺序排列的页面帧。
type Document struct {
	Pages []Frame `json:"pages"`
}

// Typesetter 负责根据字体与宽度约束将文本拆成可绘制的行。
// breakable 为 false 时只按显式换行划分，不按宽度折行。
type Typesetter interface {
	LayoutLines(content string, width geom.Abs, font string, size geom.Abs, leading geom.Abs, breakable bool) ([]Line, error)
}

// Line 表示排版后的一行文本及其度量。
type Line struct {
	Content   string   `json:"content"`
	Width     geom.Abs `json:"width"`
	Height    geom.Abs `json:"height"`
	GapBefore geom.Abs `json:"gapBefore,omitempty"`
}

// 以下访问器读取级联中对本核心生效的样式值，未设置时返回默认值。

// EmOf 返回级联中生效的字号。
func EmOf(c style.Chain) geom.Abs {
	if v, ok := c.Get(style.TextSize); ok {
		if abs, ok := v.(geom.Abs); ok {
			return abs
		}
	}
	return geom.Pt(11)
}

// DirOf 返回级联中生效的文本方向。
func DirOf(c style.Chain) geom.Dir {
	if v, ok := c.Get(style.TextDir); ok {
		if dir, ok := v.(geom.Dir); ok {
			return dir
		}
	}
	return geom.LTR
}

// FontOf 返回级联中生效的字体名称。
func FontOf(c style.Chain) string {
	if v, ok := c.Get(style.TextFont); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return "Body"
}

// LeadingOf 返回级联中生效的行距，相对字号的部分按当前字号解析。
func LeadingOf(c style.Chain) geom.Abs {
	em := EmOf(c)
	if v, ok := c.Get(style.ParLeading); ok {
		if rel, ok := v.(geom.Rel); ok {
			return rel.Resolve(em)
		}
	}
	return geom.Em(0.65).At(em)
}

// ParSpacingOf 返回级联中生效的段间距。
func ParSpacingOf(c style.Chain) geom.Abs {
	em := EmOf(c)
	if v, ok := c.Get(style.ParSpacing); ok {
		if rel, ok := v.(geom.Rel); ok {
			return rel.Resolve(em)
		}
	}
	return geom.Em(1.2).At(em)
}
