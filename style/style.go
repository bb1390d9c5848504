// Package style 提供样式属性表与级联链的读取契约。
// 级联存储的完整实现属于求值器一侧，本包只约定布局阶段读取样式的方式。
package style

// Key 标识一个样式属性。
type Key string

// 本核心关心的属性键。
const (
	TextSize   Key = "text.size"   // 字号（geom.Abs）
	TextDir    Key = "text.dir"    // 文本方向（geom.Dir）
	TextFont   Key = "text.font"   // 字体名称（string）
	ParLeading Key = "par.leading" // 行距（geom.Rel）
	ParSpacing Key = "par.spacing" // 段间距（geom.Rel）
)

// Map 保存一组属性值，构建完成后只读。
type Map struct {
	props map[Key]any
}

// NewMap 创建空的属性表。
func NewMap() *Map {
	return &Map{props: map[Key]any{}}
}

// Set 写入一个属性值，返回自身便于链式构建。
func (m *Map) Set(key Key, value any) *Map {
	m.props[key] = value
	return m
}

// Get 读取属性值，第二个返回值表示是否存在。
func (m *Map) Get(key Key) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.props[key]
	return v, ok
}

// Chain 是不可变的样式级联：就近的属性表覆盖外层。
type Chain struct {
	local *Map
	outer *Chain
}

// NewChain 以单个属性表作为级联的根。
func NewChain(m *Map) Chain {
	return Chain{local: m}
}

// Chained 在当前级联之上叠加一层属性表，返回新的级联。
func (c Chain) Chained(m *Map) Chain {
	outer := c
	return Chain{local: m, outer: &outer}
}

// Get 由内向外查找属性，返回首个命中的值。
func (c Chain) Get(key Key) (any, bool) {
	if v, ok := c.local.Get(key); ok {
		return v, true
	}
	if c.outer != nil {
		return c.outer.Get(key)
	}
	return nil, false
}
