package style

import "testing"

// TestMapSetGet 验证属性表的写入与读取。
func TestMapSetGet(t *testing.T) {
	m := NewMap().Set(TextFont, "Serif").Set(TextSize, 11)
	if v, ok := m.Get(TextFont); !ok || v != "Serif" {
		t.Fatalf("读取 text.font 失败: %v", v)
	}
	if _, ok := m.Get(ParLeading); ok {
		t.Fatalf("未写入的属性不应命中")
	}
	var nilMap *Map
	if _, ok := nilMap.Get(TextFont); ok {
		t.Fatalf("空属性表的读取应失败而不是崩溃")
	}
}

// TestChainLookup 验证级联由内向外的查找顺序。
func TestChainLookup(t *testing.T) {
	base := NewMap().Set(TextFont, "Serif").Set(TextSize, 11)
	inner := NewMap().Set(TextSize, 14)
	chain := NewChain(base).Chained(inner)

	if v, _ := chain.Get(TextSize); v != 14 {
		t.Fatalf("内层应覆盖外层: %v", v)
	}
	if v, _ := chain.Get(TextFont); v != "Serif" {
		t.Fatalf("未覆盖的属性应取外层值: %v", v)
	}
	if _, ok := chain.Get(ParSpacing); ok {
		t.Fatalf("处处未设置的属性不应命中")
	}
}

// TestChainImmutable 验证叠加不会改动原级联。
func TestChainImmutable(t *testing.T) {
	base := NewMap().Set(TextSize, 11)
	chain := NewChain(base)
	_ = chain.Chained(NewMap().Set(TextSize, 14))
	if v, _ := chain.Get(TextSize); v != 11 {
		t.Fatalf("叠加新层不应影响原级联: %v", v)
	}
}
