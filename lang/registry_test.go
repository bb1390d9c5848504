package lang

import (
	"testing"

	"github.com/ByLCY/folio/geom"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/style"
)

// 测试用的包级绑定函数：指针身份稳定，可反复构造出摘要相同的表。
func emPlain(styles style.Chain) geom.Abs { return layout.EmOf(styles) }
func dirPlain(styles style.Chain) geom.Dir { return geom.LTR }
func dirFlipped(styles style.Chain) geom.Dir {
	return geom.RTL
}

func plainTable() Items {
	return Items{
		Em:   emPlain,
		Dir:  dirPlain,
		Text: layout.NewText,
	}
}

// TestInstallIdempotent 验证安装摘要相同的表是幂等的空操作。
func TestInstallIdempotent(t *testing.T) {
	var r Registry
	r.Install(plainTable())
	first := r.Items()
	// 同样的绑定再装一次，不应 panic，表指针保持稳定。
	r.Install(plainTable())
	if r.Items() != first {
		t.Fatalf("幂等安装不应替换已有的表")
	}
}

// TestInstallConflict 验证安装内容不同的表会立刻失败。
func TestInstallConflict(t *testing.T) {
	var r Registry
	r.Install(plainTable())

	defer func() {
		if recover() == nil {
			t.Fatalf("安装内容不同的表应当 panic")
		}
	}()
	conflicting := plainTable()
	conflicting.Dir = dirFlipped
	r.Install(conflicting)
}

// TestItemsBeforeInstall 验证安装前查表属于程序缺陷。
func TestItemsBeforeInstall(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("安装前查表应当 panic")
		}
	}()
	var r Registry
	_ = r.Items()
}

// TestInstalled 验证安装状态的汇报。
func TestInstalled(t *testing.T) {
	var r Registry
	if r.Installed() {
		t.Fatalf("新实例不应处于已安装状态")
	}
	r.Install(plainTable())
	if !r.Installed() {
		t.Fatalf("安装后应处于已安装状态")
	}
}

// TestHashIdentity 验证摘要只取决于函数指针身份。
func TestHashIdentity(t *testing.T) {
	a := plainTable()
	b := plainTable()
	if a.Hash() != b.Hash() {
		t.Fatalf("绑定同一批函数的两个表摘要应当一致")
	}
	c := plainTable()
	c.Dir = dirFlipped
	if a.Hash() == c.Hash() {
		t.Fatalf("绑定不同的表摘要不应一致")
	}
	var empty Items
	if a.Hash() == empty.Hash() {
		t.Fatalf("空表与非空表的摘要不应一致")
	}
}
