package lang

import (
	"sync"
	"sync/atomic"
)

// Registry 保存一份写入一次、读取多次的语言项表。
// 写入由互斥锁保护；读取走原子指针，安装完成后无需任何锁。
//
// 同一进程内只允许存在一套标准库：重复安装时比较内容摘要，
// 相同则安装是幂等的，不同则说明加载了两套标准库，必须立刻失败，
// 否则会变成难以察觉的正确性问题。
type Registry struct {
	mu    sync.Mutex
	items atomic.Pointer[Items]
	hash  [32]byte
}

// Install 安装语言项表。首次调用存表；再次调用时若摘要一致则为空操作，
// 摘要不一致属于初始化缺陷，直接 panic 终止会话。
func (r *Registry) Install(items Items) {
	hash := items.Hash()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items.Load() != nil {
		if hash != r.hash {
			panic("lang: 重复安装了内容不同的语言项表")
		}
		return
	}
	r.hash = hash
	r.items.Store(&items)
}

// Installed 报告是否已完成安装。
func (r *Registry) Installed() bool {
	return r.items.Load() != nil
}

// Items 返回已安装的语言项表。
// 安装前调用说明编译器没有正确初始化，属于程序缺陷，直接 panic。
func (r *Registry) Items() *Items {
	it := r.items.Load()
	if it == nil {
		panic("lang: 语言项尚未安装，需先调用 Install")
	}
	return it
}

// process 是进程级默认实例，供无法逐层传递 Registry 的深层调用点使用。
var process Registry

// Install 在进程级默认实例上安装语言项表。
func Install(items Items) {
	process.Install(items)
}

// Installed 报告进程级默认实例是否已安装。
func Installed() bool {
	return process.Installed()
}

// Current 返回进程级默认实例中的语言项表。
func Current() *Items {
	return process.Items()
}
