// Package world 定义布局阶段依赖的编译环境能力接口。
// 具体实现由宿主提供，本核心只读取资源，不做任何写入。
package world

// World 提供编译环境中的外部资源：字体字节与普通文件字节。
// 方法可能阻塞在磁盘或网络加载上，调用方按同步语义使用。
type World interface {
	// Font 返回指定名称的字体数据。
	Font(name string) ([]byte, error)
	// File 返回指定路径的文件内容。
	File(path string) ([]byte, error)
}

// BibEntry 是参考文献表中的一个条目。
type BibEntry struct {
	Key    string `json:"key"`
	Detail string `json:"detail,omitempty"`
}

// Introspector 提供跨引用解析所需的文档级信息。
type Introspector interface {
	// BibliographyKeys 列出参考文献中的全部条目。
	BibliographyKeys() []BibEntry
	// Labels 列出文档中已定义的标签。
	Labels() []string
}
