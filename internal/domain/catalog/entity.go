package catalog

import (
	"strings"
	"time"
)

// Kind 目录资源类型
// 作者、出版社、类型三种资源结构相同（只有名称），共用一套领域逻辑
type Kind string

const (
	KindAuthor    Kind = "author"
	KindEditorial Kind = "editorial"
	KindGenre     Kind = "genre"
)

// Meta 资源的命名信息，用于响应字段名和错误信息
type Meta struct {
	Singular string // author，响应体中单个对象的key
	Plural   string // authors，列表的key和路由段
	Title    string // Author，错误信息中的显示名
}

var kinds = map[Kind]Meta{
	KindAuthor:    {Singular: "author", Plural: "authors", Title: "Author"},
	KindEditorial: {Singular: "editorial", Plural: "editorials", Title: "Editorial"},
	KindGenre:     {Singular: "genre", Plural: "genres", Title: "Genre"},
}

// Kinds 所有资源类型（固定顺序）
func Kinds() []Kind {
	return []Kind{KindAuthor, KindEditorial, KindGenre}
}

// Valid 是否为已知类型
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Meta 命名信息；未知类型按原样返回
func (k Kind) Meta() Meta {
	if m, ok := kinds[k]; ok {
		return m
	}
	return Meta{Singular: string(k), Plural: string(k) + "s", Title: string(k)}
}

func (k Kind) String() string {
	return string(k)
}

// Item 目录资源实体
// 删除为软删除：IsActive=false后所有读操作都不可见，但名称仍占用唯一索引
type Item struct {
	ID        uint
	Kind      Kind
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem 创建新资源（工厂方法）
func NewItem(kind Kind, name string) *Item {
	now := time.Now()
	return &Item{
		Kind:      kind,
		Name:      NormalizeName(name),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename 修改名称（领域行为）
func (i *Item) Rename(name string) {
	i.Name = NormalizeName(name)
	i.UpdatedAt = time.Now()
}

// NormalizeName 去除首尾空白
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
