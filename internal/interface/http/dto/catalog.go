package dto

// NameRequest 作者/出版社/类型的创建与修改
type NameRequest struct {
	Name string `json:"name" binding:"notblank,max=255" example:"Jorge Luis Borges"`
}
