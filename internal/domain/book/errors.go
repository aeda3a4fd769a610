package book

import (
	"fmt"

	"github.com/xiebiao/catalog/internal/domain/catalog"
	apperrors "github.com/xiebiao/catalog/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在或已删除（查询、修改）
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeNotFound, "Book not found")

	// ErrBookNotExist 图书不存在或已删除（删除）
	ErrBookNotExist = apperrors.New(apperrors.ErrCodeNotFound, "Book does not exist")

	// ErrTitleRequired 标题为空
	ErrTitleRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "title is required")

	// ErrInvalidPrice 价格必须大于0
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "price must be a positive number")

	// ErrInvalidReference 存储层外键约束失败
	ErrInvalidReference = apperrors.New(apperrors.ErrCodeInvalidReference, "Book references an unknown author, editorial or genre")
)

// ErrUnknownReference 外键指向不存在或已删除的资源
func ErrUnknownReference(kind catalog.Kind) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeInvalidReference, "%s references an unknown %s", ReferenceField(kind), kind.Meta().Singular)
}

// ErrUnknownRelation 排序字段中的关联别名未知
func ErrUnknownRelation(alias string) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeInvalidSort, "Unknown relation: "+alias)
}

// ErrUnknownSortField 排序字段不在白名单中
func ErrUnknownSortField(field string) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeInvalidSort, "Unknown sort field: "+field)
}

// ReferenceField 外键在请求体中的字段名
func ReferenceField(kind catalog.Kind) string {
	return string(kind) + "Id"
}

// DeletedMessage 删除成功的提示信息
func DeletedMessage(id uint) string {
	return fmt.Sprintf("Book with id #%d was deleted", id)
}
