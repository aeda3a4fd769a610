package catalog

import (
	"fmt"

	apperrors "github.com/xiebiao/catalog/pkg/errors"
)

// 目录领域错误
// 错误信息随资源类型变化，因此以函数形式提供；AppError按code+message比较，可直接用errors.Is判断

// ErrAlreadyExists 创建时名称已被占用（包括已删除的记录）
func ErrAlreadyExists(kind Kind) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeConflict, kind.Meta().Title+" already exists")
}

// ErrNameTaken 改名时名称已被其他记录占用
func ErrNameTaken(kind Kind) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeConflict, "Already exists "+kind.Meta().Singular+" with this name")
}

// ErrNotFound 查询或修改的记录不存在或已删除
func ErrNotFound(kind Kind) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeNotFound, kind.Meta().Title+" not found")
}

// ErrNotExist 删除的记录不存在或已删除
func ErrNotExist(kind Kind) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeNotFound, kind.Meta().Title+" does not exist")
}

// ErrUnknownKind 未注册的资源类型
func ErrUnknownKind(kind Kind) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeInternal, "unknown catalog kind %q", string(kind))
}

// DeletedMessage 删除成功的提示信息
func DeletedMessage(kind Kind, id uint) string {
	return fmt.Sprintf("%s with id #%d was deleted", kind.Meta().Title, id)
}
