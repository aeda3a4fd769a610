package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/catalog/pkg/response"
)

// pathID 解析路径中的:id，必须是正整数，否则写入400响应
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.ValidationError(c, "id must be a positive integer", []response.FieldError{{
			Field:   "id",
			Rule:    "positive",
			Message: "id must be a positive integer",
		}})
		return 0, false
	}
	return uint(id), true
}
