// Package validation 请求参数绑定与校验
//
// 在gin默认的validator/v10引擎上注册：
// 1. decimal.Decimal自定义类型（可直接使用gt=0等数值规则）
// 2. 使用json/form tag作为错误字段名
// 3. 请求体中出现未知字段时报错
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/xiebiao/catalog/pkg/response"
)

var setupOnce sync.Once

// Setup 配置gin的校验引擎（幂等）
func Setup() {
	setupOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("notblank", notBlank)
	})
}

// BindJSON 绑定并校验JSON请求体，失败时写入400响应并返回false
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

// BindQuery 绑定并校验查询参数
func BindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		response.ValidationError(c, "validation failed", formatValidationErrors(verrs))
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		response.ValidationError(c, "invalid request body", []response.FieldError{{
			Field:   field,
			Rule:    "type",
			Message: fmt.Sprintf("%s must be of type %s", field, typeErr.Type.String()),
		}})
		return
	}

	response.ValidationError(c, "invalid request body", []response.FieldError{{
		Rule:    "syntax",
		Message: err.Error(),
	}})
}

func formatValidationErrors(verrs validator.ValidationErrors) []response.FieldError {
	fields := make([]response.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, response.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: buildMessage(fe),
		})
	}
	return fields
}

func buildMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be an email"
	case "gt":
		if fe.Param() == "0" {
			return field + " must be a positive number"
		}
		return field + " must be greater than " + fe.Param()
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	}
	return field + " is invalid (" + fe.Tag() + ")"
}

// fieldName 取json tag，其次form tag
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func decimalValue(v reflect.Value) interface{} {
	if d, ok := v.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}
