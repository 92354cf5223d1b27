package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"menuboard/config"
	"menuboard/models"
	"menuboard/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError 字段级错误详情
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func init() {
	// 校验错误使用 json 字段名，便于前端定位
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string, details ...FieldError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Errors: details})
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Message: message})
}

// InternalError 500 错误响应，release 模式下隐藏内部错误
func InternalError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: config.SafeErrorMessage(err, fallback)})
}

// respondStoreError 将存储层错误映射为 HTTP 响应
func respondStoreError(c *gin.Context, err error, invalidMsg, notFoundMsg, fallback string) {
	var verr *storage.ValidationError
	switch {
	case errors.As(err, &verr):
		BadRequest(c, invalidMsg, FieldError{Field: verr.Field, Message: verr.Message})
	case errors.Is(err, storage.ErrNotFound):
		NotFound(c, notFoundMsg)
	default:
		InternalError(c, err, fallback)
	}
}

// bindErrorDetails 将绑定/校验错误转换为字段级详情
func bindErrorDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Message: describeValidation(fe)})
		}
		return details
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []FieldError{{Field: field, Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)}}
	}
	return []FieldError{{Field: "body", Message: err.Error()}}
}

func describeValidation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// bindPatch 绑定部分更新请求体，空请求体视为空更新；nonNullable 中的字段显式为 null 时返回 400
func bindPatch(c *gin.Context, req any, invalidMsg string, nonNullable ...string) bool {
	body, err := c.GetRawData()
	if err != nil {
		BadRequest(c, invalidMsg, FieldError{Field: "body", Message: err.Error()})
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}
	if err := binding.JSON.BindBody(body, req); err != nil {
		BadRequest(c, invalidMsg, bindErrorDetails(err)...)
		return false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		BadRequest(c, invalidMsg, FieldError{Field: "body", Message: "must be a JSON object"})
		return false
	}
	var details []FieldError
	for _, name := range nonNullable {
		if raw, ok := fields[name]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			details = append(details, FieldError{Field: name, Message: "must not be null"})
		}
	}
	if len(details) > 0 {
		BadRequest(c, invalidMsg, details...)
		return false
	}
	return true
}

// parseID 解析路径中的正整数 id
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, "Invalid id", FieldError{Field: "id", Message: "must be a positive integer"})
		return 0, false
	}
	return id, true
}

// parseMealType 解析可选的 mealType 查询参数
func parseMealType(c *gin.Context) (models.MealType, bool) {
	raw := c.Query("mealType")
	if raw == "" {
		return "", true
	}
	mt := models.MealType(strings.ToLower(raw))
	if !mt.Valid() {
		BadRequest(c, "Invalid query", FieldError{Field: "mealType", Message: "must be one of: lunch, dinner"})
		return "", false
	}
	return mt, true
}
