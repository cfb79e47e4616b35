package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"udaan/internal/domain"
)

type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New 构造函数（保证 data 不为 null）
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

// OK 成功响应
func OK(data interface{}) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

// Error 失败响应（可传自定义 msg 覆盖默认）
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// JSON / Created 成功出口
func JSON(c *gin.Context, data interface{})    { c.JSON(http.StatusOK, OK(data)) }
func Created(c *gin.Context, data interface{}) { c.JSON(http.StatusCreated, OK(data)) }

// Fail 统一错误出口：按 domain 错误分类映射 HTTP 状态码与业务码。
// duplicate 的 HTTP 状态与 validation 同为 400，业务码 409 区分。
func Fail(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, CodeServerError
	switch domain.KindOf(err) {
	case domain.KindValidation:
		status, code = http.StatusBadRequest, CodeBadRequest
	case domain.KindUnauthorized:
		status, code = http.StatusUnauthorized, CodeUnauthorized
	case domain.KindForbidden:
		status, code = http.StatusForbidden, CodeForbidden
	case domain.KindNotFound:
		status, code = http.StatusNotFound, CodeNotFound
	case domain.KindDuplicate:
		status, code = http.StatusBadRequest, CodeDuplicate
	}
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if code == CodeServerError {
		// 内部错误细节不外漏
		msg = "internal error"
	}
	c.JSON(status, Error(code, msg))
}

// BadRequest 绑定/参数错误直接走 validation 分类；
// MaxBytesReader 的超限错误在这里升级成 413
func BadRequest(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, Error(CodeBadRequest, "request body too large"))
		return
	}
	c.JSON(http.StatusBadRequest, Error(CodeBadRequest, err.Error()))
}
