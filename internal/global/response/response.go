package response

import (
	"net/http"

	"community-funding-system/internal/global/logger"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应体
type ResponseBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Success 返回成功响应，data 最多一个
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应，并把错误对象存入 context 供中间件使用
func Fail(c *gin.Context, err error) {
	e, ok := err.(*Error)
	if !ok {
		e = ErrServerInternal.WithOrigin(err)
	}
	c.Set(ErrorContextKey, e)
	c.JSON(http.StatusOK, ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
		Data: originOrNil(e),
	})
}

func originOrNil(e *Error) any {
	if e.Origin == "" {
		return nil
	}
	return gin.H{"origin": e.Origin}
}

// Recovery 捕获 handler 中的 panic，返回统一的内部错误响应
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Response").Error("请求处理发生 panic", "panic", r, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusOK, ResponseBody{
			Code: ErrServerInternal.Code,
			Msg:  ErrServerInternal.Message,
		})
	}
}
