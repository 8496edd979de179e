package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"community-funding-system/internal/global/jwt"
	"community-funding-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DoRequest 直接调用 handler 并解析统一响应体
// claims 不为 nil 时模拟认证中间件写入的用户身份
func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, claims *jwt.Claims, request any, params ...gin.Param) (resp response.ResponseBody) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := bytes.NewReader(nil)
	if request != nil {
		requestBytes, err := json.Marshal(request)
		require.NoError(t, err)
		body = bytes.NewReader(requestBytes)
	}
	c.Request = httptest.NewRequest(http.MethodPost, "/test", body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params

	if claims != nil {
		c.Set("payload", claims)
	}

	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DecodeData 将响应体中的 data 字段再解析到目标结构
func DecodeData(t *testing.T, data any, out any) {
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
