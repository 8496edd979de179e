package test

import (
	"testing"

	"community-funding-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

// ErrorEqual 断言响应体携带了预期的业务错误码
func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
}

// NoError 断言响应体为成功
func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code)
}
