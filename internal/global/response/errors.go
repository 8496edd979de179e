package response

// 业务错误码表
// 4xx 段为调用方错误，5xx 段为服务端错误
var (
	ErrInvalidRequest  = newError(400, "请求参数错误")
	ErrTokenInvalid    = newError(401, "令牌无效或已过期")
	ErrUnauthorized    = newError(403, "没有操作权限")
	ErrNotFound        = newError(404, "资源不存在")
	ErrAlreadyExists   = newError(409, "资源已存在")
	ErrConflict        = newError(410, "资源状态不允许该操作")
	ErrInvalidPassword = newError(411, "密码错误")
	ErrServerInternal  = newError(500, "服务器内部错误")
	ErrDatabase        = newError(501, "数据库操作失败")
)
