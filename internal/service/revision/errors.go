package revision

import "fmt"

// ValidationError 调用方输入不满足前置条件，未发起任何网络调用
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ForbiddenError 缺少功能授权，未发起任何网络调用
type ForbiddenError struct {
	Feature string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("feature not entitled: %s", e.Feature)
}

// RequestError 传输成功但服务端返回失败状态
// Message 优先透传服务端错误信息
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// MalformedResponseError 状态成功但载荷违反数据模型约束
// 对用户而言可重试，多为一次性的生成抖动
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed revision response: %s", e.Reason)
}

// TimeoutError 修订请求超出配置的时限
type TimeoutError struct {
	Message string
}

func (e *TimeoutError) Error() string {
	return e.Message
}
