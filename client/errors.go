package client

import "errors"

// 上游调用的哨兵错误，控制器据此映射响应
var (
	// ErrUnauthorized 上游拒绝了当前令牌
	ErrUnauthorized = errors.New("upstream rejected credentials")

	// ErrForbidden 令牌有效但权限不足
	ErrForbidden = errors.New("upstream forbade the operation")

	// ErrNotFound 请求的资源不存在
	ErrNotFound = errors.New("upstream resource not found")

	// ErrUpstream 其余所有上游故障（网络错误、5xx、响应解析失败）
	ErrUpstream = errors.New("upstream request failed")
)
