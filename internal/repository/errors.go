package repository

import "errors"

var (
	// ErrProfileMissing 关注关系中引用的主页不存在
	ErrProfileMissing = errors.New("profile missing")
	// ErrPostMissing 点赞的帖子不存在
	ErrPostMissing = errors.New("post missing")
	// ErrDuplicateKey 违反唯一约束
	ErrDuplicateKey = errors.New("duplicate key")
)
