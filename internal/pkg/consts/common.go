package consts

import "time"

const (
	MimePrefixImage = "image"
)

const (
	DefaultAvatarURL = "default_avatar.png"
	// MaxImageSide 上传图片缩放后的最大边长
	MaxImageSide = 1280
	// MaxAvatarSide 头像缩放后的最大边长
	MaxAvatarSide = 400
)

// 关注按钮文案
const (
	FollowButtonText   = "Follow"
	UnFollowButtonText = "UnFollow"
)

const (
	CountCacheTTL     = time.Hour
	IdempotencyTTL    = 10 * time.Minute
	ToggleLockTTL     = 10 * time.Second
	IdempotencyHeader = "Idempotency-Key"
	MaxIdempotencyKey = 128
	DefaultPageSize   = 20
	MaxPageSize       = 100
	// MaxPage 页码上限，防止 offset 溢出
	MaxPage           = 10000
)

// 系统通知类型
const (
	SysBoxTypeLike   int8 = 1
	SysBoxTypeFollow int8 = 2
)
