package dto

// FollowDTO 关注请求，User 为被关注的主页 ID
type FollowDTO struct {
	User uint64 `json:"user" binding:"required" validate:"required,gt=0"`
}

// FollowResultDTO 关注切换结果
type FollowResultDTO struct {
	Following     bool   `json:"following"`
	ButtonText    string `json:"button_text"`
	FollowerCount int64  `json:"follower_count"`
}

// FollowEdgeDTO 粉丝/关注列表项
type FollowEdgeDTO struct {
	Profile   *ProfileDTO `json:"profile"`
	CreatedAt string      `json:"created_at"`
}
