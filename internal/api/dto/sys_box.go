package dto

// SysBoxDTO 系统通知返回对象
type SysBoxDTO struct {
	ID         string `json:"id"`
	SenderID   uint64 `json:"sender_id"`
	SenderName string `json:"sender_name"`
	Type       int8   `json:"type"`      // 1-点赞, 2-关注
	TargetID   uint64 `json:"target_id"` // 点赞为帖子ID，关注为主页ID
	Content    string `json:"content"`
	IsRead     bool   `json:"is_read"`
	CreatedAt  string `json:"created_at"`
}

// SysBoxUnreadDTO 未读数返回
type SysBoxUnreadDTO struct {
	UnreadCount int64 `json:"unread_count"`
}

// SysBoxReadDTO 标记已读
type SysBoxReadDTO struct {
	ID string `json:"id" binding:"required" validate:"required,len=24,hexadecimal"`
}
