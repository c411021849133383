package dto

// PostDTO 帖子
type PostDTO struct {
	ID         uint64 `json:"id"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	LikesCount int    `json:"likes_count"`
	Liked      bool   `json:"liked"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`

	// User
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`

	Comments []*CommentDTO `json:"comments"`
}

// PostBaseDTO 帖子 - 修改
type PostBaseDTO struct {
	Content string `json:"content" form:"content" binding:"required" validate:"required,min=1,max=5000"`
}

// CommentDTO 评论
type CommentDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	UserID    uint64 `json:"user_id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// CreateCommentDTO 评论 - 新增
type CreateCommentDTO struct {
	Content string `json:"content" binding:"required" validate:"required,min=1,max=1000"`
}

// LikeResultDTO 点赞切换结果
type LikeResultDTO struct {
	PostID     uint64 `json:"post_id"`
	Liked      bool   `json:"liked"`
	LikesCount int    `json:"likes_count"`
}
