package dto

// ProfileDTO 个人主页
type ProfileDTO struct {
	ID           uint64 `json:"id"`
	UserID       uint64 `json:"user_id"`
	Username     string `json:"username"`
	Bio          string `json:"bio"`
	ProfilePic   string `json:"profile_pic"`
	WebsiteURL   string `json:"website_url"`
	FacebookURL  string `json:"facebook_url"`
	TwitterURL   string `json:"twitter_url"`
	InstagramURL string `json:"instagram_url"`
}

// ProfileBaseDTO 个人主页 - 新增或修改
type ProfileBaseDTO struct {
	Bio          string `json:"bio" validate:"max=500"`
	WebsiteURL   string `json:"website_url" validate:"omitempty,url,max=255"`
	FacebookURL  string `json:"facebook_url" validate:"omitempty,url,max=255"`
	TwitterURL   string `json:"twitter_url" validate:"omitempty,url,max=255"`
	InstagramURL string `json:"instagram_url" validate:"omitempty,url,max=255"`
}

// SearchProfileDTO 按用户名搜索
type SearchProfileDTO struct {
	Username string `json:"username" form:"username"`
}
