package dto

// HomeFeedDTO 首页
type HomeFeedDTO struct {
	Profile     *ProfileDTO   `json:"profile"`
	Posts       []*PostDTO    `json:"posts"`
	Suggestions []*ProfileDTO `json:"suggestions"`
	CountPosts  int64         `json:"count_posts"`
}

// ProfilePageDTO 个人主页页面
type ProfilePageDTO struct {
	Profile        *ProfileDTO `json:"profile"`
	Posts          []*PostDTO  `json:"posts"`
	CountPosts     int64       `json:"count_posts"`
	ButtonText     string      `json:"button_text"`
	IsFollowing    bool        `json:"is_following"`
	IsSelf         bool        `json:"is_self"`
	FollowerCount  int64       `json:"follower_count"`
	FollowingCount int64       `json:"following_count"`
}
