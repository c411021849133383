package model

// AllModels 需要自动迁移的表
func AllModels() []any {
	return []any{&User{}, &Profile{}, &Post{}, &LikePost{}, &Comment{}, &ProfileFollow{}}
}
