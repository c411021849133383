package es

// UserES 对应 user_index 的文档结构，用于按用户名搜索
type UserES struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}
