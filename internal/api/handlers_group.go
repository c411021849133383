package api

import "Socials/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	ProfileHandler    *handler.ProfileHandler
	FeedHandler       *handler.FeedHandler
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
	FollowHandler     *handler.FollowHandler
	SearchHandler     *handler.SearchHandler
	SysBoxHandler     *handler.SysBoxHandler
}
