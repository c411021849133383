package consts

const (
	TokenBlacklistKey        = "token:blacklist:"
	ProfileFollowerCountKey  = "profile:follower:count:"
	ProfileFollowingCountKey = "profile:following:count:"
	ProfileFollowVersionKey  = "profile:follow:ver:"
	LikeIdempotencyKey       = "idem:like:"
)

const (
	FollowLock = "lock:follow:"
	LikeLock   = "lock:like:"

	LikeCountJobLock = "lock:job:like_count"
)
