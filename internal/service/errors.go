package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUsernameExist     = errors.New("用户名已存在")
	ErrEmailExist        = errors.New("邮箱已注册")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrProfileNotFound   = errors.New("个人主页不存在")
	ErrProfileExist      = errors.New("个人主页已存在")
	ErrFollowSelf        = errors.New("用户不能关注自己")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrFileNotSupported  = errors.New("不支持的文件类型")
	ErrSysBoxNotFound    = errors.New("系统通知不存在")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUsernameExist:     BadRequest,
	ErrEmailExist:        BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrProfileNotFound:   NotFound,
	ErrProfileExist:      BadRequest,
	ErrFollowSelf:        BadRequest,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrFileNotSupported:  BadRequest,
	ErrSysBoxNotFound:    NotFound,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
