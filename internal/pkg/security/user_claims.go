package security

import (
	"Socials/internal/api/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultJWTSecret         = "socials-dev-secret"
	defaultJWTIssuer         = "socials"
	defaultJWTExpirationTime = time.Hour * 72
)

// UserClaims 定义了我们 Token 中需要包含的业务信息
type UserClaims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	if config.Cfg != nil && config.Cfg.JWT.Secret != "" {
		return []byte(config.Cfg.JWT.Secret)
	}
	return []byte(defaultJWTSecret)
}

func jwtIssuer() string {
	if config.Cfg != nil && config.Cfg.JWT.Issuer != "" {
		return config.Cfg.JWT.Issuer
	}
	return defaultJWTIssuer
}

// JWTExpirationTime Token 有效期
func JWTExpirationTime() time.Duration {
	if config.Cfg != nil && config.Cfg.JWT.ExpireHours > 0 {
		return time.Duration(config.Cfg.JWT.ExpireHours) * time.Hour
	}
	return defaultJWTExpirationTime
}
