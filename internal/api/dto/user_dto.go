package dto

// SignupDTO 注册
type SignupDTO struct {
	Username string `json:"username" binding:"required" validate:"required,min=1,max=150"`
	Email    string `json:"email" binding:"required" validate:"required,email,max=254"`
	Password string `json:"password" binding:"required" validate:"required,min=6,max=64"`
}

// CredentialDTO 登录
type CredentialDTO struct {
	Username string `json:"username" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required" validate:"required"`
	NewPassword string `json:"new_password" binding:"required" validate:"required,min=6,max=64"`
}

// TokenDTO 登录/注册成功后返回
type TokenDTO struct {
	Token  string `json:"token"`
	UserID uint64 `json:"user_id"`
}
