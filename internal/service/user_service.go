package service

import (
	"Socials/internal/api/dto"
	"Socials/internal/model"
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/redis"
	"Socials/internal/pkg/security"
	"Socials/internal/repository"
	"context"
	"errors"
	"strings"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Signup(ctx context.Context, signupDTO *dto.SignupDTO) (*dto.TokenDTO, error)
	Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, userID uint64, changeDTO *dto.ChangePasswordDTO) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// Signup 注册，用户名或邮箱重复时不创建用户
func (s *UserServiceImpl) Signup(ctx context.Context, signupDTO *dto.SignupDTO) (*dto.TokenDTO, error) {
	signupDTO.Username = strings.TrimSpace(signupDTO.Username)
	signupDTO.Email = strings.ToLower(strings.TrimSpace(signupDTO.Email))
	// 校验发生在去空白之前，纯空白的用户名或邮箱在这里拦下
	if signupDTO.Username == "" || signupDTO.Email == "" {
		return nil, ErrParamInvalid
	}

	if err := s.checkUnique(ctx, signupDTO.Username, signupDTO.Email); err != nil {
		return nil, err
	}

	user := &model.User{}
	if err := copier.Copy(user, signupDTO); err != nil {
		return nil, err
	}

	passwordHash, err := security.HashPassword(signupDTO.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			// 并发注册被唯一索引拦下，重新判断是哪一个字段冲突
			if uniqErr := s.checkUnique(ctx, signupDTO.Username, signupDTO.Email); uniqErr != nil {
				return nil, uniqErr
			}
			return nil, ErrUsernameExist
		}
		return nil, err
	}

	return s.issueToken(user)
}

func (s *UserServiceImpl) checkUnique(ctx context.Context, username, email string) error {
	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameExist
	}

	existing, err = s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailExist
	}
	return nil
}

// Login 用户名密码登录
func (s *UserServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(credentialDTO.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err = security.CheckPasswordHash(credentialDTO.Password, user.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return nil, ErrPasswordIncorrect
		}
		return nil, err
	}

	return s.issueToken(user)
}

// Logout 将 Token 签名加入黑名单直到其自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return UnauthorizedError
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}

	ttl := security.RemainingTTL(claims)
	if ttl <= 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, 1, ttl)
}

// ChangePassword 校验旧密码后修改
func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID uint64, changeDTO *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err = security.CheckPasswordHash(changeDTO.OldPassword, user.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return ErrPasswordIncorrect
		}
		return err
	}

	hash, err := security.HashPassword(changeDTO.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, hash)
}

func (s *UserServiceImpl) issueToken(user *model.User) (*dto.TokenDTO, error) {
	token, err := security.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{Token: token, UserID: user.ID}, nil
}
