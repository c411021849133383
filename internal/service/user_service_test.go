package service

import (
	"Socials/internal/api/dto"
	"Socials/internal/model"
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_SignupDuplicateCreatesNothing(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo)
	ctx := context.Background()

	token, err := svc.Signup(ctx, &dto.SignupDTO{Username: "alice", Email: "Alice@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	_, err = svc.Signup(ctx, &dto.SignupDTO{Username: "alice", Email: "other@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUsernameExist)

	// 邮箱大小写不敏感
	_, err = svc.Signup(ctx, &dto.SignupDTO{Username: "bob", Email: "alice@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailExist)

	var count int64
	require.NoError(t, env.db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserService_SignupRejectsBlankUsername(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupDTO{Username: "   ", Email: "blank@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrParamInvalid)
	_, err = svc.Signup(ctx, &dto.SignupDTO{Username: "carol", Email: " \t ", Password: "secret1"})
	assert.ErrorIs(t, err, ErrParamInvalid)

	var count int64
	require.NoError(t, env.db.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count)

	// 首尾空白被去掉后正常注册
	_, err = svc.Signup(ctx, &dto.SignupDTO{Username: "  dave ", Email: "dave@example.com", Password: "secret1"})
	require.NoError(t, err)
	user, err := env.userRepo.GetUserByUsername(ctx, "dave")
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestUserService_LoginLogout(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupDTO{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "nobody", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	token, err := svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token.Token))
	signature, err := security.ExtractSignature(token.Token)
	require.NoError(t, err)
	assert.True(t, env.mr.Exists(consts.TokenBlacklistKey+signature))
	assert.Positive(t, env.mr.TTL(consts.TokenBlacklistKey+signature))

	assert.ErrorIs(t, svc.Logout(ctx, "garbage"), UnauthorizedError)
}

func TestUserService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo)
	ctx := context.Background()

	token, err := svc.Signup(ctx, &dto.SignupDTO{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, token.UserID, &dto.ChangePasswordDTO{OldPassword: "bad", NewPassword: "secret2"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	require.NoError(t, svc.ChangePassword(ctx, token.UserID, &dto.ChangePasswordDTO{OldPassword: "secret1", NewPassword: "secret2"}))
	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "secret2"})
	assert.NoError(t, err)
}
