package service

import (
	"testing"
	"time"

	"playground_backend/internal/config"
	"playground_backend/internal/model"
	"playground_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestService(env *testEnv) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-at-least-32-chars!!"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(env.Users, cfg)
}

func TestRegister_HashesPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthTestService(env)

	user := &model.User{Name: "alice", Email: "alice@example.com", Password: "secret123"}
	require.NoError(t, svc.Register(user))

	stored, err := env.Users.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthTestService(env)

	require.NoError(t, svc.Register(&model.User{Name: "alice", Email: "alice@example.com", Password: "secret123"}))
	err := svc.Register(&model.User{Name: "other", Email: "alice@example.com", Password: "different"})

	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthTestService(env)
	require.NoError(t, svc.Register(&model.User{Name: "alice", Email: "alice@example.com", Password: "secret123"}))

	token, err := svc.Login("alice@example.com", "secret123")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, "unit-test-secret-at-least-32-chars!!")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)

	// 错误密码和不存在的账号返回同一个错误，不泄露账号是否存在
	_, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	_, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestLogin_DisabledAccount(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthTestService(env)
	require.NoError(t, svc.Register(&model.User{Name: "alice", Email: "alice@example.com", Password: "secret123"}))

	// 密码正确但账号被禁用：拒绝登录
	require.NoError(t, env.DB.Model(&model.User{}).
		Where("email = ?", "alice@example.com").
		Update("disabled", true).Error)

	_, err := svc.Login("alice@example.com", "secret123")
	assert.ErrorIs(t, err, util.ErrAccountDisabled)
}
