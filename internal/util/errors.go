package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrAccountDisabled  = errors.New("账号已被禁用")
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuizNoQuestions  = errors.New("quiz has no questions")
	ErrArticleNotFound  = errors.New("article not found")
	ErrInvalidAvatarExt = errors.New("仅支持 PNG/JPG 格式头像")
)
