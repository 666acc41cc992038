package controller

import (
	"playground_backend/internal/service"
	"playground_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// UpdateProfile godoc
// @Summary 更新用户资料
// @Description 修改显示名或头像
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ProfileUpdate true "资料"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.UserService.UpdateProfile(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

// UploadAvatar godoc
// @Summary 上传头像
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "头像文件(PNG/JPG)"
// @Success 200 {object} util.Response
// @Router /api/user/avatar/upload [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	avatarURL, err := c.UserService.UploadAvatar(ctx.Request.Context(), user.UserID, file)
	if err != nil {
		if err == util.ErrInvalidAvatarExt {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatar": avatarURL})
}
