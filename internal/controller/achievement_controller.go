package controller

import (
	"playground_backend/internal/service"
	"playground_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	BadgeService *service.BadgeService
	StatsService *service.StatsService
}

func NewAchievementController(badgeService *service.BadgeService, statsService *service.StatsService) *AchievementController {
	return &AchievementController{
		BadgeService: badgeService,
		StatsService: statsService,
	}
}

// GetUserBadges godoc
// @Summary 获取已获得的徽章
// @Description 用户已获得的徽章，最近获得的在前
// @Tags 成就系统
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/achievements/badges [get]
func (c *AchievementController) GetUserBadges(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.BadgeService.GetUserBadges(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badges)
}

// GetBadgeCatalog godoc
// @Summary 获取徽章目录
// @Description 全部徽章并标记当前用户已获得的项
// @Tags 成就系统
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/achievements/catalog [get]
func (c *AchievementController) GetBadgeCatalog(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	catalog, err := c.BadgeService.GetCatalog(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, catalog)
}

// GetStats godoc
// @Summary 获取成就统计快照
// @Tags 成就系统
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserStats}
// @Router /api/achievements/stats [get]
func (c *AchievementController) GetStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.StatsService.ComputeStats(user.UserID))
}

// CheckBadges godoc
// @Summary 重新评估徽章
// @Description 评估是幂等的，失败后可安全重试补发
// @Tags 成就系统
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/achievements/check [post]
func (c *AchievementController) CheckBadges(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	newBadges := c.BadgeService.CheckAndAwardBadges(user.UserID)
	util.Success(ctx, gin.H{"newBadges": newBadges})
}

// GetLeaderboard godoc
// @Summary 获取积分排行榜
// @Tags 成就系统
// @Produce json
// @Security BearerAuth
// @Param limit query int false "返回数量" default(10)
// @Success 200 {object} util.Response
// @Router /api/achievements/leaderboard [get]
func (c *AchievementController) GetLeaderboard(ctx *gin.Context) {
	limit := 10
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	leaderboard, err := c.BadgeService.GetLeaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, leaderboard)
}
