package controller

import (
	"playground_backend/internal/service"
	"playground_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary 获取进度看板
// @Description 统计快照、最近完成的测验和已获得的徽章
// @Tags 看板
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.DashboardService.GetDashboard(user.UserID))
}
