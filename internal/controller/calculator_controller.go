package controller

import (
	"playground_backend/internal/service"
	"playground_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CalculatorController struct {
	CalculatorService *service.CalculatorService
}

func NewCalculatorController(calculatorService *service.CalculatorService) *CalculatorController {
	return &CalculatorController{CalculatorService: calculatorService}
}

// GetFormulas godoc
// @Summary 获取公式参考资料
// @Tags 计算器
// @Produce json
// @Param category query string false "分类"
// @Success 200 {object} util.Response
// @Router /api/calculator/formulas [get]
func (c *CalculatorController) GetFormulas(ctx *gin.Context) {
	formulas, err := c.CalculatorService.GetFormulas(ctx.Query("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, formulas)
}
