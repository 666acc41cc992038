package controller

import (
	"playground_backend/internal/service"
	"playground_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ResearchController struct {
	ResearchService *service.ResearchService
	ArxivService    *service.ArxivService
}

func NewResearchController(researchService *service.ResearchService, arxivService *service.ArxivService) *ResearchController {
	return &ResearchController{
		ResearchService: researchService,
		ArxivService:    arxivService,
	}
}

// GetArticles godoc
// @Summary 获取内置文章列表
// @Tags 研究中心
// @Produce json
// @Param category query string false "分类"
// @Success 200 {object} util.Response
// @Router /api/research/articles [get]
func (c *ResearchController) GetArticles(ctx *gin.Context) {
	articles, err := c.ResearchService.GetArticles(ctx.Query("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, articles)
}

// GetArticle godoc
// @Summary 获取文章详情
// @Tags 研究中心
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/research/articles/{id} [get]
func (c *ResearchController) GetArticle(ctx *gin.Context) {
	articleID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid article ID")
		return
	}

	article, err := c.ResearchService.GetArticle(uint(articleID))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, article)
}

// SaveArticle godoc
// @Summary 收藏文章
// @Description 重复收藏同一篇文章视为成功
// @Tags 研究中心
// @Produce json
// @Security BearerAuth
// @Param id path int true "文章ID"
// @Success 200 {object} util.Response
// @Router /api/research/articles/{id}/save [post]
func (c *ResearchController) SaveArticle(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	articleID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid article ID")
		return
	}

	if err := c.ResearchService.SaveArticle(user.UserID, uint(articleID)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"saved": true})
}

// UnsaveArticle godoc
// @Summary 取消收藏
// @Tags 研究中心
// @Produce json
// @Security BearerAuth
// @Param id path int true "文章ID"
// @Success 200 {object} util.Response
// @Router /api/research/articles/{id}/save [delete]
func (c *ResearchController) UnsaveArticle(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	articleID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid article ID")
		return
	}

	if err := c.ResearchService.UnsaveArticle(user.UserID, uint(articleID)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"saved": false})
}

// GetSavedArticles godoc
// @Summary 获取收藏列表
// @Tags 研究中心
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/research/saved [get]
func (c *ResearchController) GetSavedArticles(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	saved, err := c.ResearchService.GetSavedArticles(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, saved)
}

// SearchPapers godoc
// @Summary 检索外部论文
// @Description 调 arXiv 公开 API，外部源失败时返回空列表
// @Tags 研究中心
// @Produce json
// @Param q query string false "关键词"
// @Param category query string false "学科预设(math/physics/biology/cs)"
// @Success 200 {object} util.Response
// @Router /api/research/papers [get]
func (c *ResearchController) SearchPapers(ctx *gin.Context) {
	papers := c.ArxivService.Search(ctx.Request.Context(), ctx.Query("q"), ctx.Query("category"))
	util.Success(ctx, papers)
}
