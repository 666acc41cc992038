package controller

import (
	"playground_backend/internal/service"
	"playground_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetSubjects godoc
// @Summary 获取学科列表
// @Tags 测验中心
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/subjects [get]
func (c *QuizController) GetSubjects(ctx *gin.Context) {
	subjects, err := c.QuizService.GetSubjects()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

// GetQuizzes godoc
// @Summary 获取测验目录
// @Description 可按学科过滤，数据库为空时返回内置示例
// @Tags 测验中心
// @Produce json
// @Param subjectId query int false "学科ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *QuizController) GetQuizzes(ctx *gin.Context) {
	var subjectID uint
	if idStr := ctx.Query("subjectId"); idStr != "" {
		if id, err := strconv.Atoi(idStr); err == nil {
			subjectID = uint(id)
		}
	}

	quizzes, err := c.QuizService.GetQuizzes(subjectID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// GetQuizDetail godoc
// @Summary 获取测验详情
// @Description 返回测验及固定顺序的题目和选项
// @Tags 测验中心
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuizDetail(ctx *gin.Context) {
	quizID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	quiz, questions, err := c.QuizService.GetQuizDetail(uint(quizID))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"quiz":      quiz,
		"questions": questions,
	})
}

// SubmitQuiz godoc
// @Summary 提交测验
// @Description 计算得分、写入进度与积分并评估徽章，返回新获得的徽章
// @Tags 测验中心
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "测验ID"
// @Param body body service.QuizSubmission true "每道题选中的选项"
// @Success 200 {object} util.Response{data=service.QuizSubmissionResult}
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	var submission service.QuizSubmission
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitQuiz(user.UserID, uint(quizID), submission)
	if err != nil {
		if err == util.ErrQuizNotFound || err == util.ErrQuizNoQuestions {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
