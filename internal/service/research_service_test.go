package service

import (
	"testing"

	"playground_backend/internal/model"
	"playground_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveArticle_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := NewResearchService(env.Research)
	user := env.createUser(t, "alice", 0)
	article := &model.ResearchArticle{Title: "The Silk Road", Category: "history"}
	require.NoError(t, env.DB.Create(article).Error)

	// 重复收藏视为成功，只留一行
	require.NoError(t, svc.SaveArticle(user.ID, article.ID))
	require.NoError(t, svc.SaveArticle(user.ID, article.ID))

	count, err := env.Research.CountSaved(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUnsaveArticle(t *testing.T) {
	env := newTestEnv(t)
	svc := NewResearchService(env.Research)
	user := env.createUser(t, "alice", 0)
	article := &model.ResearchArticle{Title: "Why Is the Sky Blue?", Category: "science"}
	require.NoError(t, env.DB.Create(article).Error)
	require.NoError(t, svc.SaveArticle(user.ID, article.ID))

	require.NoError(t, svc.UnsaveArticle(user.ID, article.ID))

	count, err := env.Research.CountSaved(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// 行已不存在时再取消收藏也返回成功
	require.NoError(t, svc.UnsaveArticle(user.ID, article.ID))
}

func TestGetArticles_FallsBackToSamples(t *testing.T) {
	env := newTestEnv(t)
	svc := NewResearchService(env.Research)

	articles, err := svc.GetArticles("")
	require.NoError(t, err)
	assert.Len(t, articles, 3)

	// 分类过滤同样作用于示例内容
	history, err := svc.GetArticles("history")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "The Silk Road", history[0].Title)
}

func TestGetArticle_NotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewResearchService(env.Research)

	_, err := svc.GetArticle(12345)

	assert.ErrorIs(t, err, util.ErrArticleNotFound)
}

func TestGetDashboard(t *testing.T) {
	env := newTestEnv(t)
	env.seedBadgeCatalog(t)
	svc := NewDashboardService(env.Stats, env.Badges, env.Progress)

	user := env.createUser(t, "alice", 40)
	subject := env.createSubject(t, "Math")
	quiz := env.createQuiz(t, "quiz", subject.ID, 50)
	env.recordCompletion(t, user.ID, quiz.ID, 100)
	env.Badges.CheckAndAwardBadges(user.ID)

	dashboard := svc.GetDashboard(user.ID)

	assert.Equal(t, 1, dashboard.Stats.TotalQuizzes)
	assert.Equal(t, 40, dashboard.Stats.TotalPoints)
	assert.Equal(t, 1, dashboard.Stats.PerfectScores.Math)
	require.Len(t, dashboard.RecentProgress, 1)
	assert.Equal(t, []string{"First Steps"}, badgeNames(dashboard.Badges))
}

func TestGetDashboard_EmptyUser(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDashboardService(env.Stats, env.Badges, env.Progress)

	dashboard := svc.GetDashboard(42)

	assert.Equal(t, model.UserStats{}, dashboard.Stats)
	assert.Empty(t, dashboard.RecentProgress)
	assert.Empty(t, dashboard.Badges)
}
