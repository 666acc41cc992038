package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"playground_backend/internal/model"
	"playground_backend/internal/repository"
	"playground_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv 测试用的内存数据库和完整一套服务
type testEnv struct {
	DB       *gorm.DB
	Users    *repository.UserRepository
	Subjects *repository.SubjectRepository
	Quizzes  *repository.QuizRepository
	Progress *repository.ProgressRepository
	Research *repository.ResearchRepository
	BadgeDB  *repository.BadgeRepository

	Stats   *StatsService
	Badges  *BadgeService
	QuizSvc *QuizService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger.Log = zap.NewNop()

	// 每个测试一个独立命名的共享内存库，连接池内的连接看到同一份数据
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.QuizProgress{},
		&model.ResearchArticle{},
		&model.SavedResearch{},
		&model.Badge{},
		&model.UserBadge{},
		&model.Formula{},
	)
	require.NoError(t, err)

	env := &testEnv{
		DB:       db,
		Users:    repository.NewUserRepository(db),
		Subjects: repository.NewSubjectRepository(db),
		Quizzes:  repository.NewQuizRepository(db),
		Progress: repository.NewProgressRepository(db),
		Research: repository.NewResearchRepository(db),
		BadgeDB:  repository.NewBadgeRepository(db),
	}
	env.Stats = NewStatsService(env.Progress, env.Users, env.Research)
	env.Badges = NewBadgeService(env.BadgeDB, env.Users, env.Stats)
	env.QuizSvc = NewQuizService(env.Quizzes, env.Subjects, env.Progress, env.Users, env.Badges, nil)
	return env
}

// seedBadgeCatalog 与生产环境 seedDefaults 相同的徽章目录
func (e *testEnv) seedBadgeCatalog(t *testing.T) {
	t.Helper()
	badges := []model.Badge{
		{Name: "First Steps", Icon: "👣", PointsRequired: 10},
		{Name: "Researcher", Icon: "📚", PointsRequired: 50},
		{Name: "Quiz Master", Icon: "🏆", PointsRequired: 100},
		{Name: "Math Whiz", Icon: "🧮", PointsRequired: 150},
		{Name: "Scientist", Icon: "🧪", PointsRequired: 150},
		{Name: "Historian", Icon: "📜", PointsRequired: 150},
		{Name: "Explorer", Icon: "🧭", PointsRequired: 150},
		{Name: "Century Club", Icon: "💯", PointsRequired: 500},
	}
	for i := range badges {
		require.NoError(t, e.DB.Create(&badges[i]).Error)
	}
}

func (e *testEnv) createUser(t *testing.T, name string, points int) *model.User {
	t.Helper()
	user := &model.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "hashed",
		Points:   points,
	}
	require.NoError(t, e.DB.Create(user).Error)
	return user
}

func (e *testEnv) createSubject(t *testing.T, name string) *model.Subject {
	t.Helper()
	subject := &model.Subject{Name: name}
	require.NoError(t, e.DB.Create(subject).Error)
	return subject
}

func (e *testEnv) createQuiz(t *testing.T, title string, subjectID uint, points int) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{Title: title, SubjectID: subjectID, Points: points}
	require.NoError(t, e.DB.Create(quiz).Error)
	return quiz
}

// recordCompletion 直接写入一条已完成的进度记录
func (e *testEnv) recordCompletion(t *testing.T, userID, quizID uint, score int) {
	t.Helper()
	require.NoError(t, e.Progress.Upsert(&model.QuizProgress{
		UserID:      userID,
		QuizID:      quizID,
		Completed:   true,
		Score:       score,
		MaxScore:    100,
		CompletedAt: time.Now(),
	}))
}

func (e *testEnv) saveArticles(t *testing.T, userID uint, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		article := &model.ResearchArticle{Title: fmt.Sprintf("article-%d", i), Category: "science"}
		require.NoError(t, e.DB.Create(article).Error)
		require.NoError(t, e.Research.Save(userID, article.ID))
	}
}

func badgeNames(badges []model.Badge) []string {
	names := make([]string, len(badges))
	for i, b := range badges {
		names[i] = b.Name
	}
	return names
}
