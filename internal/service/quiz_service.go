package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"playground_backend/internal/model"
	"playground_backend/internal/repository"
	"playground_backend/internal/util"
	"playground_backend/pkg/logger"
	"playground_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const quizCatalogCacheKey = "quiz_catalog"

// QuizService 测验中心：目录、详情和提交流程。
// 提交顺序是硬约束：先写进度、再加积分、最后评估徽章，
// 因为徽章评估的快照要能读到这次的进度和积分。
type QuizService struct {
	QuizRepo     *repository.QuizRepository
	SubjectRepo  *repository.SubjectRepository
	ProgressRepo *repository.ProgressRepository
	UserRepo     *repository.UserRepository
	Badges       *BadgeService
	Redis        *redis.Client
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	subjectRepo *repository.SubjectRepository,
	progressRepo *repository.ProgressRepository,
	userRepo *repository.UserRepository,
	badges *BadgeService,
	rdb *redis.Client,
) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		SubjectRepo:  subjectRepo,
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
		Badges:       badges,
		Redis:        rdb,
	}
}

// GetQuizzes 测验目录，数据库为空或失败时回退到内置示例内容
func (s *QuizService) GetQuizzes(subjectID uint) ([]model.Quiz, error) {
	if subjectID != 0 {
		quizzes, err := s.QuizRepo.FindBySubject(subjectID)
		if err == nil && len(quizzes) > 0 {
			return quizzes, nil
		}
		return s.fallbackQuizzes(subjectID), nil
	}

	if cached := s.catalogFromCache(); cached != nil {
		return cached, nil
	}

	quizzes, err := s.QuizRepo.FindAll()
	if err != nil || len(quizzes) == 0 {
		if err != nil {
			logger.Log.Warn("quiz catalog query failed, serving sample content", zap.Error(err))
		}
		return sampleQuizzes(), nil
	}

	s.cacheCatalog(quizzes)
	return quizzes, nil
}

// GetQuizDetail 测验详情（含固定顺序的题目和选项）
func (s *QuizService) GetQuizDetail(quizID uint) (*model.Quiz, []model.Question, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err == nil {
		questions, qerr := s.QuizRepo.FindQuestions(quizID)
		if qerr == nil && len(questions) > 0 {
			return quiz, questions, nil
		}
	}

	// 回退到示例内容
	for _, sample := range sampleQuizzes() {
		if sample.ID == quizID {
			questions := sampleQuestions()[quizID]
			if len(questions) > 0 {
				q := sample
				return &q, questions, nil
			}
		}
	}

	return nil, nil, util.ErrQuizNotFound
}

func (s *QuizService) GetSubjects() ([]model.Subject, error) {
	subjects, err := s.SubjectRepo.FindAll()
	if err != nil || len(subjects) == 0 {
		all := sampleSubjects()
		return []model.Subject{*all["math"], *all["science"], *all["history"], *all["geography"]}, nil
	}
	return subjects, nil
}

// QuizSubmission 每道题一个选中的选项
type QuizSubmission struct {
	Answers map[uint]uint `json:"answers" binding:"required"` // questionID -> answerID
}

type QuizSubmissionResult struct {
	Score        int           `json:"score"` // 百分制
	Correct      int           `json:"correct"`
	Total        int           `json:"total"`
	PointsEarned int           `json:"pointsEarned"`
	NewBadges    []model.Badge `json:"newBadges"`
}

// SubmitQuiz 提交测验。
// 写进度和积分失败时只记日志不中断——成就系统的故障不能
// 吞掉用户这次的答题结果；徽章评估是幂等的，之后重新触发即可补发。
func (s *QuizService) SubmitQuiz(userID, quizID uint, submission QuizSubmission) (*QuizSubmissionResult, error) {
	quiz, questions, err := s.GetQuizDetail(quizID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrQuizNoQuestions
	}

	correct := 0
	for _, question := range questions {
		selectedID, ok := submission.Answers[question.ID]
		if !ok {
			continue
		}
		for _, answer := range question.Answers {
			if answer.ID == selectedID && answer.IsCorrect {
				correct++
				break
			}
		}
	}

	score := int(math.Round(float64(correct) / float64(len(questions)) * 100))

	progress := &model.QuizProgress{
		UserID:      userID,
		QuizID:      quizID,
		Completed:   true,
		Score:       score,
		MaxScore:    100,
		CompletedAt: time.Now(),
	}
	if err := s.ProgressRepo.Upsert(progress); err != nil {
		logger.Log.Warn("quiz submit: progress upsert failed",
			zap.Uint("userID", userID), zap.Uint("quizID", quizID), zap.Error(err))
	}

	pointsEarned := int(math.Round(float64(score) / 100 * float64(quiz.Points)))
	if pointsEarned > 0 {
		if err := s.UserRepo.AddPoints(userID, pointsEarned); err != nil {
			logger.Log.Warn("quiz submit: points update failed",
				zap.Uint("userID", userID), zap.Error(err))
		}
	}

	monitoring.QuizSubmissions.Inc()

	// 进度和积分已经落库，这时再评估徽章，快照才能读到本次结果
	newBadges := s.Badges.CheckAndAwardBadges(userID)

	return &QuizSubmissionResult{
		Score:        score,
		Correct:      correct,
		Total:        len(questions),
		PointsEarned: pointsEarned,
		NewBadges:    newBadges,
	}, nil
}

func (s *QuizService) fallbackQuizzes(subjectID uint) []model.Quiz {
	var matched []model.Quiz
	for _, quiz := range sampleQuizzes() {
		if quiz.SubjectID == subjectID {
			matched = append(matched, quiz)
		}
	}
	return matched
}

func (s *QuizService) catalogFromCache() []model.Quiz {
	if s.Redis == nil {
		return nil
	}
	data, err := s.Redis.Get(context.Background(), quizCatalogCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var quizzes []model.Quiz
	if err := json.Unmarshal(data, &quizzes); err != nil {
		return nil
	}
	return quizzes
}

func (s *QuizService) cacheCatalog(quizzes []model.Quiz) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(quizzes)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), quizCatalogCacheKey, data, 5*time.Minute).Err(); err != nil {
		logger.Log.Debug(fmt.Sprintf("quiz catalog cache write failed: %v", err))
	}
}
