package service

import (
	"playground_backend/internal/model"
	"playground_backend/internal/repository"
	"playground_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

// StatsService 聚合用户的成就统计快照。
// 快照不落库也不缓存：徽章评估只在提交测验等低频动作后发生，
// 每次全量重读数据库即可，不存在性能瓶颈，也避免增量计数器漂移。
type StatsService struct {
	ProgressRepo *repository.ProgressRepository
	UserRepo     *repository.UserRepository
	ResearchRepo *repository.ResearchRepository
}

func NewStatsService(
	progressRepo *repository.ProgressRepository,
	userRepo *repository.UserRepository,
	researchRepo *repository.ResearchRepository,
) *StatsService {
	return &StatsService{
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
		ResearchRepo: researchRepo,
	}
}

// ComputeStats 计算用户成就快照。永不返回错误：
// 任何一路读库失败都记日志并按 0 折算，不能因为成就系统阻塞答题主流程。
func (s *StatsService) ComputeStats(userID uint) model.UserStats {
	stats := model.UserStats{}

	records, err := s.ProgressRepo.FindCompletedByUser(userID)
	if err != nil {
		logger.Log.Warn("stats: failed to load quiz progress, treating as empty",
			zap.Uint("userID", userID), zap.Error(err))
		records = nil
	}

	stats.TotalQuizzes = len(records)

	for _, rec := range records {
		if rec.Score != 100 {
			continue
		}
		if rec.Quiz == nil || rec.Quiz.Subject == nil {
			// 测验或学科被删，满分仍计入总数，只是进不了学科桶
			continue
		}
		switch NormalizeSubject(rec.Quiz.Subject.Name) {
		case "math":
			stats.PerfectScores.Math++
		case "science":
			stats.PerfectScores.Science++
		case "history":
			stats.PerfectScores.History++
		case "geography":
			stats.PerfectScores.Geography++
		}
	}

	points, err := s.UserRepo.GetPoints(userID)
	if err != nil {
		logger.Log.Warn("stats: failed to load user points, treating as zero",
			zap.Uint("userID", userID), zap.Error(err))
		points = 0
	}
	stats.TotalPoints = points

	saved, err := s.ResearchRepo.CountSaved(userID)
	if err != nil {
		logger.Log.Warn("stats: failed to count saved research, treating as zero",
			zap.Uint("userID", userID), zap.Error(err))
		saved = 0
	}
	stats.SavedResearch = int(saved)

	return stats
}

// NormalizeSubject 将学科名归一化到四个固定桶之一。
// "mathematics" 与 "math" 都归入 math；不认识的学科返回空串，不计桶。
// 目前桶是写死的四个，其他学科（如 Computer Science）的满分不会
// 进入任何学科徽章的统计口径。
func NormalizeSubject(name string) string {
	switch strings.ToLower(name) {
	case "mathematics", "math":
		return "math"
	case "science":
		return "science"
	case "history":
		return "history"
	case "geography":
		return "geography"
	default:
		return ""
	}
}
