package service

import (
	"playground_backend/internal/model"
	"playground_backend/internal/repository"
	"playground_backend/pkg/logger"

	"go.uber.org/zap"
)

// DashboardService 进度看板：一次请求拼出页面需要的全部数据
type DashboardService struct {
	Stats        *StatsService
	Badges       *BadgeService
	ProgressRepo *repository.ProgressRepository
}

func NewDashboardService(
	stats *StatsService,
	badges *BadgeService,
	progressRepo *repository.ProgressRepository,
) *DashboardService {
	return &DashboardService{
		Stats:        stats,
		Badges:       badges,
		ProgressRepo: progressRepo,
	}
}

type Dashboard struct {
	Stats          model.UserStats      `json:"stats"`
	RecentProgress []model.QuizProgress `json:"recentProgress"`
	Badges         []model.Badge        `json:"badges"`
}

// GetDashboard 看板数据。进度和徽章读取失败时降级为空列表，
// 快照本身永不失败。
func (s *DashboardService) GetDashboard(userID uint) *Dashboard {
	dashboard := &Dashboard{
		Stats: s.Stats.ComputeStats(userID),
	}

	progress, err := s.ProgressRepo.FindCompletedByUser(userID)
	if err != nil {
		logger.Log.Warn("dashboard: progress load failed", zap.Uint("userID", userID), zap.Error(err))
		progress = []model.QuizProgress{}
	}
	if len(progress) > 10 {
		progress = progress[:10]
	}
	dashboard.RecentProgress = progress

	badges, err := s.Badges.GetUserBadges(userID)
	if err != nil {
		logger.Log.Warn("dashboard: badges load failed", zap.Uint("userID", userID), zap.Error(err))
		badges = []model.Badge{}
	}
	dashboard.Badges = badges

	return dashboard
}
