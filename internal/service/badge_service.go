package service

import (
	"playground_backend/internal/model"
	"playground_backend/internal/repository"
	"playground_backend/pkg/logger"
	"playground_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// BadgePredicate 徽章资格判定：对成就快照的纯函数
type BadgePredicate func(model.UserStats) bool

// badgeRules 按徽章名注册的判定规则。
// 没有命中的徽章走默认规则：总积分 >= PointsRequired。
var badgeRules = map[string]BadgePredicate{
	"First Steps": func(s model.UserStats) bool { return s.TotalQuizzes >= 1 },
	"Quiz Master": func(s model.UserStats) bool { return s.TotalQuizzes >= 10 },
	"Researcher":  func(s model.UserStats) bool { return s.SavedResearch >= 5 },
	"Math Whiz":   func(s model.UserStats) bool { return s.PerfectScores.Math >= 5 },
	"Scientist":   func(s model.UserStats) bool { return s.PerfectScores.Science >= 5 },
	"Historian":   func(s model.UserStats) bool { return s.PerfectScores.History >= 5 },
	"Explorer":    func(s model.UserStats) bool { return s.PerfectScores.Geography >= 5 },
}

type BadgeService struct {
	BadgeRepo *repository.BadgeRepository
	UserRepo  *repository.UserRepository
	Stats     *StatsService
}

func NewBadgeService(
	badgeRepo *repository.BadgeRepository,
	userRepo *repository.UserRepository,
	stats *StatsService,
) *BadgeService {
	return &BadgeService{
		BadgeRepo: badgeRepo,
		UserRepo:  userRepo,
		Stats:     stats,
	}
}

// CheckAndAwardBadges 评估并颁发用户新达标的徽章，返回本次新获得的徽章
// （按目录顺序）。幂等：紧接着再调一次不会重复颁发任何徽章。
// 内部所有失败都降级为"这次没发徽章"，永不向上抛错。
func (s *BadgeService) CheckAndAwardBadges(userID uint) []model.Badge {
	stats := s.Stats.ComputeStats(userID)

	catalog, err := s.BadgeRepo.FindAllOrdered()
	if err != nil {
		logger.Log.Warn("badges: failed to load catalog, skipping evaluation",
			zap.Uint("userID", userID), zap.Error(err))
		return []model.Badge{}
	}

	earned, err := s.BadgeRepo.FindEarnedIDs(userID)
	if err != nil {
		logger.Log.Warn("badges: failed to load earned set, skipping evaluation",
			zap.Uint("userID", userID), zap.Error(err))
		return []model.Badge{}
	}

	newlyEarned := []model.Badge{}

	for _, badge := range catalog {
		if earned[badge.ID] {
			continue
		}
		if !Qualifies(badge, stats) {
			continue
		}

		// 两个标签页并发评估时唯一索引会让后到的插入失败，
		// 静默跳过即可，徽章已经在先到的那次里发出去了
		if err := s.BadgeRepo.CreateAward(userID, badge.ID); err != nil {
			logger.Log.Debug("badges: award insert skipped",
				zap.Uint("userID", userID), zap.String("badge", badge.Name), zap.Error(err))
			continue
		}

		monitoring.BadgesAwarded.WithLabelValues(badge.Name).Inc()
		newlyEarned = append(newlyEarned, badge)
	}

	return newlyEarned
}

// Qualifies 判定单个徽章是否达标
func Qualifies(badge model.Badge, stats model.UserStats) bool {
	if predicate, ok := badgeRules[badge.Name]; ok {
		return predicate(stats)
	}
	return stats.TotalPoints >= badge.PointsRequired
}

// GetUserBadges 用户已获得的徽章，最近获得的在前
func (s *BadgeService) GetUserBadges(userID uint) ([]model.Badge, error) {
	return s.BadgeRepo.FindEarnedByUser(userID)
}

// BadgeWithStatus 带"是否已获得"标记的目录项
type BadgeWithStatus struct {
	model.Badge
	Earned bool `json:"earned"`
}

// GetCatalog 完整徽章目录并标记用户已获得的项
func (s *BadgeService) GetCatalog(userID uint) ([]BadgeWithStatus, error) {
	catalog, err := s.BadgeRepo.FindAllOrdered()
	if err != nil {
		return nil, err
	}

	earned, err := s.BadgeRepo.FindEarnedIDs(userID)
	if err != nil {
		return nil, err
	}

	result := make([]BadgeWithStatus, len(catalog))
	for i, badge := range catalog {
		result[i] = BadgeWithStatus{Badge: badge, Earned: earned[badge.ID]}
	}
	return result, nil
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	User   string `json:"user"`
	Points int    `json:"points"`
	Avatar string `json:"avatar,omitempty"`
}

func (s *BadgeService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	users, err := s.UserRepo.FindTopByPoints(limit)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]LeaderboardEntry, len(users))
	for i, user := range users {
		leaderboard[i] = LeaderboardEntry{
			Rank:   i + 1,
			User:   user.Name,
			Points: user.Points,
			Avatar: user.Avatar,
		}
	}

	return leaderboard, nil
}
