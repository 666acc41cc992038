package repository

import (
	"playground_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

// FindAllOrdered 徽章目录，按积分门槛升序
func (r *BadgeRepository) FindAllOrdered() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Order("points_required asc").Find(&badges).Error
	return badges, err
}

// FindEarnedIDs 用户已获得的徽章ID集合
func (r *BadgeRepository) FindEarnedIDs(userID uint) (map[uint]bool, error) {
	var awards []model.UserBadge
	err := r.DB.Where("user_id = ?", userID).Find(&awards).Error
	if err != nil {
		return nil, err
	}

	earned := make(map[uint]bool, len(awards))
	for _, a := range awards {
		earned[a.BadgeID] = true
	}
	return earned, nil
}

// CreateAward 颁发徽章。(user_id, badge_id) 唯一索引冲突时返回错误，
// 由调用方按"已经拿过"静默处理。
func (r *BadgeRepository) CreateAward(userID, badgeID uint) error {
	award := &model.UserBadge{
		UserID:   userID,
		BadgeID:  badgeID,
		EarnedAt: time.Now(),
	}
	return r.DB.Create(award).Error
}

// FindEarnedByUser 用户已获得的徽章，按获得时间倒序
func (r *BadgeRepository) FindEarnedByUser(userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Joins("JOIN user_badges ON user_badges.badge_id = badges.id").
		Where("user_badges.user_id = ?", userID).
		Order("user_badges.earned_at desc").
		Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}
