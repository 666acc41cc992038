package model

import "time"

// Badge 徽章目录，全局共享，PointsRequired 为默认的积分门槛规则
type Badge struct {
	BaseModel
	Name           string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description    string `gorm:"size:255" json:"description"`
	Icon           string `gorm:"size:50" json:"icon"`
	Color          string `gorm:"size:20" json:"color"`
	PointsRequired int    `gorm:"default:0" json:"pointsRequired"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge 用户已获得的徽章，(user_id, badge_id) 唯一，永不撤销。
// 唯一索引同时是并发重复颁发的唯一防线。
type UserBadge struct {
	BaseModel
	UserID   uint      `gorm:"uniqueIndex:idx_user_badge;type:bigint unsigned;not null" json:"userId"`
	BadgeID  uint      `gorm:"uniqueIndex:idx_user_badge;type:bigint unsigned;not null" json:"badgeId"`
	Badge    *Badge    `gorm:"foreignKey:BadgeID" json:"badge,omitempty"`
	EarnedAt time.Time `json:"earnedAt"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
