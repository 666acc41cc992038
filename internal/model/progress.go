package model

import "time"

// QuizProgress 用户对单个测验的最近一次完成记录。
// (user_id, quiz_id) 唯一，重复完成同一测验会覆盖旧分数而不是追加。
type QuizProgress struct {
	BaseModel
	UserID      uint      `gorm:"uniqueIndex:idx_user_quiz;type:bigint unsigned;not null" json:"userId"`
	QuizID      uint      `gorm:"uniqueIndex:idx_user_quiz;type:bigint unsigned;not null" json:"quizId"`
	Quiz        *Quiz     `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	Completed   bool      `gorm:"default:false" json:"completed"`
	Score       int       `gorm:"default:0" json:"score"` // 百分制 [0,100]
	MaxScore    int       `gorm:"default:100" json:"maxScore"`
	CompletedAt time.Time `json:"completedAt"`
}

func (QuizProgress) TableName() string {
	return "user_progress"
}
