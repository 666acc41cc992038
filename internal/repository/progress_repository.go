package repository

import (
	"playground_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert 按 (user_id, quiz_id) 写入完成记录。
// 重复完成同一测验覆盖旧分数，不保留历史尝试。
func (r *ProgressRepository) Upsert(progress *model.QuizProgress) error {
	if progress.CompletedAt.IsZero() {
		progress.CompletedAt = time.Now()
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "quiz_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed", "score", "max_score", "completed_at", "updated_at",
		}),
	}).Create(progress).Error
}

// FindCompletedByUser 返回用户全部已完成记录，带测验及学科信息
func (r *ProgressRepository) FindCompletedByUser(userID uint) ([]model.QuizProgress, error) {
	var records []model.QuizProgress
	err := r.DB.Preload("Quiz").Preload("Quiz.Subject").
		Where("user_id = ? AND completed = ?", userID, true).
		Order("completed_at desc").
		Find(&records).Error
	return records, err
}

func (r *ProgressRepository) FindByUserAndQuiz(userID, quizID uint) (*model.QuizProgress, error) {
	var progress model.QuizProgress
	err := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
