package repository

import (
	"playground_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ResearchRepository struct {
	DB *gorm.DB
}

func NewResearchRepository(db *gorm.DB) *ResearchRepository {
	return &ResearchRepository{DB: db}
}

func (r *ResearchRepository) FindAll(category string) ([]model.ResearchArticle, error) {
	var articles []model.ResearchArticle
	query := r.DB.Order("created_at desc")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&articles).Error
	return articles, err
}

func (r *ResearchRepository) FindByID(id uint) (*model.ResearchArticle, error) {
	var article model.ResearchArticle
	err := r.DB.First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Save 收藏文章，重复收藏视为成功（存在即收藏）
func (r *ResearchRepository) Save(userID, articleID uint) error {
	var existing model.SavedResearch
	err := r.DB.Where("user_id = ? AND article_id = ?", userID, articleID).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	record := &model.SavedResearch{
		UserID:    userID,
		ArticleID: articleID,
		SavedAt:   time.Now(),
	}
	return r.DB.Create(record).Error
}

// Unsave 取消收藏，硬删除，行不存在也返回成功
func (r *ResearchRepository) Unsave(userID, articleID uint) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&model.SavedResearch{}).Error
}

func (r *ResearchRepository) CountSaved(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.SavedResearch{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *ResearchRepository) FindSavedByUser(userID uint) ([]model.SavedResearch, error) {
	var saved []model.SavedResearch
	err := r.DB.Preload("Article").
		Where("user_id = ?", userID).
		Order("saved_at desc").
		Find(&saved).Error
	return saved, err
}
