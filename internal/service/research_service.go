package service

import (
	"playground_backend/internal/model"
	"playground_backend/internal/repository"
	"playground_backend/internal/util"
	"playground_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResearchService 研究中心的内置文章与收藏
type ResearchService struct {
	ResearchRepo *repository.ResearchRepository
}

func NewResearchService(researchRepo *repository.ResearchRepository) *ResearchService {
	return &ResearchService{ResearchRepo: researchRepo}
}

// GetArticles 文章列表，库里没有内容时回退到内置示例
func (s *ResearchService) GetArticles(category string) ([]model.ResearchArticle, error) {
	articles, err := s.ResearchRepo.FindAll(category)
	if err != nil || len(articles) == 0 {
		if err != nil {
			logger.Log.Warn("research articles query failed, serving sample content", zap.Error(err))
		}
		return s.fallbackArticles(category), nil
	}
	return articles, nil
}

func (s *ResearchService) GetArticle(id uint) (*model.ResearchArticle, error) {
	article, err := s.ResearchRepo.FindByID(id)
	if err == nil {
		return article, nil
	}

	for _, sample := range sampleArticles() {
		if sample.ID == id {
			a := sample
			return &a, nil
		}
	}

	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrArticleNotFound
	}
	return nil, err
}

// SaveArticle 收藏文章，重复收藏视为成功
func (s *ResearchService) SaveArticle(userID, articleID uint) error {
	return s.ResearchRepo.Save(userID, articleID)
}

// UnsaveArticle 取消收藏
func (s *ResearchService) UnsaveArticle(userID, articleID uint) error {
	return s.ResearchRepo.Unsave(userID, articleID)
}

func (s *ResearchService) GetSavedArticles(userID uint) ([]model.SavedResearch, error) {
	return s.ResearchRepo.FindSavedByUser(userID)
}

func (s *ResearchService) fallbackArticles(category string) []model.ResearchArticle {
	all := sampleArticles()
	if category == "" {
		return all
	}
	var matched []model.ResearchArticle
	for _, article := range all {
		if article.Category == category {
			matched = append(matched, article)
		}
	}
	return matched
}
