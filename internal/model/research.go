package model

import "time"

// ResearchArticle 平台内置的科普文章
type ResearchArticle struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Summary     string `gorm:"size:500" json:"summary"`
	Content     string `gorm:"type:text" json:"content"`
	Category    string `gorm:"size:50;index" json:"category"`
	Difficulty  string `gorm:"size:20" json:"difficulty"`
	ReadingTime int    `gorm:"default:5" json:"readingTime"` // 分钟
}

func (ResearchArticle) TableName() string {
	return "research_articles"
}

// SavedResearch 收藏记录，存在即收藏，取消收藏直接删除行
type SavedResearch struct {
	BaseModel
	UserID    uint             `gorm:"uniqueIndex:idx_user_article;type:bigint unsigned;not null" json:"userId"`
	ArticleID uint             `gorm:"uniqueIndex:idx_user_article;type:bigint unsigned;not null" json:"articleId"`
	Article   *ResearchArticle `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	SavedAt   time.Time        `json:"savedAt"`
}

func (SavedResearch) TableName() string {
	return "saved_research"
}
