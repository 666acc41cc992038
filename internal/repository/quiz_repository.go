package repository

import (
	"playground_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Preload("Subject").Order("created_at asc").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindBySubject(subjectID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Preload("Subject").
		Where("subject_id = ?", subjectID).
		Order("created_at asc").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Subject").First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindQuestions 返回测验的题目（含选项），按创建时间固定排序
func (r *QuizRepository) FindQuestions(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Preload("Answers").
		Where("quiz_id = ?", quizID).
		Order("created_at asc").
		Find(&questions).Error
	return questions, err
}

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) FindAll() ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Order("id asc").Find(&subjects).Error
	return subjects, err
}
