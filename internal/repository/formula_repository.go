package repository

import (
	"playground_backend/internal/model"

	"gorm.io/gorm"
)

type FormulaRepository struct {
	DB *gorm.DB
}

func NewFormulaRepository(db *gorm.DB) *FormulaRepository {
	return &FormulaRepository{DB: db}
}

func (r *FormulaRepository) FindAll() ([]model.Formula, error) {
	var formulas []model.Formula
	err := r.DB.Order("category asc, name asc").Find(&formulas).Error
	return formulas, err
}

func (r *FormulaRepository) FindByCategory(category string) ([]model.Formula, error) {
	var formulas []model.Formula
	err := r.DB.Where("category = ?", category).Order("name asc").Find(&formulas).Error
	return formulas, err
}
