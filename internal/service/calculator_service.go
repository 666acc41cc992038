package service

import (
	"playground_backend/internal/model"
	"playground_backend/internal/repository"
	"playground_backend/pkg/logger"

	"go.uber.org/zap"
)

// CalculatorService 计算器页面的公式参考资料。
// 运算本身在前端完成，后端只提供资料目录。
type CalculatorService struct {
	FormulaRepo *repository.FormulaRepository
}

func NewCalculatorService(formulaRepo *repository.FormulaRepository) *CalculatorService {
	return &CalculatorService{FormulaRepo: formulaRepo}
}

// GetFormulas 公式列表（可按分类过滤），库里没有时回退内置示例
func (s *CalculatorService) GetFormulas(category string) ([]model.Formula, error) {
	var formulas []model.Formula
	var err error

	if category != "" {
		formulas, err = s.FormulaRepo.FindByCategory(category)
	} else {
		formulas, err = s.FormulaRepo.FindAll()
	}

	if err != nil || len(formulas) == 0 {
		if err != nil {
			logger.Log.Warn("formula query failed, serving sample content", zap.Error(err))
		}
		return s.fallbackFormulas(category), nil
	}
	return formulas, nil
}

func (s *CalculatorService) fallbackFormulas(category string) []model.Formula {
	all := sampleFormulas()
	if category == "" {
		return all
	}
	var matched []model.Formula
	for _, formula := range all {
		if formula.Category == category {
			matched = append(matched, formula)
		}
	}
	return matched
}
