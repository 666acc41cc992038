package model

// Formula 计算器页面的公式参考资料
type Formula struct {
	BaseModel
	Category    string `gorm:"size:50;index;not null" json:"category"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Expression  string `gorm:"size:255;not null" json:"expression"`
	Description string `gorm:"size:500" json:"description"`
}

func (Formula) TableName() string {
	return "formulas"
}
