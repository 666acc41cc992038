package model

// Subject 学科分类（math/science/history/geography 等）
type Subject struct {
	BaseModel
	Name  string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Color string `gorm:"size:20" json:"color"`
	Icon  string `gorm:"size:50" json:"icon"`
}

func (Subject) TableName() string {
	return "subjects"
}
