package model

type QuizDifficulty string

const (
	Easy   QuizDifficulty = "easy"
	Medium QuizDifficulty = "medium"
	Hard   QuizDifficulty = "hard"
)

// Quiz 测验，归属一个学科，Points 为满分可获得的积分
type Quiz struct {
	BaseModel
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	SubjectID   uint           `gorm:"index;type:bigint unsigned" json:"subjectId"`
	Subject     *Subject       `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Difficulty  QuizDifficulty `gorm:"size:10;default:'easy'" json:"difficulty"`
	Points      int            `gorm:"default:100" json:"points"`
	Questions   []Question     `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Question 单选题，固定顺序按创建时间升序
type Question struct {
	BaseModel
	QuizID  uint     `gorm:"index;type:bigint unsigned" json:"quizId"`
	Text    string   `gorm:"type:text;not null" json:"text"`
	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

type Answer struct {
	BaseModel
	QuestionID uint   `gorm:"index;type:bigint unsigned" json:"questionId"`
	Text       string `gorm:"size:500;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
}

func (Answer) TableName() string {
	return "answers"
}
