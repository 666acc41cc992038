package service

import "playground_backend/internal/model"

// 数据库为空或读取失败时的兜底内容，保证前端页面永远有东西可渲染。
// ID 固定在 9000 段，避开自增主键的正常范围。

func sampleSubjects() map[string]*model.Subject {
	return map[string]*model.Subject{
		"math":      {BaseModel: model.BaseModel{ID: 9001}, Name: "Math", Color: "#4F86F7", Icon: "🔢"},
		"science":   {BaseModel: model.BaseModel{ID: 9002}, Name: "Science", Color: "#34C759", Icon: "🔬"},
		"history":   {BaseModel: model.BaseModel{ID: 9003}, Name: "History", Color: "#FF9500", Icon: "🏛️"},
		"geography": {BaseModel: model.BaseModel{ID: 9004}, Name: "Geography", Color: "#AF52DE", Icon: "🌍"},
	}
}

func sampleQuizzes() []model.Quiz {
	subjects := sampleSubjects()
	return []model.Quiz{
		{
			BaseModel:   model.BaseModel{ID: 9101},
			Title:       "Multiplication Basics",
			Description: "练习两位数以内的乘法",
			SubjectID:   subjects["math"].ID,
			Subject:     subjects["math"],
			Difficulty:  model.Easy,
			Points:      50,
		},
		{
			BaseModel:   model.BaseModel{ID: 9102},
			Title:       "The Solar System",
			Description: "认识太阳系的行星",
			SubjectID:   subjects["science"].ID,
			Subject:     subjects["science"],
			Difficulty:  model.Easy,
			Points:      50,
		},
		{
			BaseModel:   model.BaseModel{ID: 9103},
			Title:       "Ancient Civilizations",
			Description: "四大文明古国",
			SubjectID:   subjects["history"].ID,
			Subject:     subjects["history"],
			Difficulty:  model.Medium,
			Points:      80,
		},
		{
			BaseModel:   model.BaseModel{ID: 9104},
			Title:       "World Capitals",
			Description: "世界主要国家的首都",
			SubjectID:   subjects["geography"].ID,
			Subject:     subjects["geography"],
			Difficulty:  model.Medium,
			Points:      80,
		},
	}
}

func sampleQuestions() map[uint][]model.Question {
	return map[uint][]model.Question{
		9101: {
			{
				BaseModel: model.BaseModel{ID: 91011},
				QuizID:    9101,
				Text:      "7 × 8 = ?",
				Answers: []model.Answer{
					{BaseModel: model.BaseModel{ID: 910111}, QuestionID: 91011, Text: "54", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910112}, QuestionID: 91011, Text: "56", IsCorrect: true},
					{BaseModel: model.BaseModel{ID: 910113}, QuestionID: 91011, Text: "58", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910114}, QuestionID: 91011, Text: "64", IsCorrect: false},
				},
			},
			{
				BaseModel: model.BaseModel{ID: 91012},
				QuizID:    9101,
				Text:      "12 × 12 = ?",
				Answers: []model.Answer{
					{BaseModel: model.BaseModel{ID: 910121}, QuestionID: 91012, Text: "124", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910122}, QuestionID: 91012, Text: "144", IsCorrect: true},
					{BaseModel: model.BaseModel{ID: 910123}, QuestionID: 91012, Text: "154", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910124}, QuestionID: 91012, Text: "122", IsCorrect: false},
				},
			},
		},
		9102: {
			{
				BaseModel: model.BaseModel{ID: 91021},
				QuizID:    9102,
				Text:      "哪颗行星离太阳最近？",
				Answers: []model.Answer{
					{BaseModel: model.BaseModel{ID: 910211}, QuestionID: 91021, Text: "金星", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910212}, QuestionID: 91021, Text: "水星", IsCorrect: true},
					{BaseModel: model.BaseModel{ID: 910213}, QuestionID: 91021, Text: "火星", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910214}, QuestionID: 91021, Text: "地球", IsCorrect: false},
				},
			},
			{
				BaseModel: model.BaseModel{ID: 91022},
				QuizID:    9102,
				Text:      "太阳系中最大的行星是？",
				Answers: []model.Answer{
					{BaseModel: model.BaseModel{ID: 910221}, QuestionID: 91022, Text: "土星", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910222}, QuestionID: 91022, Text: "木星", IsCorrect: true},
					{BaseModel: model.BaseModel{ID: 910223}, QuestionID: 91022, Text: "海王星", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910224}, QuestionID: 91022, Text: "天王星", IsCorrect: false},
				},
			},
		},
		9103: {
			{
				BaseModel: model.BaseModel{ID: 91031},
				QuizID:    9103,
				Text:      "金字塔位于哪个国家？",
				Answers: []model.Answer{
					{BaseModel: model.BaseModel{ID: 910311}, QuestionID: 91031, Text: "希腊", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910312}, QuestionID: 91031, Text: "埃及", IsCorrect: true},
					{BaseModel: model.BaseModel{ID: 910313}, QuestionID: 91031, Text: "印度", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910314}, QuestionID: 91031, Text: "伊拉克", IsCorrect: false},
				},
			},
		},
		9104: {
			{
				BaseModel: model.BaseModel{ID: 91041},
				QuizID:    9104,
				Text:      "法国的首都是？",
				Answers: []model.Answer{
					{BaseModel: model.BaseModel{ID: 910411}, QuestionID: 91041, Text: "里昂", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910412}, QuestionID: 91041, Text: "巴黎", IsCorrect: true},
					{BaseModel: model.BaseModel{ID: 910413}, QuestionID: 91041, Text: "马赛", IsCorrect: false},
					{BaseModel: model.BaseModel{ID: 910414}, QuestionID: 91041, Text: "尼斯", IsCorrect: false},
				},
			},
		},
	}
}

func sampleArticles() []model.ResearchArticle {
	return []model.ResearchArticle{
		{
			BaseModel:   model.BaseModel{ID: 9201},
			Title:       "Why Is the Sky Blue?",
			Summary:     "瑞利散射如何决定天空的颜色",
			Content:     "阳光由多种颜色的光组成。穿过大气层时，波长较短的蓝光被空气分子散射得最多……",
			Category:    "science",
			Difficulty:  "easy",
			ReadingTime: 5,
		},
		{
			BaseModel:   model.BaseModel{ID: 9202},
			Title:       "The Silk Road",
			Summary:     "连接东西方的古代商路",
			Content:     "丝绸之路不只是运送丝绸的通道，还促成了技术、宗教和文化在欧亚大陆的传播……",
			Category:    "history",
			Difficulty:  "medium",
			ReadingTime: 8,
		},
		{
			BaseModel:   model.BaseModel{ID: 9203},
			Title:       "How Rivers Shape the Land",
			Summary:     "侵蚀与沉积塑造的地貌",
			Content:     "河流携带的泥沙在千万年间切割峡谷、堆积三角洲，是改变地表最持久的力量之一……",
			Category:    "geography",
			Difficulty:  "easy",
			ReadingTime: 6,
		},
	}
}

func sampleFormulas() []model.Formula {
	return []model.Formula{
		{BaseModel: model.BaseModel{ID: 9301}, Category: "geometry", Name: "圆面积", Expression: "A = πr²", Description: "r 为半径"},
		{BaseModel: model.BaseModel{ID: 9302}, Category: "geometry", Name: "勾股定理", Expression: "a² + b² = c²", Description: "直角三角形斜边"},
		{BaseModel: model.BaseModel{ID: 9303}, Category: "physics", Name: "牛顿第二定律", Expression: "F = ma", Description: "力 = 质量 × 加速度"},
		{BaseModel: model.BaseModel{ID: 9304}, Category: "statistics", Name: "平均数", Expression: "x̄ = Σx / n", Description: "n 个数的算术平均"},
	}
}
