package model

// PerfectScores 四个固定学科桶的满分次数统计。
// 其他学科的满分不计入任何桶（与线上行为保持一致）。
type PerfectScores struct {
	Math      int `json:"math"`
	Science   int `json:"science"`
	History   int `json:"history"`
	Geography int `json:"geography"`
}

// UserStats 一次徽章评估内使用的用户成就快照，不落库、不缓存，
// 每次评估都从数据库重新计算。
type UserStats struct {
	TotalQuizzes  int           `json:"totalQuizzes"`
	TotalPoints   int           `json:"totalPoints"`
	SavedResearch int           `json:"savedResearch"`
	PerfectScores PerfectScores `json:"perfectScores"`
}
