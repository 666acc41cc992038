package database

import (
	"fmt"
	"log"
	"playground_backend/internal/config"
	"playground_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.QuizProgress{},
		&model.ResearchArticle{},
		&model.SavedResearch{},
		&model.Badge{},
		&model.UserBadge{},
		&model.Formula{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDefaults(db)

	return db, nil
}

// seedDefaults 首次启动时写入默认学科、徽章目录和公式参考。
// 仅在对应表为空时执行，不覆盖运营后台的修改。
func seedDefaults(db *gorm.DB) {
	var subjectCount int64
	db.Model(&model.Subject{}).Count(&subjectCount)
	if subjectCount == 0 {
		defaultSubjects := []model.Subject{
			{Name: "Math", Color: "#4F86F7", Icon: "🔢"},
			{Name: "Science", Color: "#34C759", Icon: "🔬"},
			{Name: "History", Color: "#FF9500", Icon: "🏛️"},
			{Name: "Geography", Color: "#AF52DE", Icon: "🌍"},
		}
		for _, s := range defaultSubjects {
			db.Create(&s)
		}
	}

	var badgeCount int64
	db.Model(&model.Badge{}).Count(&badgeCount)
	if badgeCount == 0 {
		defaultBadges := []model.Badge{
			{Name: "First Steps", Description: "完成第一个测验", Icon: "👣", Color: "#4F86F7", PointsRequired: 10},
			{Name: "Researcher", Description: "收藏 5 篇文章", Icon: "📚", Color: "#34C759", PointsRequired: 50},
			{Name: "Quiz Master", Description: "完成 10 个测验", Icon: "🏆", Color: "#FFD700", PointsRequired: 100},
			{Name: "Math Whiz", Description: "数学测验满分 5 次", Icon: "🧮", Color: "#4F86F7", PointsRequired: 150},
			{Name: "Scientist", Description: "科学测验满分 5 次", Icon: "🧪", Color: "#34C759", PointsRequired: 150},
			{Name: "Historian", Description: "历史测验满分 5 次", Icon: "📜", Color: "#FF9500", PointsRequired: 150},
			{Name: "Explorer", Description: "地理测验满分 5 次", Icon: "🧭", Color: "#AF52DE", PointsRequired: 150},
			{Name: "Century Club", Description: "累计获得 500 积分", Icon: "💯", Color: "#FF2D55", PointsRequired: 500},
		}
		for _, b := range defaultBadges {
			db.Create(&b)
		}
	}

	var formulaCount int64
	db.Model(&model.Formula{}).Count(&formulaCount)
	if formulaCount == 0 {
		defaultFormulas := []model.Formula{
			{Category: "geometry", Name: "圆面积", Expression: "A = πr²", Description: "r 为半径"},
			{Category: "geometry", Name: "勾股定理", Expression: "a² + b² = c²", Description: "直角三角形斜边"},
			{Category: "algebra", Name: "求根公式", Expression: "x = (-b ± √(b²-4ac)) / 2a", Description: "一元二次方程 ax²+bx+c=0"},
			{Category: "physics", Name: "牛顿第二定律", Expression: "F = ma", Description: "力 = 质量 × 加速度"},
			{Category: "physics", Name: "动能", Expression: "E = ½mv²", Description: "m 为质量，v 为速度"},
			{Category: "statistics", Name: "平均数", Expression: "x̄ = Σx / n", Description: "n 个数的算术平均"},
		}
		for _, f := range defaultFormulas {
			db.Create(&f)
		}
	}
}
