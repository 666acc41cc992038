package repository

import (
	"playground_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// AddPoints 积分累加，直接在数据库侧做加法避免读改写竞态
func (r *UserRepository) AddPoints(userID uint, points int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", points)).
		Error
}

// GetPoints 读取用户积分，行不存在时返回错误由调用方折算为 0
func (r *UserRepository) GetPoints(userID uint) (int, error) {
	var user model.User
	err := r.DB.Select("points").First(&user, userID).Error
	if err != nil {
		return 0, err
	}
	return user.Points, nil
}

func (r *UserRepository) FindTopByPoints(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("points DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}
