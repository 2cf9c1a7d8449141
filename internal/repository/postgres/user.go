package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/go-eventbooking/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

func (r *UserRepository) Search(ctx context.Context, name string) ([]model.User, error) {
	users := []model.User{}
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", containsPattern(name)).
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByStatus(ctx context.Context, active bool) ([]model.User, error) {
	users := []model.User{}
	err := r.db.WithContext(ctx).
		Where("is_active = ?", active).
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users by status: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	created := model.User{Name: user.Name, IsActive: user.IsActive}
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, patch model.UserPatch) (bool, error) {
	if patch.Empty() {
		var n int64
		if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return false, fmt.Errorf("failed to check user %d: %w", id, err)
		}
		return n > 0, nil
	}

	values := make(map[string]any, 2)
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.IsActive != nil {
		values["is_active"] = *patch.IsActive
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update user %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete user %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
