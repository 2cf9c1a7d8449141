package memory

import (
	"context"
	"strings"

	"github.com/deppfellow/go-eventbooking/internal/model"
	"golang.org/x/text/cases"
)

type UserRepository struct {
	users *collection[model.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: newCollection(func(u *model.User, id int64) { u.ID = id }),
	}
}

// SeedUsers are the users a seeded store starts with.
var SeedUsers = []model.User{
	{Name: "Ian", IsActive: true},
	{Name: "Alice", IsActive: false},
	{Name: "Brian", IsActive: true},
}

// NewSeededUserRepository returns a repository holding SeedUsers with ids 1..3.
func NewSeededUserRepository() *UserRepository {
	r := NewUserRepository()
	for _, u := range SeedUsers {
		r.users.insert(u)
	}
	return r
}

func (r *UserRepository) GetAll(_ context.Context) ([]model.User, error) {
	return r.users.all(), nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.users.get(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepository) Search(_ context.Context, name string) ([]model.User, error) {
	// cases.Caser is stateful, so each search gets its own.
	fold := cases.Fold()
	needle := fold.String(name)

	return r.users.filter(func(u model.User) bool {
		return strings.Contains(fold.String(u.Name), needle)
	}), nil
}

func (r *UserRepository) GetByStatus(_ context.Context, active bool) ([]model.User, error) {
	return r.users.filter(func(u model.User) bool {
		return u.IsActive == active
	}), nil
}

func (r *UserRepository) Create(_ context.Context, user *model.User) (*model.User, error) {
	created := r.users.insert(*user)
	return &created, nil
}

func (r *UserRepository) Update(_ context.Context, id int64, patch model.UserPatch) (bool, error) {
	return r.users.update(id, patch.Apply), nil
}

func (r *UserRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.users.remove(id), nil
}
