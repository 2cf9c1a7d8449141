package model

import "github.com/go-playground/validator/v10"

// User is an account that can be searched by name and filtered by status.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	IsActive bool   `json:"isActive" gorm:"not null"`
}

// UserPatch carries the mutable user fields to overwrite. Nil fields are left
// unchanged.
type UserPatch struct {
	Name     *string
	IsActive *bool
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.IsActive == nil
}

// Apply overwrites the fields set in p.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}

// ----------------------------------------------------------------------------

type GetUsersRequest struct{}

func (r *GetUsersRequest) Validate() error { return nil }

type GetUserRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *GetUserRequest) Validate() error {
	return validator.New().Struct(r)
}

type SearchUsersRequest struct {
	Name string `query:"name"`
}

func (r *SearchUsersRequest) Validate() error { return nil }

type GetUsersByStatusRequest struct {
	IsActive bool `param:"isActive"`
}

func (r *GetUsersByStatusRequest) Validate() error { return nil }

type CreateUserRequest struct {
	Name     string `json:"name" validate:"max=255"`
	IsActive bool   `json:"isActive"`
}

func (r *CreateUserRequest) Validate() error {
	return validator.New().Struct(r)
}

// UpdateUserRequest binds the id from the path and the optional fields from
// the body.
type UpdateUserRequest struct {
	ID       int64   `param:"id" json:"-" validate:"required,min=1"`
	Name     *string `json:"name" validate:"omitempty,max=255"`
	IsActive *bool   `json:"isActive"`
}

func (r *UpdateUserRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *UpdateUserRequest) Patch() UserPatch {
	return UserPatch{Name: r.Name, IsActive: r.IsActive}
}

type DeleteUserRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *DeleteUserRequest) Validate() error {
	return validator.New().Struct(r)
}
