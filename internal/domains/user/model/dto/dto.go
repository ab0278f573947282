package dto

import (
	"hus/internal/domains/user/model"
)

type CreateUserRequest struct {
	Name     string     `json:"name"      validate:"required,max=100"`
	Username string     `json:"username"  validate:"required,max=50"`
	Role     model.Role `json:"role"      validate:"required,oneof=SUPER_ADMIN MANAGER STAFF"`
	IsActive *bool      `json:"is_active" validate:"omitempty"`
}

type UpdateUserRequest struct {
	Name     *string     `json:"name"      validate:"omitempty,max=100"`
	Username *string     `json:"username"  validate:"omitempty,max=50"`
	Password *string     `json:"password"  validate:"omitempty,max=100"`
	Role     *model.Role `json:"role"      validate:"omitempty,oneof=SUPER_ADMIN MANAGER STAFF"`
	IsActive *bool       `json:"is_active" validate:"omitempty"`
}

// Empty reports whether the patch changes nothing.
func (r UpdateUserRequest) Empty() bool {
	return r.Name == nil && r.Username == nil && r.Password == nil && r.Role == nil && r.IsActive == nil
}

// UserResponse never carries the stored password.
type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	Role      model.Role `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt string     `json:"created_at"`
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Name = user.Name
	r.Username = user.Username
	r.Role = user.Role
	r.IsActive = user.IsActive
	r.CreatedAt = user.CreatedAt
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(users []model.User) {
	r.TotalData = len(users)
	r.Users = make([]UserResponse, len(users))

	for i, user := range users {
		r.Users[i].FromModel(user)
	}
}
