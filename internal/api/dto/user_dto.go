package dto

import (
	"github.com/samber/lo"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// CreateUserRequest payload.
type CreateUserRequest struct {
	Username  string  `json:"username" validate:"notblank,max=100"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
}

func (r CreateUserRequest) ToChanges() domain.UserChanges {
	return domain.UserChanges{Username: &r.Username, Email: &r.Email, FirstName: r.FirstName, LastName: r.LastName}
}

// UpdateUserRequest payload; absent fields keep their value.
type UpdateUserRequest struct {
	Username  *string `json:"username" validate:"omitempty,notblank,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
}

func (r UpdateUserRequest) ToChanges() domain.UserChanges {
	return domain.UserChanges{Username: r.Username, Email: r.Email, FirstName: r.FirstName, LastName: r.LastName}
}

// UserResponse representation.
type UserResponse struct {
	ID        int64          `json:"id"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	FirstName *string        `json:"firstName"`
	LastName  *string        `json:"lastName"`
	CreatedAt LocalDateTime  `json:"createdAt"`
	UpdatedAt *LocalDateTime `json:"updatedAt"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: NewLocalDateTime(u.CreatedAt),
		UpdatedAt: localDateTimePtr(u.UpdatedAt),
	}
}

func NewUserResponses(users []domain.User) []UserResponse {
	return lo.Map(users, func(u domain.User, _ int) UserResponse {
		return NewUserResponse(u)
	})
}
