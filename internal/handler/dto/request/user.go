package request

import (
	"company-registry/internal/domain/auth"
	"company-registry/internal/usecase"
)

type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterUserRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	Password    *string `json:"password,omitempty" binding:"omitempty,min=8"`
	FirstAccess *bool   `json:"first_access,omitempty"`
}

func (r *UpdateUserRequest) ToInput() usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Email:       r.Email,
		Password:    r.Password,
		FirstAccess: r.FirstAccess,
	}
}
