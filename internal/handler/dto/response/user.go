package response

import (
	"company-registry/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FirstAccess bool   `json:"firstAccess"`
}

type RegisterResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

func FromUserView(view *readmodel.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
