package response

import "company-registry/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string              `json:"access_token"`
	User        *readmodel.UserView `json:"user"`
}
