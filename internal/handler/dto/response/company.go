package response

import (
	"time"

	"company-registry/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromCompanyView(view *readmodel.CompanyView) *CompanyResponse {
	var resp CompanyResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCompanyViews(views []*readmodel.CompanyView) []*CompanyResponse {
	resp := make([]*CompanyResponse, len(views))
	for i, view := range views {
		resp[i] = FromCompanyView(view)
	}
	return resp
}
