package request

import (
	"company-registry/internal/usecase"
)

type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	CNPJ    string `json:"cnpj" binding:"required"`
	Address string `json:"address" binding:"required,min=1,max=255"`
	Phone   string `json:"phone" binding:"required,min=1,max=255"`
	Email   string `json:"email" binding:"required,email"`
}

func (r *CreateCompanyRequest) ToInput() usecase.CreateCompanyInput {
	return usecase.CreateCompanyInput{
		Name:    r.Name,
		CNPJ:    r.CNPJ,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

type UpdateCompanyRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	CNPJ    *string `json:"cnpj,omitempty"`
	Address *string `json:"address,omitempty" binding:"omitempty,min=1,max=255"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,min=1,max=255"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
}

func (r *UpdateCompanyRequest) ToInput() usecase.UpdateCompanyInput {
	return usecase.UpdateCompanyInput{
		Name:    r.Name,
		CNPJ:    r.CNPJ,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}
