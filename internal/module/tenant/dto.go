package tenant

import "github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"

// AddressRequest represents one postal address in a tenant payload.
type AddressRequest struct {
	ZipCode    string `json:"zip_code" form:"zip_code" binding:"max=20"`
	Street     string `json:"street" form:"street" binding:"required,max=255"`
	Number     string `json:"number" form:"number" binding:"max=20"`
	Complement string `json:"complement" form:"complement" binding:"max=255"`
	District   string `json:"district" form:"district" binding:"max=100"`
	City       string `json:"city" form:"city" binding:"required,max=100"`
	State      string `json:"state" form:"state" binding:"required,len=2"`
}

// ContactRequest represents one contact in a tenant payload.
type ContactRequest struct {
	Name     string `json:"name" form:"name" binding:"max=100"`
	Phone    string `json:"phone" form:"phone" binding:"max=30"`
	Email    string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Whatsapp string `json:"whatsapp" form:"whatsapp" binding:"max=30"`
}

// TenantRequest represents the input for creating or updating a tenant.
// A tenant carries either a CPF (person) or a CNPJ (company).
type TenantRequest struct {
	Name          string           `json:"name" form:"name" binding:"required,min=2,max=100"`
	InternalCode  string           `json:"internal_code" form:"internal_code" binding:"max=30"`
	CPF           string           `json:"cpf" form:"cpf" binding:"max=14"`
	CNPJ          string           `json:"cnpj" form:"cnpj" binding:"max=18"`
	Occupation    string           `json:"occupation" form:"occupation" binding:"max=100"`
	MaritalStatus string           `json:"marital_status" form:"marital_status" binding:"max=30"`
	Addresses     []AddressRequest `json:"addresses" binding:"dive"`
	Contacts      []ContactRequest `json:"contacts" binding:"dive"`
}

func (r *TenantRequest) toModel() *domain.Tenant {
	tenant := &domain.Tenant{
		Name:          r.Name,
		InternalCode:  r.InternalCode,
		CPF:           r.CPF,
		CNPJ:          r.CNPJ,
		Occupation:    r.Occupation,
		MaritalStatus: r.MaritalStatus,
	}
	for _, a := range r.Addresses {
		tenant.Addresses = append(tenant.Addresses, domain.Address{
			ZipCode:    a.ZipCode,
			Street:     a.Street,
			Number:     a.Number,
			Complement: a.Complement,
			District:   a.District,
			City:       a.City,
			State:      a.State,
		})
	}
	for _, ct := range r.Contacts {
		tenant.Contacts = append(tenant.Contacts, domain.Contact{
			Name:     ct.Name,
			Phone:    ct.Phone,
			Email:    ct.Email,
			Whatsapp: ct.Whatsapp,
		})
	}
	return tenant
}
