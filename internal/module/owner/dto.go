package owner

import "github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"

// AddressRequest represents one postal address in an owner payload.
type AddressRequest struct {
	ZipCode    string `json:"zip_code" form:"zip_code" binding:"max=20"`
	Street     string `json:"street" form:"street" binding:"required,max=255"`
	Number     string `json:"number" form:"number" binding:"max=20"`
	Complement string `json:"complement" form:"complement" binding:"max=255"`
	District   string `json:"district" form:"district" binding:"max=100"`
	City       string `json:"city" form:"city" binding:"required,max=100"`
	State      string `json:"state" form:"state" binding:"required,len=2"`
}

// ContactRequest represents one contact in an owner payload.
type ContactRequest struct {
	Name     string `json:"name" form:"name" binding:"max=100"`
	Phone    string `json:"phone" form:"phone" binding:"max=30"`
	Email    string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Whatsapp string `json:"whatsapp" form:"whatsapp" binding:"max=30"`
}

// OwnerRequest represents the input for creating or updating an owner.
type OwnerRequest struct {
	Name          string           `json:"name" form:"name" binding:"required,min=2,max=100"`
	InternalCode  string           `json:"internal_code" form:"internal_code" binding:"max=30"`
	CPF           string           `json:"cpf" form:"cpf" binding:"max=14"`
	Occupation    string           `json:"occupation" form:"occupation" binding:"max=100"`
	MaritalStatus string           `json:"marital_status" form:"marital_status" binding:"max=30"`
	Addresses     []AddressRequest `json:"addresses" binding:"dive"`
	Contacts      []ContactRequest `json:"contacts" binding:"dive"`
}

func (r *OwnerRequest) toModel() *domain.Owner {
	owner := &domain.Owner{
		Name:          r.Name,
		InternalCode:  r.InternalCode,
		CPF:           r.CPF,
		Occupation:    r.Occupation,
		MaritalStatus: r.MaritalStatus,
	}
	for _, a := range r.Addresses {
		owner.Addresses = append(owner.Addresses, domain.Address{
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
		owner.Contacts = append(owner.Contacts, domain.Contact{
			Name:     ct.Name,
			Phone:    ct.Phone,
			Email:    ct.Email,
			Whatsapp: ct.Whatsapp,
		})
	}
	return owner
}
