package agency

import "github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"

// AddressRequest represents one postal address in an agency payload.
type AddressRequest struct {
	ZipCode    string `json:"zip_code" form:"zip_code" binding:"max=20"`
	Street     string `json:"street" form:"street" binding:"required,max=255"`
	Number     string `json:"number" form:"number" binding:"max=20"`
	Complement string `json:"complement" form:"complement" binding:"max=255"`
	District   string `json:"district" form:"district" binding:"max=100"`
	City       string `json:"city" form:"city" binding:"required,max=100"`
	State      string `json:"state" form:"state" binding:"required,len=2"`
}

// ContactRequest represents one contact in an agency payload.
type ContactRequest struct {
	Name     string `json:"name" form:"name" binding:"max=100"`
	Phone    string `json:"phone" form:"phone" binding:"max=30"`
	Email    string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Whatsapp string `json:"whatsapp" form:"whatsapp" binding:"max=30"`
}

// AgencyRequest represents the input for creating or updating an agency.
type AgencyRequest struct {
	Name      string           `json:"name" form:"name" binding:"required,min=2,max=100"`
	TradeName string           `json:"trade_name" form:"trade_name" binding:"max=100"`
	CNPJ      string           `json:"cnpj" form:"cnpj" binding:"max=18"`
	Addresses []AddressRequest `json:"addresses" binding:"dive"`
	Contacts  []ContactRequest `json:"contacts" binding:"dive"`
}

func (r *AgencyRequest) toModel() *domain.Agency {
	agency := &domain.Agency{
		Name:      r.Name,
		TradeName: r.TradeName,
		CNPJ:      r.CNPJ,
	}
	for _, a := range r.Addresses {
		agency.Addresses = append(agency.Addresses, domain.Address{
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
		agency.Contacts = append(agency.Contacts, domain.Contact{
			Name:     ct.Name,
			Phone:    ct.Phone,
			Email:    ct.Email,
			Whatsapp: ct.Whatsapp,
		})
	}
	return agency
}
