package property

import "github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"

// AddressRequest represents one postal address in a property payload.
type AddressRequest struct {
	ZipCode    string `json:"zip_code" form:"zip_code" binding:"max=20"`
	Street     string `json:"street" form:"street" binding:"required,max=255"`
	Number     string `json:"number" form:"number" binding:"max=20"`
	Complement string `json:"complement" form:"complement" binding:"max=255"`
	District   string `json:"district" form:"district" binding:"max=100"`
	City       string `json:"city" form:"city" binding:"required,max=100"`
	State      string `json:"state" form:"state" binding:"required,len=2"`
}

// ValueRequest represents one set of monetary figures in a property payload.
type ValueRequest struct {
	PurchaseValue float64 `json:"purchase_value" binding:"min=0"`
	RentalValue   float64 `json:"rental_value" binding:"min=0"`
	CondoFee      float64 `json:"condo_fee" binding:"min=0"`
	PropertyTax   float64 `json:"property_tax" binding:"min=0"`
}

// PropertyRequest represents the input for creating or updating a property.
// On multipart requests the same shape arrives split across the propertyData,
// addressData, and valuesData form fields.
type PropertyRequest struct {
	InternalCode string           `json:"internal_code" binding:"max=30"`
	Title        string           `json:"title" binding:"required,min=2,max=150"`
	Description  string           `json:"description" binding:"max=1000"`
	Bedrooms     int              `json:"bedrooms" binding:"min=0"`
	Bathrooms    int              `json:"bathrooms" binding:"min=0"`
	GarageSpaces int              `json:"garage_spaces" binding:"min=0"`
	AreaM2       float64          `json:"area_m2" binding:"min=0"`
	TypeID       uint             `json:"type_id" binding:"required"`
	OwnerID      uint             `json:"owner_id" binding:"required"`
	AgencyID     uint             `json:"agency_id"`
	Addresses    []AddressRequest `json:"addresses" binding:"dive"`
	Values       []ValueRequest   `json:"values" binding:"dive"`
}

func (r *PropertyRequest) toModel() *domain.Property {
	property := &domain.Property{
		InternalCode: r.InternalCode,
		Title:        r.Title,
		Description:  r.Description,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		GarageSpaces: r.GarageSpaces,
		AreaM2:       r.AreaM2,
		TypeID:       r.TypeID,
		OwnerID:      r.OwnerID,
		AgencyID:     r.AgencyID,
	}
	for _, a := range r.Addresses {
		property.Addresses = append(property.Addresses, domain.Address{
			ZipCode:    a.ZipCode,
			Street:     a.Street,
			Number:     a.Number,
			Complement: a.Complement,
			District:   a.District,
			City:       a.City,
			State:      a.State,
		})
	}
	for _, v := range r.Values {
		property.Values = append(property.Values, domain.PropertyValue{
			PurchaseValue: v.PurchaseValue,
			RentalValue:   v.RentalValue,
			CondoFee:      v.CondoFee,
			PropertyTax:   v.PropertyTax,
		})
	}
	return property
}
