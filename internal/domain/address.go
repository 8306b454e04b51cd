package domain

// Address is a postal address shared by agencies, owners, tenants, and
// properties through per-resource join tables.
type Address struct {
	BaseModel
	ZipCode    string `gorm:"size:20" json:"zip_code"`
	Street     string `gorm:"size:255" json:"street"`
	Number     string `gorm:"size:20" json:"number"`
	Complement string `gorm:"size:255" json:"complement,omitempty"`
	District   string `gorm:"size:100" json:"district"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:2" json:"state"`
}

// Contact is a phone/email contact shared by agencies, owners, and tenants
// through per-resource join tables.
type Contact struct {
	BaseModel
	Name     string `gorm:"size:100" json:"name,omitempty"`
	Phone    string `gorm:"size:30" json:"phone"`
	Email    string `gorm:"size:255" json:"email"`
	Whatsapp string `gorm:"size:30" json:"whatsapp,omitempty"`
}

// ContactSuggestion is a distinct contact row surfaced by autocomplete
// endpoints.
type ContactSuggestion struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
