package lease

import (
	"time"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
)

// LeaseRequest represents the input for creating or updating a lease.
type LeaseRequest struct {
	ContractNumber string    `json:"contract_number" form:"contract_number" binding:"required,max=30"`
	PropertyID     uint      `json:"property_id" form:"property_id" binding:"required"`
	TenantID       uint      `json:"tenant_id" form:"tenant_id" binding:"required"`
	StartDate      time.Time `json:"start_date" form:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" form:"end_date" binding:"required"`
	MonthlyRent    float64   `json:"monthly_rent" form:"monthly_rent" binding:"required,gt=0"`
	DueDay         int       `json:"due_day" form:"due_day" binding:"required,min=1,max=31"`
}

func (r *LeaseRequest) toModel() *domain.Lease {
	return &domain.Lease{
		ContractNumber: r.ContractNumber,
		PropertyID:     r.PropertyID,
		TenantID:       r.TenantID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		MonthlyRent:    r.MonthlyRent,
		DueDay:         r.DueDay,
	}
}
