package model

import "time"

// Profile is the billing identity of an owner. Document holds a CPF or CNPJ
// as digits only; one profile exists per owner.
type Profile struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string    `gorm:"size:36;not null;uniqueIndex" json:"owner_id"`
	Email       string    `gorm:"not null" json:"email"`
	Document    string    `gorm:"not null" json:"document"`
	CompanyName string    `json:"company_name,omitempty"`
	CompanyCNPJ string    `json:"company_cnpj,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
