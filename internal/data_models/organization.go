package dto

type CreateOrganizationRequest struct {
	Name  string `json:"name" validate:"required"`
	CNPJ  string `json:"cnpj"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// UpdateOrganizationRequest carries a partial record; nil fields are left
// untouched.
type UpdateOrganizationRequest struct {
	Name  *string `json:"name"`
	CNPJ  *string `json:"cnpj"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}
