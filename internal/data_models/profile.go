package dto

type UpsertProfileRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Document    string `json:"document" validate:"required"`
	CompanyName string `json:"company_name"`
	CompanyCNPJ string `json:"company_cnpj"`
	Phone       string `json:"phone"`
}
