package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/sibaq/festival-api/internal/domain"
)

type ProgramRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (req *ProgramRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Category, validation.Required,
			validation.In(domain.CategoryJunior, domain.CategorySenior)),
		validation.Field(&req.Type, validation.Required,
			validation.In(domain.ProgramTypeStage, domain.ProgramTypeOffStage, domain.ProgramTypeGroup)),
	)
}

func (req *ProgramRequest) ToDomain() domain.Program {
	return domain.Program{
		Name:        req.Name,
		Category:    req.Category,
		Type:        req.Type,
		Description: req.Description,
	}
}
