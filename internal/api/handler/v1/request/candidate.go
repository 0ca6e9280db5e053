package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/sibaq/festival-api/internal/domain"
)

type CreateCandidateRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	DarsName  string `json:"darsname"`
	DarsPlace string `json:"darsplace"`
	Zone      string `json:"zone"`
	Slug      string `json:"slug"`
	Category  string `json:"category"`

	Stage1        string `json:"stage1"`
	Stage2        string `json:"stage2"`
	Stage3        string `json:"stage3"`
	GroupStage1   string `json:"groupstage1"`
	GroupStage2   string `json:"groupstage2"`
	GroupStage3   string `json:"groupstage3"`
	OffStage1     string `json:"offstage1"`
	OffStage2     string `json:"offstage2"`
	OffStage3     string `json:"offstage3"`
	GroupOffStage string `json:"groupoffstage"`
}

func (req *CreateCandidateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Length(1, 10)),
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.DarsName, validation.Required),
		validation.Field(&req.Zone, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Slug, validation.Length(0, 100)),
		validation.Field(&req.Category, validation.Required,
			validation.In(domain.CategoryJunior, domain.CategorySenior)),
	)
}

func (req *CreateCandidateRequest) ToDomain() domain.Candidate {
	return domain.Candidate{
		Code:          req.Code,
		Name:          req.Name,
		DarsName:      req.DarsName,
		DarsPlace:     req.DarsPlace,
		Zone:          req.Zone,
		Slug:          req.Slug,
		Category:      req.Category,
		Stage1:        req.Stage1,
		Stage2:        req.Stage2,
		Stage3:        req.Stage3,
		GroupStage1:   req.GroupStage1,
		GroupStage2:   req.GroupStage2,
		GroupStage3:   req.GroupStage3,
		OffStage1:     req.OffStage1,
		OffStage2:     req.OffStage2,
		OffStage3:     req.OffStage3,
		GroupOffStage: req.GroupOffStage,
	}
}

// UpdateCandidateRequest carries no code field: the code is fixed at
// registration and update payloads cannot change it.
type UpdateCandidateRequest struct {
	Name      string `json:"name"`
	DarsName  string `json:"darsname"`
	DarsPlace string `json:"darsplace"`
	Zone      string `json:"zone"`
	Slug      string `json:"slug"`
	Category  string `json:"category"`

	Stage1        string `json:"stage1"`
	Stage2        string `json:"stage2"`
	Stage3        string `json:"stage3"`
	GroupStage1   string `json:"groupstage1"`
	GroupStage2   string `json:"groupstage2"`
	GroupStage3   string `json:"groupstage3"`
	OffStage1     string `json:"offstage1"`
	OffStage2     string `json:"offstage2"`
	OffStage3     string `json:"offstage3"`
	GroupOffStage string `json:"groupoffstage"`
}

func (req *UpdateCandidateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.DarsName, validation.Required),
		validation.Field(&req.Zone, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Slug, validation.Length(0, 100)),
		validation.Field(&req.Category, validation.Required,
			validation.In(domain.CategoryJunior, domain.CategorySenior)),
	)
}

func (req *UpdateCandidateRequest) ToDomain() domain.Candidate {
	return domain.Candidate{
		Name:          req.Name,
		DarsName:      req.DarsName,
		DarsPlace:     req.DarsPlace,
		Zone:          req.Zone,
		Slug:          req.Slug,
		Category:      req.Category,
		Stage1:        req.Stage1,
		Stage2:        req.Stage2,
		Stage3:        req.Stage3,
		GroupStage1:   req.GroupStage1,
		GroupStage2:   req.GroupStage2,
		GroupStage3:   req.GroupStage3,
		OffStage1:     req.OffStage1,
		OffStage2:     req.OffStage2,
		OffStage3:     req.OffStage3,
		GroupOffStage: req.GroupOffStage,
	}
}
