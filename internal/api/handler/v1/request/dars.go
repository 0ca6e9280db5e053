package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/sibaq/festival-api/internal/domain"
)

type CreateDarsRequest struct {
	DarsName        string `json:"darsname"`
	DarsPlace       string `json:"darsplace"`
	Zone            string `json:"zone"`
	Slug            string `json:"slug"`
	TotalCandidates int    `json:"totalCandidates"`
}

func (req *CreateDarsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DarsName, validation.Required),
		validation.Field(&req.Zone, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Slug, validation.Length(0, 100)),
		validation.Field(&req.TotalCandidates, validation.Min(0)),
	)
}

func (req *CreateDarsRequest) ToDomain() domain.DarsEntry {
	return domain.DarsEntry{
		DarsName:        req.DarsName,
		DarsPlace:       req.DarsPlace,
		Zone:            req.Zone,
		Slug:            req.Slug,
		TotalCandidates: req.TotalCandidates,
	}
}

// UpdateDarsRequest has no darsname: the name half of the (darsname, zone)
// identity never changes after creation.
type UpdateDarsRequest struct {
	DarsPlace       string `json:"darsplace"`
	Zone            string `json:"zone"`
	Slug            string `json:"slug"`
	TotalCandidates int    `json:"totalCandidates"`
}

func (req *UpdateDarsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Zone, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Slug, validation.Length(0, 100)),
		validation.Field(&req.TotalCandidates, validation.Min(0)),
	)
}

func (req *UpdateDarsRequest) ToDomain() domain.DarsEntry {
	return domain.DarsEntry{
		DarsPlace:       req.DarsPlace,
		Zone:            req.Zone,
		Slug:            req.Slug,
		TotalCandidates: req.TotalCandidates,
	}
}
