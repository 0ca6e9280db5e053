package domain

import "time"

// Category is the competition tier a candidate competes in.
const (
	CategoryJunior = "JUNIOR"
	CategorySenior = "SENIOR"
)

// Candidate is a festival participant registered under a dars.
// Code is unique and never changes after creation.
type Candidate struct {
	ID        uint   `json:"id"`
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

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Slots returns the ten assignment-slot values in their canonical scan order.
func (c Candidate) Slots() []string {
	return []string{
		c.OffStage1, c.OffStage2, c.OffStage3,
		c.Stage1, c.Stage2, c.Stage3,
		c.GroupStage1, c.GroupStage2, c.GroupStage3,
		c.GroupOffStage,
	}
}
