package job

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("job not found")

// Category classifies a job posting. CategoryAll is a filter sentinel,
// never a stored value.
type Category string

const (
	CategoryAll         Category = "All"
	CategoryTechnology  Category = "Technology"
	CategoryHealthcare  Category = "Healthcare"
	CategoryEducation   Category = "Education"
	CategoryBusiness    Category = "Business"
	CategoryCreative    Category = "Creative"
	CategoryHospitality Category = "Hospitality"
)

// Categories lists the storable categories in their canonical order.
func Categories() []Category {
	return []Category{
		CategoryTechnology,
		CategoryHealthcare,
		CategoryEducation,
		CategoryBusiness,
		CategoryCreative,
		CategoryHospitality,
	}
}

func ValidCategory(c Category) bool {
	for _, v := range Categories() {
		if v == c {
			return true
		}
	}
	return false
}

const (
	StatusActive = "active"
	StatusClosed = "closed"
	StatusDraft  = "draft"
)

type CompanyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Size        string `json:"size,omitempty"`
}

type Job struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Company          string       `json:"company"`
	Location         string       `json:"location"`
	Type             string       `json:"type"`
	Salary           string       `json:"salary"`
	Description      string       `json:"description"`
	Requirements     []string     `json:"requirements"`
	Responsibilities []string     `json:"responsibilities,omitempty"`
	Benefits         []string     `json:"benefits,omitempty"`
	PostedDate       time.Time    `json:"postedDate"`
	Category         Category     `json:"category"`
	Status           string       `json:"status,omitempty"`
	CompanyInfo      *CompanyInfo `json:"companyInfo,omitempty"`
	CreatedBy        string       `json:"createdBy,omitempty"`
}
