package tenant

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases name and collapses every run of other characters into '-'
func Slugify(name string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-")
}

// Application is what a prospective vendor submits
type Application struct {
	Name     string
	Phone    string
	CRNumber string
	Address  string
	Email    string
}

func (a Application) normalized() Application {
	return Application{
		Name:     strings.TrimSpace(a.Name),
		Phone:    strings.TrimSpace(a.Phone),
		CRNumber: strings.TrimSpace(a.CRNumber),
		Address:  strings.TrimSpace(a.Address),
		Email:    strings.ToLower(strings.TrimSpace(a.Email)),
	}
}

func (a Application) Validate() error {
	n := a.normalized()
	if n.Name == "" || n.Phone == "" || n.CRNumber == "" || n.Address == "" {
		return ErrMissingFields
	}
	return nil
}

// Settings is a partial update of the vendor's public contact details
type Settings struct {
	WhatsappNumber *string
	Address        *string
	Email          *string
	LogoURL        *string
	City           *string
}
