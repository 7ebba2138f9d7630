package services

import (
	"fmt"

	pkgvalidator "github.com/ghuser/namesort/pkg/validator"
	namesdomain "github.com/ghuser/namesort/services/names/domain"
	"github.com/ghuser/namesort/services/names/domain/models"
)

type nameFields struct {
	GivenNames []string `json:"given_names" validate:"min=1,max=3,dive,required,validutf8"`
	LastName   string   `json:"last_name"   validate:"required,validutf8"`
}

// ValidateName enforces business rules for a Name beyond the structural
// constraints enforced by models.ParseName (2 to 4 non-empty parts).
//
// Parts may hold any character except the separating space, including tabs
// and non-breaking spaces, but must be well-formed UTF-8.
func ValidateName(name models.Name) error {
	fields := nameFields{
		GivenNames: name.GivenNames(),
		LastName:   name.LastName(),
	}
	if err := pkgvalidator.Validate(fields); err != nil {
		return fmt.Errorf("%w: %q: %s", namesdomain.ErrInvalidFormat, name.String(), pkgvalidator.Summary(err))
	}
	return nil
}
