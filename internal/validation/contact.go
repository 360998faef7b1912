package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-pipeline/internal/types"
)

var contactValidator = validator.New(validator.WithRequiredStructEnabled())

// validateContact sanitizes contact fields in place. A malformed email is
// cleared rather than rendered; contact problems never fail the resume.
func validateContact(contact *types.ContactInfo, report *Report) {
	contact.Name = clearPlaceholder(contact.Name)
	contact.Location = clearPlaceholder(contact.Location)
	contact.Links = filterTokens(contact.Links)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Phone = strings.TrimSpace(contact.Phone)

	if err := contactValidator.Struct(contact); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			for _, fieldErr := range invalid {
				if fieldErr.Field() == "Email" {
					contact.Email = ""
					report.ClearedFields = append(report.ClearedFields, "contact.email")
				}
			}
		}
	}
}
