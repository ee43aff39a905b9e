package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	studioerrors "github.com/alexisbeaulieu97/studio/pkg/errors"
)

// convertValidationError turns the first validator failure into a ValidationError.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return studioerrors.NewValidationError(field, describe(ve), err)
	}

	return studioerrors.NewValidationError("page", err.Error(), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "section_type":
		return fmt.Sprintf("unknown section type %q", fe.Value())
	case "component_id":
		return fmt.Sprintf("%q must be lowercase letters, digits, '-' or '_'", fe.Value())
	case "semver":
		return fmt.Sprintf("%q is not a major.minor.patch version", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

// yamlishFieldName renders Page.Sections[1].ID as sections[1].id.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForSection(index int, field string) string {
	return fmt.Sprintf("sections[%d].%s", index, field)
}
