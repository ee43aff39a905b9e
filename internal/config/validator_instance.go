package config

import (
	"regexp"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/studio/internal/ui/sections"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	componentIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			_, err := semver.StrictNewVersion(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("component_id", func(fl validator.FieldLevel) bool {
			return componentIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("section_type", func(fl validator.FieldLevel) bool {
			return sections.Default().Has(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
