package config

import (
	"fmt"

	studioerrors "github.com/alexisbeaulieu97/studio/pkg/errors"
)

// ValidatePage performs structural and cross-section validation of a page.
func ValidatePage(page *Page) error {
	if page == nil {
		return studioerrors.NewValidationError("page", "page is nil", nil)
	}

	if err := validatorInstance().Struct(page); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(page.Sections))
	for i, section := range page.Sections {
		if first, exists := seen[section.ID]; exists {
			return studioerrors.NewValidationError(
				fieldForSection(i, "id"),
				fmt.Sprintf("duplicate section id %q (first used by sections[%d])", section.ID, first),
				nil,
			)
		}
		seen[section.ID] = i
	}

	return nil
}
