// Package errors defines the typed errors raised while loading pages, themes and sections.
package errors

import (
	"fmt"
)

// ParseError reports a page document that could not be read or decoded. Line is the
// 1-based line of the offending node, or 0 when unknown.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	where := e.Path
	if e.Line > 0 {
		where = fmt.Sprintf("%s line %d", e.Path, e.Line)
	}
	return fmt.Sprintf("page %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a page field that decoded but holds an unacceptable value.
// Field uses the document's own key path, such as sections[1].id.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return "invalid page: " + e.Message
	}
	return fmt.Sprintf("invalid page field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ThemeError reports a theme file that could not be read or decoded.
// Table is empty when the failure concerns the whole file.
type ThemeError struct {
	Path  string
	Table string
	Err   error
}

// NewThemeError constructs a ThemeError.
func NewThemeError(path, table string, err error) error {
	return &ThemeError{Path: path, Table: table, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Table != "" {
		return fmt.Sprintf("theme error: %s [%s]: %v", e.Path, e.Table, e.Err)
	}
	return fmt.Sprintf("theme error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SectionError indicates a section that could not be constructed from its props.
type SectionError struct {
	Type    string
	ID      string
	Message string
	Err     error
}

// NewSectionError constructs a SectionError for the given section type and id.
func NewSectionError(sectionType, id string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &SectionError{Type: sectionType, ID: id, Message: message, Err: err}
}

func (e *SectionError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("section error [%s %s]: %s", e.Type, e.ID, e.Message)
	}
	return fmt.Sprintf("section error [%s]: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying error.
func (e *SectionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
