package cli

import (
	"errors"

	"github.com/alexanderramin/planhub/internal/domain"
	"github.com/charmbracelet/huh"
)

// requiredInput returns a huh.Input that rejects blank values.
func requiredInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateRequired)
}

func validateRequired(s string) error {
	if domain.IsBlank(s) {
		return errors.New("此欄位為必填")
	}
	return nil
}
