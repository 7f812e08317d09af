package preference

import (
	"errors"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

const (
	LanguageArabic  = "ar"
	LanguageEnglish = "en"
)

var ErrInvalidLanguage = errors.New("language must be ar or en")

type Preferences struct {
	Language string `json:"language"`
	DarkMode bool   `json:"darkMode"`
}

type UpdateRequest struct {
	Language *string `json:"language,omitempty"`
	DarkMode *bool   `json:"darkMode,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	if r.Language != nil && *r.Language != LanguageArabic && *r.Language != LanguageEnglish {
		return validator.ValidationErrors{{Field: "language", Message: ErrInvalidLanguage.Error()}}
	}
	return nil
}
