package service

import (
	"errors"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/kakune/internal/error_values"
)

// Icons are short emoji sequences. Flags and ZWJ families take several runes.
const maxIconRunes = 8

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("not_blank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate.RegisterValidation("short_icon", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" || utf8.RuneCountInString(value) > maxIconRunes {
				return false
			}
			return strings.IndexFunc(value, unicode.IsSpace) < 0
		})
	})
}

// validateStruct joins field errors under ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}

// normalizeItemRequest trims the name and turns a blank icon into no icon.
func normalizeItemRequest(req *ItemRequest) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Icon != nil {
		icon := strings.TrimSpace(*req.Icon)
		if icon == "" {
			req.Icon = nil
		} else {
			req.Icon = &icon
		}
	}
}
