package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(entity.DateLayout, fl.Field().String())
			return err == nil
		})
		validate.RegisterValidation("part_id", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return false
			}
			for _, char := range value {
				// Lowercase letters, digits and underscore only
				if (char < 'a' || char > 'z') && (char < '0' || char > '9') && char != '_' {
					return false
				}
			}
			return true
		})
	})
}

// validateRequest runs struct validation and folds field errors into one
// ErrInvalidArgument.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = fmt.Errorf("%w: validation error", errorvalues.ErrInvalidArgument)
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return fmt.Errorf("%w: validation unexpected error: %s", errorvalues.ErrInvalidArgument, err.Error())
}
