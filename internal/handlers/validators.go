package handlers

import (
	"sync"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding rules to gin's validator:
// isodate accepts any date form the store accepts, dueday is 1..31.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("isodate", validateISODate)
		_ = v.RegisterValidation("dueday", validateDueDay)
	})
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDay(fl.Field().String())
	return err == nil
}

func validateDueDay(fl validator.FieldLevel) bool {
	d := fl.Field().Int()
	return d >= 1 && d <= 31
}
