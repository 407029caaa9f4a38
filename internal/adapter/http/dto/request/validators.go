package request

import (
	"sync"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/domain/sepa"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the iban, bic, period and creditorid tags to gin's
// validator engine.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("iban", func(fl validator.FieldLevel) bool {
			return sepa.ValidateIBAN(fl.Field().String()) == nil
		})
		_ = v.RegisterValidation("bic", func(fl validator.FieldLevel) bool {
			return sepa.ValidateBIC(fl.Field().String()) == nil
		})
		_ = v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
			return entities.ValidPeriod(fl.Field().String())
		})
		_ = v.RegisterValidation("creditorid", func(fl validator.FieldLevel) bool {
			return sepa.ValidateCreditorID(fl.Field().String()) == nil
		})
	})
}
