package user

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/unidubna/portal/core"
)

var (
	capabilityTag  = "capability"
	capabilityText = "unknown capability tag"
)

// InitValidators registers the user domain's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(capabilityTag, capabilityValidation)
	core.RegisterCustomTranslation(validate, translator, capabilityTag, capabilityText)
}

// capabilityValidation only allows tags from the closed Capability enumeration.
func capabilityValidation(fl validator.FieldLevel) bool {
	return IsKnownCapability(Capability(fl.Field().String()))
}
