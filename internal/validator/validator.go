// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// addressRegex matches the syntax of ledger addresses, wallet-style hex
// strings and plain names alike. Whether a name is a reserved custody account
// is decided by the services.
var addressRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]{0,127}$`)

const maxBasisPoints = 10000

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("address", validateAddress)
		_ = v.RegisterValidation("bps", validateBasisPoints)
		_ = v.RegisterValidation("asset_kind", validateAssetKind)
	}
}

func validateAddress(fl validator.FieldLevel) bool {
	return addressRegex.MatchString(fl.Field().String())
}

func validateBasisPoints(fl validator.FieldLevel) bool {
	v := fl.Field().Int()
	return v >= 0 && v <= maxBasisPoints
}

// validateAssetKind accepts the kinds that may be registered directly.
// Share assets are issued by property creation only.
func validateAssetKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "payment", "revenue":
		return true
	}
	return false
}
