package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// SetupValidator registers custom binding validators on gin's validator
// engine. Call once at startup before serving requests.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("gstin", validGSTIN)
	_ = v.RegisterValidation("pan", validPAN)
}

// validGSTIN checks the Indian GST identification number format, e.g.
// 27AABCW1234A1Z5. The checksum character is not verified.
func validGSTIN(fl validator.FieldLevel) bool {
	return gstinPattern.MatchString(fl.Field().String())
}

// validPAN checks the Indian permanent account number format, e.g.
// AABCW1234A.
func validPAN(fl validator.FieldLevel) bool {
	return panPattern.MatchString(fl.Field().String())
}
