package handler

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Mohd-obaidullah/complaint-box/internal/config"
)

// registerValidators adds the custom binding rules to gin's validator
// engine. Safe to call more than once; re-registration overwrites.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("collegecode", validCollegeCode)
}

// validCollegeCode accepts 6-character codes drawn from the restricted
// alphabet, case-insensitively; normalization to uppercase happens later.
func validCollegeCode(fl validator.FieldLevel) bool {
	code := strings.ToUpper(fl.Field().String())
	if len(code) != config.CollegeCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(config.CollegeCodeAlphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
