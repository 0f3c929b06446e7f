package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var worksheetNameValidRegex = regexp.MustCompile(`^[\p{L}\p{N} +\-_.,'()#/&]*$`)

func worksheetNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	if strings.TrimSpace(val) != val {
		return false
	}

	return worksheetNameValidRegex.MatchString(val)
}
