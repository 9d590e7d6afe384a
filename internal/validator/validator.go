// Package validator holds the field and cross-field rules for every entity
// and registers the matching custom tags with Gin's binding engine.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	moodysRegex = regexp.MustCompile(`^(Aaa|Aa[1-3]|A[1-3]|Baa[1-3]|Ba[1-3]|B[1-3]|Caa[1-3]|Ca|C)?$`)
	agencyRegex = regexp.MustCompile(`^(AAA|AA[+-]?|A[+-]?|BBB[+-]?|BB[+-]?|B[+-]?|CCC[+-]?|CC|C|D)?$`)
)

// engine runs the per-field checks issued by the entity rules.
var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()
	registerCustom(v)
	return v
}

// Register registers all custom validators with the Gin binding engine and
// makes binding errors report JSON field names.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustom(v)
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func registerCustom(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("moodys", validateMoodys)
	_ = v.RegisterValidation("sp_rating", validateAgencyRating)
	_ = v.RegisterValidation("fitch_rating", validateAgencyRating)
	_ = v.RegisterValidation("password_policy", validatePasswordPolicy)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateMoodys(fl validator.FieldLevel) bool {
	return moodysRegex.MatchString(fl.Field().String())
}

func validateAgencyRating(fl validator.FieldLevel) bool {
	return agencyRegex.MatchString(fl.Field().String())
}

func validatePasswordPolicy(fl validator.FieldLevel) bool {
	return ValidPassword(fl.Field().String())
}
