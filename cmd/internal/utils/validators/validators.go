package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"reflect"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/utils"
	"strings"
)

// Register installs the custom rules used by the request contracts and makes
// field errors report the json name of the field.
func Register(validate *validator.Validate) {
	validate.RegisterTagNameFunc(jsonTagName)

	_ = validate.RegisterValidation("cnpj", CNPJ)
	_ = validate.RegisterValidation("nodupes", NoDupes)
	_ = validate.RegisterValidation("notblank", NotBlank)
	validate.RegisterStructValidation(AreaCoordinates, contract.AreaRequest{})
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func CNPJ(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return utils.IsCNPJValid(val)
}

// NotBlank fails empty or whitespace-only strings.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("validator 'notblank' applied to non-string type: %s", field.Kind().String())
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func NoDupes(fl validator.FieldLevel) bool {
	slice := fl.Field()
	if slice.Kind() != reflect.Slice {
		log.Warnf("validator 'nodupes' applied to non-slice type: %s", slice.Kind().String())
		return false
	}

	length := slice.Len()
	seen := make(map[any]bool, length)
	for i := 0; i < length; i++ {
		val := slice.Index(i).Interface()
		if _, exists := seen[val]; exists {
			return false
		}
		seen[val] = true
	}
	return true
}

// AreaCoordinates reports "latlonpair" on latitude when only one of the
// coordinates was sent.
func AreaCoordinates(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(contract.AreaRequest)
	if !ok {
		return
	}

	if (req.Latitude == nil) != (req.Longitude == nil) {
		sl.ReportError(req.Latitude, "latitude", "Latitude", "latlonpair", "")
	}
}
