package utils

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate        *validator.Validate
	languagePattern = regexp.MustCompile(constvars.RegexLanguageToken)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("calendar_date", validateCalendarDate)
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterValidation("language", validateLanguage)
	validate.RegisterStructValidation(validateTimeIntervalOrder, requests.TimeInterval{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateClock(fl validator.FieldLevel) bool {
	return IsValidClock(fl.Field().String())
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := ParseCalendarDate(fl.Field().String())
	return err == nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, ok := models.ParseWeekday(fl.Field().String())
	return ok
}

func validateLanguage(fl validator.FieldLevel) bool {
	return languagePattern.MatchString(fl.Field().String())
}

// Intervals never wrap past midnight, so the end must sort after the start.
func validateTimeIntervalOrder(sl validator.StructLevel) {
	interval := sl.Current().Interface().(requests.TimeInterval)
	if !IsValidClock(interval.StartTime) || !IsValidClock(interval.EndTime) {
		return
	}
	if interval.EndTime <= interval.StartTime {
		sl.ReportError(interval.EndTime, "endTime", "EndTime", "clock_order", "")
	}
}
