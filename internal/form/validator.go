// Package form binds submitted HTML forms, validates them with
// go-playground/validator and maps them onto model records.
package form

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/fyyur/internal/model"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// phonePattern accepts North American numbers such as 217-555-0100,
// (217) 555.0100 or +2175550100.
var phonePattern = regexp.MustCompile(`^[\+]?[(]?[0-9]{3}[)]?[-\s\.]?[0-9]{3}[-\s\.]?[0-9]{4,6}$`)

// Errors maps a form field name to its first validation message.
type Errors map[string]string

// Error joins the messages in field order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = e[f]
	}
	return strings.Join(msgs, "; ")
}

// getValidator returns the shared validator with the form tags registered.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their form name, e.g. "facebook_link".
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		mustRegister("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		mustRegister("genre", func(fl validator.FieldLevel) bool {
			return model.Genre(fl.Field().String()).Valid()
		})
		mustRegister("state", func(fl validator.FieldLevel) bool {
			return model.State(fl.Field().String()).Valid()
		})
		mustRegister("showtime", func(fl validator.FieldLevel) bool {
			_, err := ParseStartTime(fl.Field().String())
			return err == nil
		})
		mustRegister("id", func(fl validator.FieldLevel) bool {
			n, err := strconv.ParseUint(fl.Field().String(), 10, 64)
			return err == nil && n > 0
		})
	})
	return validate
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("form: register %q: %v", tag, err))
	}
}

// check validates s and collects one message per field.  It returns nil
// when s is valid.
func check(s any) Errors {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"form": err.Error()}
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i] // genres[2] -> genres
		}
		if _, seen := out[field]; !seen {
			out[field] = translateError(field, fe)
		}
	}
	return out
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"url":      "%s must be a valid URL",
	"phone":    "%s must be a valid phone number, e.g. 217-555-0100",
	"genre":    "%s must only contain listed genres",
	"state":    "%s must be a valid state code",
	"showtime": "%s must look like 2026-05-21 21:30:00",
	"id":       "%s must be a positive id",
}

func translateError(field string, fe validator.FieldError) string {
	if tmpl, ok := errorMessageTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s needs at least %s value(s)", field, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s allows at most %s value(s)", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// checked interprets a checkbox value.  Browsers send "y" or "on" for a
// ticked box and nothing otherwise.
func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "false", "0", "off", "n", "no":
		return false
	}
	return true
}

func checkbox(b bool) string {
	if b {
		return "y"
	}
	return ""
}
