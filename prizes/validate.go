/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package prizes

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails for an empty tag
	_ = v.RegisterValidation("ratingcategory", func(fl validator.FieldLevel) bool {
		_, err := ParseCategory(fl.Field().String())
		return err == nil
	})
	v.RegisterStructValidation(definitionRules, Definition{})

	return v
}

func definitionRules(sl validator.StructLevel) {
	d := sl.Current().Interface().(Definition)
	if d.Type == TypeCash && d.Amount <= 0 {
		sl.ReportError(d.Amount, "amount", "Amount", "cashamount", "")
	}
	if d.Position == 0 && d.RatingCategory == "" && d.Section == "" &&
		len(d.Conditions) == 0 {
		sl.ReportError(d.Position, "position", "Position", "target", "")
	}
}

// Validate checks every prize and returns one message per problem. An empty
// result means the whole catalog is usable.
func Validate(catalog []Definition) []string {
	var msgs []string
	for i, d := range catalog {
		for _, m := range validateOne(d) {
			msgs = append(msgs, fmt.Sprintf("prize %s: %s", d.label(i), m))
		}
	}
	return msgs
}

// Valid returns the prizes that pass validation, in catalog order.
func Valid(catalog []Definition) []Definition {
	var out []Definition
	for _, d := range catalog {
		if len(validateOne(d)) == 0 {
			out = append(out, d)
		}
	}
	return out
}

func validateOne(d Definition) []string {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return msgs
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s %q must be one of: %s", fe.Field(), fe.Value(),
			strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must not be negative", fe.Field())
	case "ratingcategory":
		return fmt.Sprintf("rating_category %q is not a recognized class",
			fe.Value())
	case "cashamount":
		return "cash prizes require an amount greater than 0"
	case "target":
		return "must specify at least one of position, rating_category, " +
			"section or conditions"
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
