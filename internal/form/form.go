// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package form holds draft values for add/edit screens and validates
// them before any backend call is made.
package form

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Error keys follow the form field names so templates can look
	// them up next to the matching input.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// Errors maps form field names to validation messages.
type Errors map[string]string

// Add records a message for a field, keeping the first one.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Has reports whether the field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for a field, or "".
func (e Errors) Get(field string) string {
	return e[field]
}

// Merge copies messages from other, keeping existing ones on conflict.
func (e Errors) Merge(other Errors) {
	for field, msg := range other {
		e.Add(field, msg)
	}
}

// Valid reports whether no errors were recorded.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Validate checks a draft struct against its validate tags and returns
// field-keyed messages. The map is empty when the draft is valid.
//
// Required on a string rejects only the exact empty string; values are
// never trimmed, so whitespace-only input passes. This mirrors how the
// backend treats these fields.
func Validate(s any) Errors {
	errs := make(Errors)

	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errorsAs(err, &verrs) {
		errs.Add("form", "Invalid input")
		return errs
	}

	for _, e := range verrs {
		errs.Add(e.Field(), message(e))
	}
	return errs
}

func message(e validator.FieldError) string {
	label := fieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "eqfield":
		return "Passwords do not match"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s is invalid", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func errorsAs(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

// ParseFloat parses a numeric form value, recording an error on errs
// when the raw value is missing or not a number. Selects come in as
// strings, so parse failures count as validation failures, not bugs.
func ParseFloat(errs Errors, field, raw string) float64 {
	if raw == "" {
		errs.Add(field, fmt.Sprintf("%s is required", fieldLabel(field)))
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs.Add(field, fmt.Sprintf("%s must be a number", fieldLabel(field)))
		return 0
	}
	return v
}

// ParseInt parses an integer form value, recording an error on errs
// when the raw value is missing or not an integer.
func ParseInt(errs Errors, field, raw string) int {
	if raw == "" {
		errs.Add(field, fmt.Sprintf("%s is required", fieldLabel(field)))
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(field, fmt.Sprintf("%s must be a whole number", fieldLabel(field)))
		return 0
	}
	return v
}

// fieldLabel returns the display label for a form field name.
func fieldLabel(field string) string {
	if label, ok := labels[field]; ok {
		return label
	}
	return field
}

var labels = map[string]string{
	"userName":        "Username",
	"userPassword":    "Password",
	"userDescription": "Description",
	"userRole":        "Role",
	"newPassword":     "New password",
	"confirmPassword": "Password confirmation",

	"descAR": "Arabic description",
	"descEN": "English description",

	"ProjectDescAr":     "Arabic description",
	"ProjectDescEn":     "English description",
	"InstallmentPeriod": "Installment period",
	"DownPayment":       "Down payment",
	"ActualLocation":    "Map link",
	"LocationId":        "Location",
	"DeveloperId":       "Developer",
	"ProjectImage":      "Image",

	"UnitDescriptionAR": "Arabic description",
	"UnitDescriptionEN": "English description",
	"NumberOfBedrooms":  "Bedrooms",
	"StartingPrice":     "Starting price",
	"DeliveryDate":      "Delivery years",
	"ProjectId":         "Project",
	"CategoryId":        "Category",
	"FinishingStatusId": "Finishing",
	"UnitImage":         "Image",

	"BlogTitle":   "Title",
	"BlogContent": "Content",
	"Image":       "Image",
}
