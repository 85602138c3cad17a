package validator

import (
	"fmt"
	"regexp"
	"time"

	playground "github.com/go-playground/validator/v10"

	"campsite/constants"
	"campsite/dto"
	"campsite/errors"
	"campsite/models"
)

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	// DTOs carry their rules in `binding` tags, same as gin would read.
	v.SetTagName("binding")
	return v
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Struct runs the tag-based validation and converts the first failure into
// a field error with the German message format.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(playground.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return errors.NewBadRequest(errors.ErrCodeRequiredField,
				fmt.Sprintf("Feld '%s' ist erforderlich.", fe.Field()))
		case "email":
			return errors.NewBadRequest(errors.ErrCodeInvalidFormat,
				fmt.Sprintf("Feld '%s' muss eine gültige E-Mail sein.", fe.Field()))
		case "min":
			return errors.NewBadRequest(errors.ErrCodeValidation,
				fmt.Sprintf("Feld '%s' muss mindestens %s Zeichen haben.", fe.Field(), fe.Param()))
		case "gt", "gte":
			return errors.NewBadRequest(errors.ErrCodeValidation,
				fmt.Sprintf("Feld '%s' muss mindestens %s sein.", fe.Field(), fe.Param()))
		}
		return errors.NewBadRequest(errors.ErrCodeValidation,
			fmt.Sprintf("Feld '%s' ist ungültig.", fe.Field()))
	}

	return errors.NewBadRequest(errors.ErrCodeValidation, "Ungültige Eingabe.")
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateBookingStatus accepts only the five known status values.
func ValidateBookingStatus(status string) error {
	if !constants.IsValidBookingStatus(status) {
		return errors.NewBadRequest(errors.ErrCodeInvalidStatus,
			fmt.Sprintf("Ungültiger Status '%s'.", status))
	}
	return nil
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func ParseDate(field, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NewBadRequest(errors.ErrCodeInvalidFormat,
		fmt.Sprintf("Feld '%s' hat ein ungültiges Datumsformat.", field))
}

// BookingAreaFits reports whether the items' total area fits the place.
// Advisory only: the API deliberately does not enforce this (clients
// validate before submit), callers may opt in.
func BookingAreaFits(place models.CampingPlace, items []dto.BookingItemRequest, sizes map[uint]float64) bool {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * sizes[it.CampingItemID]
	}
	return total <= place.Size
}
