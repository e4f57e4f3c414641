package catalog

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fastygo/catalog/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		panic(fmt.Sprintf("register finite validation: %v", err))
	}
	return v
}

const (
	msgName  = "the 'name' field is required and must be a non-empty string"
	msgPrice = "the 'price' field is required and must be a number >= 0"
)

var fieldMessages = map[string]string{
	"name":  msgName,
	"price": msgPrice,
}

// RestaurantInput is a create-restaurant request after shape checks.
type RestaurantInput struct {
	Name string `json:"name" validate:"required"`
}

// DishInput is an add-dish request after shape checks.
type DishInput struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"finite,gte=0"`
}

// ParseRestaurant checks a raw decoded JSON body. name must be a string
// that is non-empty once trimmed.
func ParseRestaurant(name any) (RestaurantInput, error) {
	s, ok := name.(string)
	if !ok {
		return RestaurantInput{}, domain.NewFieldError("name", msgName)
	}
	in := RestaurantInput{Name: strings.TrimSpace(s)}
	if err := checkStruct(in); err != nil {
		return RestaurantInput{}, err
	}
	return in, nil
}

// ParseDish checks a raw decoded JSON body. price must be a JSON number,
// so numeric strings are rejected.
func ParseDish(name, price any) (DishInput, error) {
	s, ok := name.(string)
	if !ok {
		return DishInput{}, domain.NewFieldError("name", msgName)
	}
	p, ok := price.(float64)
	if !ok {
		return DishInput{}, domain.NewFieldError("price", msgPrice)
	}
	in := DishInput{Name: strings.TrimSpace(s), Price: p}
	if err := checkStruct(in); err != nil {
		return DishInput{}, err
	}
	return in, nil
}

// ValidateID trims an identifier taken from a path segment or query
// parameter and rejects it when nothing is left.
func ValidateID(field, raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", domain.NewFieldError(field, "the '"+field+"' id is not valid")
	}
	return id, nil
}

func checkStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Field()
		msg, ok := fieldMessages[field]
		if !ok {
			msg = "the '" + field + "' field is not valid"
		}
		return domain.NewFieldError(field, msg)
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
}
