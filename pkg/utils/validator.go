package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/mamonis/studio-backend/pkg/patron"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	v.RegisterValidation("patron_type", validatePatronType)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validatePatronType(fl validator.FieldLevel) bool {
	return patron.Type(fl.Field().String()).Valid()
}
