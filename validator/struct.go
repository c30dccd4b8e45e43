package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validatorengine "github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/golangid/wedding-collab/candihelper"
)

// StructValidatorOptionFunc type
type StructValidatorOptionFunc func(*StructValidator)

// SetCoreStructValidatorOption option func
func SetCoreStructValidatorOption(additionalConfigFunc ...func(*validatorengine.Validate)) StructValidatorOptionFunc {
	return func(v *StructValidator) {
		for _, additionalFunc := range additionalConfigFunc {
			additionalFunc(v.Validator)
		}
	}
}

// StructValidator struct
type StructValidator struct {
	Validator  *validatorengine.Validate
	translator ut.Translator
}

// NewStructValidator using go library
// https://github.com/go-playground/validator (all struct tags will be here)
// field name in error is taken from json tag, message is translated to english
func NewStructValidator(opts ...StructValidatorOptionFunc) *StructValidator {
	ve := validatorengine.New()
	ve.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	enLocale := en.New()
	translator, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(ve, translator); err != nil {
		panic("Validator: register translation: " + err.Error())
	}

	sv := &StructValidator{Validator: ve, translator: translator}
	for _, opt := range opts {
		opt(sv)
	}
	return sv
}

// ValidateStruct function
func (v *StructValidator) ValidateStruct(data interface{}) error {
	err := v.Validator.Struct(data)
	if err == nil {
		return nil
	}

	var errs validatorengine.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	multiError := candihelper.NewMultiError()
	for _, e := range errs {
		multiError.Append(strings.ToLower(e.Field()), errors.New(e.Translate(v.translator)))
	}
	return multiError
}
