package dto

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
)

// Tags de validação customizadas usadas nos bindings dos DTOs

// RegisterCustomValidators registra as validações de enum no engine do Gin
// Chamado uma vez no bootstrap, antes de montar as rotas.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}
	return RegisterEnumValidations(v)
}

// RegisterEnumValidations registra as validações de enum em um validador
func RegisterEnumValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("feedback_category", func(fl validator.FieldLevel) bool {
		return entities.FeedbackCategory(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}

	return v.RegisterValidation("feedback_status", func(fl validator.FieldLevel) bool {
		return entities.FeedbackStatus(fl.Field().String()).IsValid()
	})
}
