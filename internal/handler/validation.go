package handler

import (
	"squadhr/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the enum tags used by request bodies to gin's
// validator. Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	rules := map[string]validator.Func{
		"recruitment_status": func(fl validator.FieldLevel) bool {
			return model.RecruitmentStatus(fl.Field().String()).Valid()
		},
		"request_type": func(fl validator.FieldLevel) bool {
			return model.RequestType(fl.Field().String()).Valid()
		},
		"request_resolution": func(fl validator.FieldLevel) bool {
			return model.RequestStatus(fl.Field().String()).Resolution()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
