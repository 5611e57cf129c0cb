package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct runs validator.v10 over a request DTO and renders a 422
// with a field -> messages map on failure. Returns nil on success.
func ValidateStruct(c *fiber.Ctx, req any) error {
	if err := validate.Struct(req); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return JsonError(c, fiber.StatusBadRequest, "Invalid input")
		}
		fieldErrors := map[string][]string{}
		for _, fe := range ve {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
		}
		return JsonValidationError(c, fieldErrors)
	}
	return nil
}
