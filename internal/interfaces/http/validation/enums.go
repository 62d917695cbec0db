package validation

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "propflow/internal/domain/ticket/valueobjects"
)

// RegisterEnumValidators installs the closed enum checks referenced by the
// request DTO binding tags. Must run once before the router starts serving.
func RegisterEnumValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	validators := map[string][]string{
		"ticket_category": vo.CategoryValues(),
		"ticket_priority": vo.PriorityValues(),
		"ticket_status":   vo.StatusValues(),
	}

	for tag, values := range validators {
		if err := v.RegisterValidation(tag, oneOf(values)); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

func oneOf(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, v := range values {
			if s == v {
				return true
			}
		}
		return false
	}
}
