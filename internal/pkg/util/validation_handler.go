package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// ValidationError DTO 校验失败
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("字段 [%s] 校验失败，规则 [%s]", e.Field, e.Tag)
}

func init() {
	validate = validator.New()
}

// ValidateDTO 校验 DTO 的 validate 标签，返回第一个失败字段的描述
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			firstError := vErrs[0]
			return &ValidationError{Field: firstError.Field(), Tag: firstError.Tag()}
		}
		return err
	}
	return nil
}
