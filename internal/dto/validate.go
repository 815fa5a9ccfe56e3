package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/employee-tracker/internal/domain"
)

var validate = validator.New()

// maxSalary соответствует столбцу numeric(10,2)
var maxSalary = decimal.New(1, 8)

// Validate проверяет запрос по тегам validate и возвращает *domain.ValidationError
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &domain.ValidationError{Field: fe.Field(), Message: describe(fe.Tag(), fe.Param())}
	}
	return &domain.ValidationError{Message: err.Error()}
}

// FieldValidator возвращает функцию проверки ответа на текстовый вопрос.
// Ответ обрезается по краям перед проверкой.
func FieldValidator(field, tag string) func(string) error {
	return func(answer string) error {
		err := validate.Var(strings.TrimSpace(answer), tag)
		if err == nil {
			return nil
		}

		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &domain.ValidationError{Field: field, Message: describe(fieldErrs[0].Tag(), fieldErrs[0].Param())}
		}
		return &domain.ValidationError{Field: field, Message: err.Error()}
	}
}

// ParseSalary разбирает строку в положительную сумму с точностью до копеек
func ParseSalary(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, &domain.ValidationError{Field: "salary", Message: "must be provided"}
	}

	salary, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &domain.ValidationError{Field: "salary", Message: "must be a number"}
	}
	if err := ValidateSalary(salary); err != nil {
		return decimal.Zero, err
	}
	return salary, nil
}

// ValidateSalary проверяет, что зарплата положительна и помещается в столбец
func ValidateSalary(salary decimal.Decimal) error {
	if !salary.IsPositive() {
		return &domain.ValidationError{Field: "salary", Message: "must be greater than zero"}
	}
	if salary.GreaterThanOrEqual(maxSalary) {
		return &domain.ValidationError{Field: "salary", Message: fmt.Sprintf("must be less than %s", maxSalary.String())}
	}
	if !salary.Equal(salary.Round(2)) {
		return &domain.ValidationError{Field: "salary", Message: "must have at most two decimal places"}
	}
	return nil
}

func describe(tag, param string) string {
	switch tag {
	case "required":
		return "cannot be empty"
	case "max":
		return fmt.Sprintf("must be at most %s characters", param)
	case "min":
		return fmt.Sprintf("must be at least %s", param)
	default:
		return fmt.Sprintf("failed %q check", tag)
	}
}
