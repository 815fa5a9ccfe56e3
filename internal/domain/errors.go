package domain

import (
	"errors"
	"fmt"
)

// Виды ошибок
var (
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("not found")
	ErrQuery                = errors.New("query failed")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrConnection           = errors.New("database connection failed")
)

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound      = fmt.Errorf("department %w", ErrNotFound)
	ErrRoleNotFound            = fmt.Errorf("role %w", ErrNotFound)
	ErrEmployeeNotFound        = fmt.Errorf("employee %w", ErrNotFound)
	ErrManagerNotFound         = fmt.Errorf("manager %w", ErrNotFound)
	ErrDuplicateDepartmentName = fmt.Errorf("%w: department with this name already exists", ErrValidation)
	ErrDuplicateValue          = fmt.Errorf("%w: value already exists", ErrValidation)
	ErrSelfReference           = fmt.Errorf("%w: employee cannot be their own manager", ErrValidation)
	ErrCyclicReference         = fmt.Errorf("%w: assigning this manager would create a management cycle", ErrValidation)
)

// ValidationError - некорректное значение поля
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// QueryError - база данных отклонила запрос
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() []error {
	return []error{ErrQuery, e.Err}
}

// ReferentialIntegrityError - удаление запрещено, на запись есть ссылки
type ReferentialIntegrityError struct {
	Entity    string
	ID        int64
	Dependent string
	Count     int64
}

func (e *ReferentialIntegrityError) Error() string {
	if e.Dependent == "" {
		if e.Entity == "" {
			return "foreign key violation"
		}
		return "foreign key violation on " + e.Entity
	}
	return fmt.Sprintf("cannot remove %s %d: still referenced by %d %s(s)", e.Entity, e.ID, e.Count, e.Dependent)
}

func (e *ReferentialIntegrityError) Is(target error) bool {
	return target == ErrReferentialIntegrity
}
