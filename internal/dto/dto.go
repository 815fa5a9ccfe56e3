package dto

import (
	"github.com/shopspring/decimal"
)

// CreateDepartmentRequest - запрос на создание отдела
type CreateDepartmentRequest struct {
	Name string `validate:"required,max=30"`
}

// CreateRoleRequest - запрос на создание должности
type CreateRoleRequest struct {
	Title        string          `validate:"required,max=30"`
	Salary       decimal.Decimal `validate:"-"`
	DepartmentID int64           `validate:"required,min=1"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	FirstName string `validate:"required,max=30"`
	LastName  string `validate:"required,max=30"`
	RoleID    int64  `validate:"required,min=1"`
	ManagerID *int64 `validate:"omitempty,min=1"`
}

// UpdateEmployeeRequest - частичное обновление сотрудника.
// ManagerIDSet отличает "руководитель не меняется" от "руководителя нет".
type UpdateEmployeeRequest struct {
	RoleID       *int64 `validate:"omitempty,min=1"`
	ManagerIDSet bool
	ManagerID    *int64 `validate:"omitempty,min=1"`
}

// Empty сообщает, что в запросе нет ни одного изменения
func (r *UpdateEmployeeRequest) Empty() bool {
	return r.RoleID == nil && !r.ManagerIDSet
}
