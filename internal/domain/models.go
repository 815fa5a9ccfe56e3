package domain

import (
	"github.com/shopspring/decimal"
)

// Department представляет отдел
type Department struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(30);not null;uniqueIndex"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Role представляет должность внутри отдела
type Role struct {
	ID           int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string          `json:"title" gorm:"type:varchar(30);not null"`
	Salary       decimal.Decimal `json:"salary" gorm:"type:numeric(10,2);not null"`
	DepartmentID int64           `json:"department_id" gorm:"not null;index"`
}

// TableName задаёт имя таблицы для GORM
func (Role) TableName() string {
	return "roles"
}

// Employee представляет сотрудника
type Employee struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string `json:"first_name" gorm:"type:varchar(30);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(30);not null"`
	RoleID    int64  `json:"role_id" gorm:"not null;index"`
	ManagerID *int64 `json:"manager_id" gorm:"index"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// FullName возвращает имя и фамилию через пробел
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// RoleRow - строка списка должностей вместе с названием отдела
type RoleRow struct {
	ID             int64
	Title          string
	Salary         decimal.Decimal
	DepartmentID   int64
	DepartmentName string
}

// EmployeeRow - строка списка сотрудников с должностью, отделом и руководителем
type EmployeeRow struct {
	ID               int64
	FirstName        string
	LastName         string
	RoleID           int64
	RoleTitle        string
	DepartmentID     int64
	DepartmentName   string
	Salary           decimal.Decimal
	ManagerID        *int64
	ManagerFirstName *string
	ManagerLastName  *string
	ManagerName      string `gorm:"-"`
}

// FullName возвращает имя и фамилию сотрудника
func (r EmployeeRow) FullName() string {
	return r.FirstName + " " + r.LastName
}

// DepartmentBudget - суммарные затраты отдела на зарплаты
type DepartmentBudget struct {
	DepartmentID   int64
	DepartmentName string
	Headcount      int64
	TotalSalary    decimal.Decimal
}

// FilterKind определяет, по какому признаку отбираются сотрудники
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterByManager
	FilterByDepartment
	FilterByRole
)

// EmployeeFilter - фильтр списка сотрудников
type EmployeeFilter struct {
	Kind FilterKind
	ID   int64
}
