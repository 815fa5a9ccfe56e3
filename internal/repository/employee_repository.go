package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/employee-tracker/internal/domain"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.EmployeeRow, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	CountByRoleID(ctx context.Context, roleID int64) (int64, error)
	CountByManagerID(ctx context.Context, managerID int64) (int64, error)
	IsSubordinate(ctx context.Context, managerID, employeeID int64) (bool, error)
	GetAllSubordinateIDs(ctx context.Context, managerID int64) ([]int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.EmployeeRow, error) {
	query := r.db.WithContext(ctx).
		Table("employees AS e").
		Select(`e.id, e.first_name, e.last_name, e.role_id, r.title AS role_title,
			d.id AS department_id, d.name AS department_name, r.salary, e.manager_id,
			m.first_name AS manager_first_name, m.last_name AS manager_last_name`).
		Joins("LEFT JOIN employees AS m ON e.manager_id = m.id").
		Joins("INNER JOIN roles AS r ON e.role_id = r.id").
		Joins("INNER JOIN departments AS d ON r.department_id = d.id")

	switch filter.Kind {
	case domain.FilterByManager:
		query = query.Where("e.manager_id = ?", filter.ID)
	case domain.FilterByDepartment:
		query = query.Where("d.id = ?", filter.ID)
	case domain.FilterByRole:
		query = query.Where("e.role_id = ?", filter.ID)
	}

	var rows []domain.EmployeeRow
	err := query.Order("e.id ASC").Scan(&rows).Error
	return rows, err
}

// Update меняет только переданные столбцы; nil в fields записывает NULL
func (r *employeeRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) CountByRoleID(ctx context.Context, roleID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}

func (r *employeeRepository) CountByManagerID(ctx context.Context, managerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("manager_id = ?", managerID).Count(&count).Error
	return count, err
}

func (r *employeeRepository) IsSubordinate(ctx context.Context, managerID, employeeID int64) (bool, error) {
	subordinates, err := r.GetAllSubordinateIDs(ctx, managerID)
	if err != nil {
		return false, err
	}

	for _, id := range subordinates {
		if id == employeeID {
			return true, nil
		}
	}
	return false, nil
}

// GetAllSubordinateIDs возвращает прямых и косвенных подчинённых.
// UNION вместо UNION ALL завершает обход даже на уже испорченных данных с циклом.
func (r *employeeRepository) GetAllSubordinateIDs(ctx context.Context, managerID int64) ([]int64, error) {
	var result []int64

	query := `
		WITH RECURSIVE subordinates AS (
			SELECT id FROM employees WHERE manager_id = ?
			UNION
			SELECT e.id FROM employees e
			INNER JOIN subordinates s ON e.manager_id = s.id
		)
		SELECT id FROM subordinates
	`

	rows, err := r.db.WithContext(ctx).Raw(query, managerID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}

	return result, rows.Err()
}
