package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/employee-tracker/internal/domain"
)

// DepartmentRepository определяет интерфейс для работы с отделами
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	Budgets(ctx context.Context) ([]domain.DepartmentBudget, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	err := r.db.WithContext(ctx).Order("id ASC").Find(&departments).Error
	return departments, err
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Department{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Department{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Budgets считает численность и фонд оплаты труда по каждому отделу.
// Отделы без сотрудников попадают в результат с нулями.
func (r *departmentRepository) Budgets(ctx context.Context) ([]domain.DepartmentBudget, error) {
	var budgets []domain.DepartmentBudget
	err := r.db.WithContext(ctx).
		Table("departments AS d").
		Select(`d.id AS department_id, d.name AS department_name,
			COUNT(e.id) AS headcount,
			COALESCE(SUM(CASE WHEN e.id IS NOT NULL THEN r.salary END), 0) AS total_salary`).
		Joins("LEFT JOIN roles AS r ON r.department_id = d.id").
		Joins("LEFT JOIN employees AS e ON e.role_id = r.id").
		Group("d.id, d.name").
		Order("d.id ASC").
		Scan(&budgets).Error
	return budgets, err
}
