package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/employee-tracker/internal/domain"
)

// RoleRepository определяет интерфейс для работы с должностями
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	List(ctx context.Context) ([]domain.RoleRow, error)
	Delete(ctx context.Context, id int64) error
	CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository создаёт новый экземпляр репозитория
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *domain.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *roleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	var role domain.Role
	err := r.db.WithContext(ctx).First(&role, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) List(ctx context.Context) ([]domain.RoleRow, error) {
	var rows []domain.RoleRow
	err := r.db.WithContext(ctx).
		Table("roles AS r").
		Select("r.id, r.title, r.salary, r.department_id, d.name AS department_name").
		Joins("INNER JOIN departments AS d ON r.department_id = d.id").
		Order("r.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *roleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Role{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *roleRepository) CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Role{}).Where("department_id = ?", departmentID).Count(&count).Error
	return count, err
}
