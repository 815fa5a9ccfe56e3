package service

import (
	"context"
	"strings"

	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/dto"
	"github.com/employee-tracker/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для отделов
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
	Budgets(ctx context.Context) ([]domain.DepartmentBudget, error)
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	roleRepo repository.RoleRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository, roleRepo repository.RoleRepository) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		roleRepo: roleRepo,
	}
}

func (s *departmentService) List(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.deptRepo.List(ctx)
	if err != nil {
		return nil, mapDatabaseError("list departments", err)
	}
	return departments, nil
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	name := strings.TrimSpace(req.Name)
	if err := dto.Validate(&dto.CreateDepartmentRequest{Name: name}); err != nil {
		return nil, err
	}

	// Проверяем уникальность имени
	exists, err := s.deptRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, mapDatabaseError("check department name", err)
	}
	if exists {
		return nil, domain.ErrDuplicateDepartmentName
	}

	dept := &domain.Department{Name: name}
	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, mapDatabaseError("add department", err)
	}

	return dept, nil
}

// Delete удаляет отдел, только если на него не ссылается ни одна должность
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.deptRepo.GetByID(ctx, id); err != nil {
		return mapDatabaseError("find department", err)
	}

	roles, err := s.roleRepo.CountByDepartmentID(ctx, id)
	if err != nil {
		return mapDatabaseError("count department roles", err)
	}
	if roles > 0 {
		return &domain.ReferentialIntegrityError{Entity: "department", ID: id, Dependent: "role", Count: roles}
	}

	return mapDatabaseError("remove department", s.deptRepo.Delete(ctx, id))
}

func (s *departmentService) Budgets(ctx context.Context) ([]domain.DepartmentBudget, error) {
	budgets, err := s.deptRepo.Budgets(ctx)
	if err != nil {
		return nil, mapDatabaseError("department budgets", err)
	}
	return budgets, nil
}
