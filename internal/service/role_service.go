package service

import (
	"context"
	"strings"

	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/dto"
	"github.com/employee-tracker/internal/repository"
)

// RoleService определяет интерфейс бизнес-логики для должностей
type RoleService interface {
	List(ctx context.Context) ([]domain.RoleRow, error)
	Create(ctx context.Context, req *dto.CreateRoleRequest) (*domain.Role, error)
	Delete(ctx context.Context, id int64) error
}

type roleService struct {
	roleRepo repository.RoleRepository
	deptRepo repository.DepartmentRepository
	empRepo  repository.EmployeeRepository
}

// NewRoleService создаёт новый экземпляр сервиса
func NewRoleService(
	roleRepo repository.RoleRepository,
	deptRepo repository.DepartmentRepository,
	empRepo repository.EmployeeRepository,
) RoleService {
	return &roleService{
		roleRepo: roleRepo,
		deptRepo: deptRepo,
		empRepo:  empRepo,
	}
}

func (s *roleService) List(ctx context.Context) ([]domain.RoleRow, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, mapDatabaseError("list roles", err)
	}
	return roles, nil
}

func (s *roleService) Create(ctx context.Context, req *dto.CreateRoleRequest) (*domain.Role, error) {
	normalized := dto.CreateRoleRequest{
		Title:        strings.TrimSpace(req.Title),
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
	}
	if err := dto.Validate(&normalized); err != nil {
		return nil, err
	}
	if err := dto.ValidateSalary(normalized.Salary); err != nil {
		return nil, err
	}

	// Проверяем существование отдела
	if _, err := s.deptRepo.GetByID(ctx, normalized.DepartmentID); err != nil {
		return nil, mapDatabaseError("find department", err)
	}

	role := &domain.Role{
		Title:        normalized.Title,
		Salary:       normalized.Salary,
		DepartmentID: normalized.DepartmentID,
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, mapDatabaseError("add role", err)
	}

	return role, nil
}

// Delete удаляет должность, только если её не занимает ни один сотрудник
func (s *roleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.roleRepo.GetByID(ctx, id); err != nil {
		return mapDatabaseError("find role", err)
	}

	holders, err := s.empRepo.CountByRoleID(ctx, id)
	if err != nil {
		return mapDatabaseError("count role holders", err)
	}
	if holders > 0 {
		return &domain.ReferentialIntegrityError{Entity: "role", ID: id, Dependent: "employee", Count: holders}
	}

	return mapDatabaseError("remove role", s.roleRepo.Delete(ctx, id))
}
