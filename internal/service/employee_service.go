package service

import (
	"context"
	"errors"
	"strings"

	"github.com/employee-tracker/internal/choice"
	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/dto"
	"github.com/employee-tracker/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.EmployeeRow, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	roleRepo repository.RoleRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository, roleRepo repository.RoleRepository) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		roleRepo: roleRepo,
	}
}

func (s *employeeService) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.EmployeeRow, error) {
	rows, err := s.empRepo.List(ctx, filter)
	if err != nil {
		return nil, mapDatabaseError("list employees", err)
	}

	for i := range rows {
		rows[i].ManagerName = choice.ManagerLabel(rows[i].ManagerFirstName, rows[i].ManagerLastName)
	}
	return rows, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapDatabaseError("find employee", err)
	}
	return emp, nil
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	normalized := dto.CreateEmployeeRequest{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		RoleID:    req.RoleID,
		ManagerID: req.ManagerID,
	}
	if err := dto.Validate(&normalized); err != nil {
		return nil, err
	}

	// Проверяем существование должности и руководителя
	if _, err := s.roleRepo.GetByID(ctx, normalized.RoleID); err != nil {
		return nil, mapDatabaseError("find role", err)
	}
	if normalized.ManagerID != nil {
		if err := s.ensureManagerExists(ctx, *normalized.ManagerID); err != nil {
			return nil, err
		}
	}

	emp := &domain.Employee{
		FirstName: normalized.FirstName,
		LastName:  normalized.LastName,
		RoleID:    normalized.RoleID,
		ManagerID: normalized.ManagerID,
	}
	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, mapDatabaseError("add employee", err)
	}

	return emp, nil
}

// Update меняет только переданные поля. Назначение руководителя, которое
// замкнуло бы цепочку подчинения, отклоняется.
func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapDatabaseError("find employee", err)
	}
	if req.Empty() {
		return emp, nil
	}

	fields := make(map[string]any, 2)

	if req.RoleID != nil {
		if _, err := s.roleRepo.GetByID(ctx, *req.RoleID); err != nil {
			return nil, mapDatabaseError("find role", err)
		}
		fields["role_id"] = *req.RoleID
		emp.RoleID = *req.RoleID
	}

	if req.ManagerIDSet {
		if req.ManagerID == nil {
			fields["manager_id"] = nil
		} else {
			managerID := *req.ManagerID

			// Проверка: сотрудник не может быть руководителем самому себе
			if managerID == id {
				return nil, domain.ErrSelfReference
			}
			if err := s.ensureManagerExists(ctx, managerID); err != nil {
				return nil, err
			}

			// Проверка на цикл: нельзя подчинить сотрудника его же подчинённому
			isSubordinate, err := s.empRepo.IsSubordinate(ctx, id, managerID)
			if err != nil {
				return nil, mapDatabaseError("check management chain", err)
			}
			if isSubordinate {
				return nil, domain.ErrCyclicReference
			}

			fields["manager_id"] = managerID
		}
		emp.ManagerID = req.ManagerID
	}

	if err := s.empRepo.Update(ctx, id, fields); err != nil {
		return nil, mapDatabaseError("update employee", err)
	}

	return emp, nil
}

// Delete удаляет сотрудника, только если у него нет подчинённых
func (s *employeeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.empRepo.GetByID(ctx, id); err != nil {
		return mapDatabaseError("find employee", err)
	}

	reports, err := s.empRepo.CountByManagerID(ctx, id)
	if err != nil {
		return mapDatabaseError("count direct reports", err)
	}
	if reports > 0 {
		return &domain.ReferentialIntegrityError{Entity: "employee", ID: id, Dependent: "direct report", Count: reports}
	}

	return mapDatabaseError("remove employee", s.empRepo.Delete(ctx, id))
}

func (s *employeeService) ensureManagerExists(ctx context.Context, managerID int64) error {
	_, err := s.empRepo.GetByID(ctx, managerID)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return domain.ErrManagerNotFound
	}
	if err != nil {
		return mapDatabaseError("find manager", err)
	}
	return nil
}
