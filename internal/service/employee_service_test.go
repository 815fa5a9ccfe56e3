package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/dto"
)

// orgChart: Grace -> Ada -> Alan, Linus без руководителя
type orgChart struct {
	engineering, sales   *domain.Department
	lead, engineer, rep  *domain.Role
	grace, ada, alan, li *domain.Employee
}

func seedOrgChart(t *testing.T, s *testServices) *orgChart {
	t.Helper()

	o := &orgChart{}
	o.engineering = s.mustDepartment(t, "Engineering")
	o.sales = s.mustDepartment(t, "Sales")
	o.lead = s.mustRole(t, "Lead", 120000, o.engineering.ID)
	o.engineer = s.mustRole(t, "Engineer", 80000, o.engineering.ID)
	o.rep = s.mustRole(t, "Sales Rep", 50000, o.sales.ID)

	o.grace = s.mustEmployee(t, "Grace", "Hopper", o.lead.ID, nil)
	o.ada = s.mustEmployee(t, "Ada", "Lovelace", o.engineer.ID, &o.grace.ID)
	o.alan = s.mustEmployee(t, "Alan", "Turing", o.engineer.ID, &o.ada.ID)
	o.li = s.mustEmployee(t, "Linus", "Torvalds", o.rep.ID, nil)
	return o
}

func ids(rows []domain.EmployeeRow) []int64 {
	result := make([]int64, len(rows))
	for i, r := range rows {
		result[i] = r.ID
	}
	return result
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	s := setupServices(t)
	o := seedOrgChart(t, s)
	ctx := context.Background()

	_, err := s.employees.Create(ctx, &dto.CreateEmployeeRequest{FirstName: "", LastName: "X", RoleID: o.engineer.ID})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}

	_, err = s.employees.Create(ctx, &dto.CreateEmployeeRequest{FirstName: "Ken", LastName: "Thompson", RoleID: 999})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Errorf("expected role not found, got %v", err)
	}

	missing := int64(999)
	_, err = s.employees.Create(ctx, &dto.CreateEmployeeRequest{FirstName: "Ken", LastName: "Thompson", RoleID: o.engineer.ID, ManagerID: &missing})
	if !errors.Is(err, domain.ErrManagerNotFound) {
		t.Errorf("expected manager not found, got %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected manager not found to be a not found error, got %v", err)
	}
}

func TestEmployeeService_List_ManagerNames(t *testing.T) {
	s := setupServices(t)
	o := seedOrgChart(t, s)

	rows, err := s.employees.List(context.Background(), domain.EmployeeFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	got := make(map[int64]string, len(rows))
	for _, r := range rows {
		got[r.ID] = r.ManagerName
	}
	want := map[int64]string{
		o.grace.ID: "N/A",
		o.ada.ID:   "Grace Hopper",
		o.alan.ID:  "Ada Lovelace",
		o.li.ID:    "N/A",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected manager names (-want +got):\n%s", diff)
	}
}

func TestEmployeeService_List_Filters(t *testing.T) {
	s := setupServices(t)
	o := seedOrgChart(t, s)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter domain.EmployeeFilter
		want   []int64
	}{
		{"all", domain.EmployeeFilter{}, []int64{o.grace.ID, o.ada.ID, o.alan.ID, o.li.ID}},
		{"by manager", domain.EmployeeFilter{Kind: domain.FilterByManager, ID: o.grace.ID}, []int64{o.ada.ID}},
		{"by department", domain.EmployeeFilter{Kind: domain.FilterByDepartment, ID: o.engineering.ID}, []int64{o.grace.ID, o.ada.ID, o.alan.ID}},
		{"by role", domain.EmployeeFilter{Kind: domain.FilterByRole, ID: o.rep.ID}, []int64{o.li.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := s.employees.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, ids(rows)); diff != "" {
				t.Errorf("unexpected employees (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmployeeService_Update_RoleKeepsManager(t *testing.T) {
	s := setupServices(t)
	o := seedOrgChart(t, s)
	ctx := context.Background()

	emp, err := s.employees.Update(ctx, o.ada.ID, &dto.UpdateEmployeeRequest{RoleID: &o.lead.ID})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if emp.RoleID != o.lead.ID {
		t.Errorf("expected role %d, got %d", o.lead.ID, emp.RoleID)
	}

	stored, err := s.employees.GetByID(ctx, o.ada.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.RoleID != o.lead.ID {
		t.Errorf("expected stored role %d, got %d", o.lead.ID, stored.RoleID)
	}
	if stored.ManagerID == nil || *stored.ManagerID != o.grace.ID {
		t.Errorf("expected manager %d to be kept, got %v", o.grace.ID, stored.ManagerID)
	}
}

func TestEmployeeService_Update_ManagerKeepsRole(t *testing.T) {
	s := setupServices(t)
	o := seedOrgChart(t, s)
	ctx := context.Background()

	_, err := s.employees.Update(ctx, o.li.ID, &dto.UpdateEmployeeRequest{ManagerIDSet: true, ManagerID: &o.grace.ID})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored, _ := s.employees.GetByID(ctx, o.li.ID)
	if stored.RoleID != o.rep.ID {
		t.Errorf("expected role %d to be kept, got %d", o.rep.ID, stored.RoleID)
	}
	if stored.ManagerID == nil || *stored.ManagerID != o.grace.ID {
		t.Errorf("expected manager %d, got %v", o.grace.ID, stored.ManagerID)
	}
}

func TestEmployeeService_Update_ClearManager(t *testing.T) {
	s := setupServices(t)
	o := seedOrgChart(t, s)
	ctx := context.Background()

	if _, err := s.employees.Update(ctx, o.ada.ID, &dto.UpdateEmployeeRequest{ManagerIDSet: true}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored, _ := s.employees.GetByID(ctx, o.ada.ID)
	if stored.ManagerID != nil {
		t.Errorf("expected no manager, got %d", *stored.ManagerID)
	}
}

func TestEmployeeService_Update_Empty(t *testing.T) {
	s := setupServices(t)
	o := seedOrgChart(t, s)

	emp, err := s.employees.Update(context.Background(), o.alan.ID, &dto.UpdateEmployeeRequest{})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if emp.RoleID != o.engineer.ID || emp.ManagerID == nil || *emp.ManagerID != o.ada.ID {
		t.Errorf("expected unchanged employee, got %+v", emp)
	}
}

func TestEmployeeService_Update_Rejected(t *testing.T) {
	s := setupServices(t)
	o := seedOrgChart(t, s)
	ctx := context.Background()
	missing := int64(999)

	tests := []struct {
		name    string
		id      int64
		req     dto.UpdateEmployeeRequest
		wantErr error
	}{
		{"self manager", o.ada.ID, dto.UpdateEmployeeRequest{ManagerIDSet: true, ManagerID: &o.ada.ID}, domain.ErrSelfReference},
		{"direct cycle", o.grace.ID, dto.UpdateEmployeeRequest{ManagerIDSet: true, ManagerID: &o.ada.ID}, domain.ErrCyclicReference},
		{"indirect cycle", o.grace.ID, dto.UpdateEmployeeRequest{ManagerIDSet: true, ManagerID: &o.alan.ID}, domain.ErrCyclicReference},
		{"unknown manager", o.ada.ID, dto.UpdateEmployeeRequest{ManagerIDSet: true, ManagerID: &missing}, domain.ErrManagerNotFound},
		{"unknown role", o.ada.ID, dto.UpdateEmployeeRequest{RoleID: &missing}, domain.ErrRoleNotFound},
		{"unknown employee", missing, dto.UpdateEmployeeRequest{RoleID: &o.lead.ID}, domain.ErrEmployeeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.employees.Update(ctx, tt.id, &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	// Ни одна отклонённая операция не изменила данные
	grace, _ := s.employees.GetByID(ctx, o.grace.ID)
	if grace.ManagerID != nil {
		t.Errorf("expected Grace to have no manager, got %d", *grace.ManagerID)
	}
	ada, _ := s.employees.GetByID(ctx, o.ada.ID)
	if ada.RoleID != o.engineer.ID || ada.ManagerID == nil || *ada.ManagerID != o.grace.ID {
		t.Errorf("expected Ada unchanged, got %+v", ada)
	}
}

func TestEmployeeService_Delete(t *testing.T) {
	s := setupServices(t)
	o := seedOrgChart(t, s)
	ctx := context.Background()

	err := s.employees.Delete(ctx, o.ada.ID)
	var riErr *domain.ReferentialIntegrityError
	if !errors.As(err, &riErr) {
		t.Fatalf("expected *ReferentialIntegrityError, got %v", err)
	}
	if riErr.Dependent != "direct report" || riErr.Count != 1 {
		t.Errorf("expected 1 direct report, got %d %s", riErr.Count, riErr.Dependent)
	}

	if err := s.employees.Delete(ctx, o.alan.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.employees.Delete(ctx, o.ada.ID); err != nil {
		t.Fatalf("expected Ada to be removable once Alan is gone, got %v", err)
	}
	if err := s.employees.Delete(ctx, o.ada.ID); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected employee not found, got %v", err)
	}

	rows, _ := s.employees.List(ctx, domain.EmployeeFilter{})
	if diff := cmp.Diff([]int64{o.grace.ID, o.li.ID}, ids(rows)); diff != "" {
		t.Errorf("unexpected employees (-want +got):\n%s", diff)
	}
}
