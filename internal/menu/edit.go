package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/employee-tracker/internal/choice"
	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/dto"
	"github.com/employee-tracker/internal/prompt"
)

func (m *Menu) editLeaves() []leaf {
	return []leaf{
		{label: "Add a department", run: m.addDepartment},
		{label: "Add a role", run: m.addRole},
		{label: "Add an employee", run: m.addEmployee},
		{label: "Update an employee", run: m.updateEmployee},
		{label: "Remove a department", run: m.removeDepartment},
		{label: "Remove a role", run: m.removeRole},
		{label: "Remove an employee", run: m.removeEmployee},
	}
}

func (m *Menu) addDepartment(ctx context.Context) error {
	answers, err := m.ask(prompt.Question{
		Name:     "name",
		Kind:     prompt.KindInput,
		Message:  "Enter the department's name:",
		Validate: dto.FieldValidator("name", "required,max=30"),
	})
	if err != nil {
		return err
	}

	dept, err := m.services.Departments.Create(ctx, &dto.CreateDepartmentRequest{Name: answers.String("name")})
	if err != nil {
		return err
	}

	m.success.Fprintf(m.out, "Department %s added successfully!\n", dept.Name)
	return nil
}

func (m *Menu) addRole(ctx context.Context) error {
	departments, err := m.services.Departments.List(ctx)
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		m.warning.Fprintln(m.out, "No departments found. Add a department first.")
		return nil
	}

	answers, err := m.ask(
		prompt.Question{
			Name:     "title",
			Kind:     prompt.KindInput,
			Message:  "Enter the title of the new role:",
			Validate: dto.FieldValidator("title", "required,max=30"),
		},
		prompt.Question{
			Name:    "salary",
			Kind:    prompt.KindNumber,
			Message: "Enter the salary for the new role:",
			Validate: func(answer string) error {
				_, err := dto.ParseSalary(answer)
				return err
			},
		},
		prompt.Question{
			Name:    "department_id",
			Kind:    prompt.KindSelect,
			Message: "Select the department for the new role:",
			Choices: departmentChoices(departments),
		},
	)
	if err != nil {
		return err
	}

	role, err := m.services.Roles.Create(ctx, &dto.CreateRoleRequest{
		Title:        answers.String("title"),
		Salary:       answers.Decimal("salary"),
		DepartmentID: answers.ID("department_id"),
	})
	if err != nil {
		return err
	}

	m.success.Fprintf(m.out, "Role %s added successfully!\n", role.Title)
	return nil
}

func (m *Menu) addEmployee(ctx context.Context) error {
	roles, err := m.services.Roles.List(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		m.warning.Fprintln(m.out, "No roles found. Add a role first.")
		return nil
	}

	employees, err := m.services.Employees.List(ctx, domain.EmployeeFilter{})
	if err != nil {
		return err
	}

	answers, err := m.ask(
		prompt.Question{
			Name:     "first_name",
			Kind:     prompt.KindInput,
			Message:  "Enter the employee's first name:",
			Validate: dto.FieldValidator("first name", "required,max=30"),
		},
		prompt.Question{
			Name:     "last_name",
			Kind:     prompt.KindInput,
			Message:  "Enter the employee's last name:",
			Validate: dto.FieldValidator("last name", "required,max=30"),
		},
		prompt.Question{
			Name:    "role_id",
			Kind:    prompt.KindSelect,
			Message: "Select the employee's role:",
			Choices: roleChoices(roles),
		},
		prompt.Question{
			Name:    "manager_id",
			Kind:    prompt.KindSelect,
			Message: "Select the employee's manager:",
			Choices: choice.WithNone(employeeChoices(employees)),
			Default: choice.None,
		},
	)
	if err != nil {
		return err
	}

	emp, err := m.services.Employees.Create(ctx, &dto.CreateEmployeeRequest{
		FirstName: answers.String("first_name"),
		LastName:  answers.String("last_name"),
		RoleID:    answers.ID("role_id"),
		ManagerID: answers.OptionalID("manager_id"),
	})
	if err != nil {
		return err
	}

	m.success.Fprintf(m.out, "Employee %s added successfully!\n", emp.FullName())
	return nil
}

func (m *Menu) updateEmployee(ctx context.Context) error {
	employees, err := m.services.Employees.List(ctx, domain.EmployeeFilter{})
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		m.warning.Fprintln(m.out, "No employees found.")
		return nil
	}

	roles, err := m.services.Roles.List(ctx)
	if err != nil {
		return err
	}

	selected, err := m.ask(prompt.Question{
		Name:    "employee_id",
		Kind:    prompt.KindSelect,
		Message: "Select the employee to update:",
		Choices: employeeChoices(employees),
	})
	if err != nil {
		return err
	}
	employeeID := selected.ID("employee_id")

	// Сотрудник не может быть руководителем самому себе
	candidates := make([]domain.EmployeeRow, 0, len(employees))
	for _, e := range employees {
		if e.ID != employeeID {
			candidates = append(candidates, e)
		}
	}

	answers, err := m.ask(
		prompt.Question{
			Name:    "update_role",
			Kind:    prompt.KindConfirm,
			Message: "Does this employee have a new role?",
			Default: false,
		},
		prompt.Question{
			Name:    "role_id",
			Kind:    prompt.KindSelect,
			Message: "Select the employee's new role:",
			Choices: roleChoices(roles),
			When:    func(a prompt.Answers) bool { return a.Bool("update_role") },
		},
		prompt.Question{
			Name:    "update_manager",
			Kind:    prompt.KindConfirm,
			Message: "Does this employee have a new manager?",
			Default: false,
		},
		prompt.Question{
			Name:    "manager_id",
			Kind:    prompt.KindSelect,
			Message: "Select the employee's new manager:",
			Choices: choice.WithNone(employeeChoices(candidates)),
			Default: choice.None,
			When:    func(a prompt.Answers) bool { return a.Bool("update_manager") },
		},
	)
	if err != nil {
		return err
	}

	req := &dto.UpdateEmployeeRequest{}
	if answers.Has("role_id") {
		roleID := answers.ID("role_id")
		req.RoleID = &roleID
	}
	if answers.Has("manager_id") {
		req.ManagerIDSet = true
		req.ManagerID = answers.OptionalID("manager_id")
	}
	if req.Empty() {
		m.warning.Fprintln(m.out, "No updates were made.")
		return nil
	}

	if _, err := m.services.Employees.Update(ctx, employeeID, req); err != nil {
		return err
	}

	m.success.Fprintln(m.out, "Employee updated successfully!")
	return nil
}

func (m *Menu) removeDepartment(ctx context.Context) error {
	departments, err := m.services.Departments.List(ctx)
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		m.warning.Fprintln(m.out, "No departments found.")
		return nil
	}

	answers, err := m.ask(prompt.Question{
		Name:    "department_id",
		Kind:    prompt.KindSelect,
		Message: "Select the department to remove:",
		Choices: departmentChoices(departments),
	})
	if err != nil {
		return err
	}

	id := answers.ID("department_id")
	m.requestConfirmation("Remove a department", "department", func(ctx context.Context) error {
		return m.services.Departments.Delete(ctx, id)
	})
	return nil
}

func (m *Menu) removeRole(ctx context.Context) error {
	roles, err := m.services.Roles.List(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		m.warning.Fprintln(m.out, "No roles found.")
		return nil
	}

	answers, err := m.ask(prompt.Question{
		Name:    "role_id",
		Kind:    prompt.KindSelect,
		Message: "Select the role to remove:",
		Choices: roleChoices(roles),
	})
	if err != nil {
		return err
	}

	id := answers.ID("role_id")
	m.requestConfirmation("Remove a role", "role", func(ctx context.Context) error {
		return m.services.Roles.Delete(ctx, id)
	})
	return nil
}

func (m *Menu) removeEmployee(ctx context.Context) error {
	employees, err := m.services.Employees.List(ctx, domain.EmployeeFilter{})
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		m.warning.Fprintln(m.out, "No employees found.")
		return nil
	}

	answers, err := m.ask(prompt.Question{
		Name:    "employee_id",
		Kind:    prompt.KindSelect,
		Message: "Select the employee to remove:",
		Choices: employeeChoices(employees),
	})
	if err != nil {
		return err
	}

	id := answers.ID("employee_id")
	m.requestConfirmation("Remove an employee", "employee", func(ctx context.Context) error {
		return m.services.Employees.Delete(ctx, id)
	})
	return nil
}

// requestConfirmation откладывает удаление до ответа на вопрос подтверждения
func (m *Menu) requestConfirmation(name, entity string, action func(ctx context.Context) error) {
	m.pending = &confirmation{
		name:     name,
		message:  fmt.Sprintf("Are you sure you wish to remove this %s from the database?", entity),
		canceled: fmt.Sprintf("%s removal canceled.", capitalize(entity)),
		done:     fmt.Sprintf("%s removed successfully!", capitalize(entity)),
		action:   action,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
