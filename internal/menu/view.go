package menu

import (
	"context"
	"strconv"

	"github.com/employee-tracker/internal/choice"
	"github.com/employee-tracker/internal/domain"
	"github.com/employee-tracker/internal/prompt"
	"github.com/employee-tracker/internal/render"
)

var employeeHeaders = []string{"id", "first_name", "last_name", "title", "department", "salary", "manager"}

func (m *Menu) viewLeaves() []leaf {
	return []leaf{
		{label: "View all departments", run: m.viewDepartments},
		{label: "View all roles", run: m.viewRoles},
		{label: "View all employees", run: m.viewAllEmployees},
		{label: "View employees by manager", run: m.viewEmployeesByManager},
		{label: "View employees by department", run: m.viewEmployeesByDepartment},
		{label: "View employees by role", run: m.viewEmployeesByRole},
		{label: "View department budgets", run: m.viewBudgets},
	}
}

func (m *Menu) viewDepartments(ctx context.Context) error {
	departments, err := m.services.Departments.List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, len(departments))
	for i, d := range departments {
		rows[i] = []string{formatID(d.ID), d.Name}
	}

	m.title("Departments")
	return render.Table(m.out, []string{"id", "name"}, rows)
}

func (m *Menu) viewRoles(ctx context.Context) error {
	roles, err := m.services.Roles.List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, len(roles))
	for i, r := range roles {
		rows[i] = []string{formatID(r.ID), r.Title, r.DepartmentName, r.Salary.StringFixed(2)}
	}

	m.title("Roles")
	return render.Table(m.out, []string{"id", "title", "department", "salary"}, rows)
}

func (m *Menu) viewAllEmployees(ctx context.Context) error {
	return m.showEmployees(ctx, "Employees", domain.EmployeeFilter{Kind: domain.FilterNone})
}

func (m *Menu) viewEmployeesByManager(ctx context.Context) error {
	employees, err := m.services.Employees.List(ctx, domain.EmployeeFilter{})
	if err != nil {
		return err
	}

	// В списке только те, у кого есть подчинённые
	isManager := make(map[int64]bool)
	for _, e := range employees {
		if e.ManagerID != nil {
			isManager[*e.ManagerID] = true
		}
	}
	var managers []domain.EmployeeRow
	for _, e := range employees {
		if isManager[e.ID] {
			managers = append(managers, e)
		}
	}
	if len(managers) == 0 {
		m.warning.Fprintln(m.out, "No managers found.")
		return nil
	}

	answers, err := m.ask(prompt.Question{
		Name:    "manager_id",
		Kind:    prompt.KindSelect,
		Message: "Select a manager:",
		Choices: employeeChoices(managers),
	})
	if err != nil {
		return err
	}

	id := answers.ID("manager_id")
	return m.showEmployees(ctx, "Employees managed by "+nameOf(managers, id),
		domain.EmployeeFilter{Kind: domain.FilterByManager, ID: id})
}

func (m *Menu) viewEmployeesByDepartment(ctx context.Context) error {
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
		Message: "Select a department:",
		Choices: departmentChoices(departments),
	})
	if err != nil {
		return err
	}

	id := answers.ID("department_id")
	title := "Employees"
	for _, d := range departments {
		if d.ID == id {
			title = "Employees in " + d.Name
		}
	}
	return m.showEmployees(ctx, title, domain.EmployeeFilter{Kind: domain.FilterByDepartment, ID: id})
}

func (m *Menu) viewEmployeesByRole(ctx context.Context) error {
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
		Message: "Select a role:",
		Choices: roleChoices(roles),
	})
	if err != nil {
		return err
	}

	id := answers.ID("role_id")
	title := "Employees"
	for _, r := range roles {
		if r.ID == id {
			title = "Employees with role " + r.Title
		}
	}
	return m.showEmployees(ctx, title, domain.EmployeeFilter{Kind: domain.FilterByRole, ID: id})
}

func (m *Menu) viewBudgets(ctx context.Context) error {
	budgets, err := m.services.Departments.Budgets(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, len(budgets))
	for i, b := range budgets {
		rows[i] = []string{formatID(b.DepartmentID), b.DepartmentName, strconv.FormatInt(b.Headcount, 10), b.TotalSalary.StringFixed(2)}
	}

	m.title("Department budgets")
	return render.Table(m.out, []string{"id", "department", "employees", "total_salary"}, rows)
}

func (m *Menu) showEmployees(ctx context.Context, title string, filter domain.EmployeeFilter) error {
	employees, err := m.services.Employees.List(ctx, filter)
	if err != nil {
		return err
	}

	rows := make([][]string, len(employees))
	for i, e := range employees {
		rows[i] = []string{
			formatID(e.ID), e.FirstName, e.LastName, e.RoleTitle,
			e.DepartmentName, e.Salary.StringFixed(2), e.ManagerName,
		}
	}

	m.title(title)
	return render.Table(m.out, employeeHeaders, rows)
}

func departmentChoices(departments []domain.Department) []choice.Choice {
	return choice.ToChoices(departments,
		func(d domain.Department) string { return d.Name },
		func(d domain.Department) any { return d.ID },
	)
}

func roleChoices(roles []domain.RoleRow) []choice.Choice {
	return choice.ToChoices(roles,
		func(r domain.RoleRow) string { return r.Title + " (" + r.DepartmentName + ")" },
		func(r domain.RoleRow) any { return r.ID },
	)
}

func employeeChoices(employees []domain.EmployeeRow) []choice.Choice {
	return choice.ToChoices(employees,
		func(e domain.EmployeeRow) string { return e.FullName() },
		func(e domain.EmployeeRow) any { return e.ID },
	)
}

func nameOf(employees []domain.EmployeeRow, id int64) string {
	for _, e := range employees {
		if e.ID == id {
			return e.FullName()
		}
	}
	return formatID(id)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
