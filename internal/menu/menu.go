package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/employee-tracker/internal/choice"
	"github.com/employee-tracker/internal/middleware"
	"github.com/employee-tracker/internal/prompt"
	"github.com/employee-tracker/internal/service"
)

// State - экран меню
type State int

const (
	StateMain State = iota
	StateView
	StateEdit
	StateConfirm
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMain:
		return "main"
	case StateView:
		return "view"
	case StateEdit:
		return "edit"
	case StateConfirm:
		return "confirm"
	case StateExit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const backLabel = "Back to main menu"

// Services - сервисы, с которыми работает меню
type Services struct {
	Departments service.DepartmentService
	Roles       service.RoleService
	Employees   service.EmployeeService
}

// Menu - конечный автомат интерактивного меню.
// В каждый момент ожидается ровно один ответ пользователя или один запрос к БД.
type Menu struct {
	services Services
	prompter prompt.Prompter
	out      io.Writer
	logger   *slog.Logger

	pending *confirmation

	success  *color.Color
	warning  *color.Color
	failure  *color.Color
	headline *color.Color
}

// leaf - конечное действие подменю
type leaf struct {
	label string
	run   middleware.Action
}

// confirmation - отложенное разрушающее действие, ждущее подтверждения
type confirmation struct {
	name     string
	message  string
	canceled string
	done     string
	action   middleware.Action
}

// promptFailure помечает ошибку ввода, после которой продолжать нельзя
type promptFailure struct {
	err error
}

func (e *promptFailure) Error() string { return e.err.Error() }
func (e *promptFailure) Unwrap() error { return e.err }

// New создаёт меню
func New(services Services, prompter prompt.Prompter, out io.Writer, logger *slog.Logger) *Menu {
	return &Menu{
		services: services,
		prompter: prompter,
		out:      out,
		logger:   logger,
		success:  color.New(color.FgGreen),
		warning:  color.New(color.FgYellow),
		failure:  color.New(color.FgRed),
		headline: color.New(color.FgCyan, color.Bold),
	}
}

// Run крутит автомат от главного меню до выхода.
// Прерывание ввода (Ctrl-C) считается выходом; прочие ошибки ввода возвращаются.
func (m *Menu) Run(ctx context.Context) error {
	state := StateMain
	for state != StateExit {
		next, err := m.step(ctx, state)
		if errors.Is(err, prompt.ErrInterrupted) {
			next, err = StateExit, nil
		}
		if err != nil {
			return err
		}

		m.logger.Debug("menu transition", slog.String("from", state.String()), slog.String("to", next.String()))
		state = next
	}

	fmt.Fprintln(m.out, "Exiting application...")
	return nil
}

func (m *Menu) step(ctx context.Context, state State) (State, error) {
	switch state {
	case StateMain:
		return m.mainMenu()
	case StateView:
		return m.submenu(ctx, "What would you like to view?", m.viewLeaves())
	case StateEdit:
		return m.submenu(ctx, "What would you like to change?", m.editLeaves())
	case StateConfirm:
		return m.confirm(ctx)
	default:
		return StateExit, fmt.Errorf("unexpected menu state %s", state)
	}
}

func (m *Menu) mainMenu() (State, error) {
	answer, err := m.prompter.Ask(prompt.Question{
		Name:    "action",
		Kind:    prompt.KindSelect,
		Message: "What would you like to do?",
		Choices: []choice.Choice{
			{Label: "View records", Value: StateView},
			{Label: "Edit records", Value: StateEdit},
			{Label: "Exit", Value: StateExit},
		},
	})
	if err != nil {
		return StateExit, err
	}

	next, ok := answer.(State)
	if !ok {
		return StateExit, fmt.Errorf("unexpected main menu answer %v", answer)
	}
	return next, nil
}

func (m *Menu) submenu(ctx context.Context, message string, leaves []leaf) (State, error) {
	choices := choice.ToChoices(leaves,
		func(l leaf) string { return l.label },
		func(l leaf) any { return l.label },
	)
	choices = append(choices, choice.Choice{Label: backLabel, Value: backLabel})

	answer, err := m.prompter.Ask(prompt.Question{
		Name:    "action",
		Kind:    prompt.KindSelect,
		Message: message,
		Choices: choices,
	})
	if err != nil {
		return StateExit, err
	}

	for _, l := range leaves {
		if l.label == answer {
			return m.runLeaf(ctx, l)
		}
	}
	return StateMain, nil
}

// runLeaf выполняет действие и решает, куда идти дальше: в подтверждение,
// если действие его запросило, иначе в главное меню.
func (m *Menu) runLeaf(ctx context.Context, l leaf) (State, error) {
	m.pending = nil

	err := middleware.Chain(l.run,
		middleware.Recoverer(m.logger, l.label),
		middleware.Logger(m.logger, l.label),
	)(ctx)

	var pf *promptFailure
	if errors.As(err, &pf) {
		m.pending = nil
		return StateExit, pf.err
	}
	if err != nil {
		m.pending = nil
		m.reportFailure(l.label, err)
		return StateMain, nil
	}

	if m.pending != nil {
		return StateConfirm, nil
	}
	return StateMain, nil
}

// confirm спрашивает подтверждение отложенного действия.
// Отказ отменяет всё действие целиком; в любом случае дальше главное меню.
func (m *Menu) confirm(ctx context.Context) (State, error) {
	c := m.pending
	m.pending = nil
	if c == nil {
		return StateMain, nil
	}

	answer, err := m.prompter.Ask(prompt.Question{
		Name:    "confirm",
		Kind:    prompt.KindConfirm,
		Message: c.message,
		Default: false,
	})
	if err != nil {
		return StateExit, err
	}

	if yes, _ := answer.(bool); !yes {
		m.warning.Fprintln(m.out, c.canceled)
		return StateMain, nil
	}

	err = middleware.Chain(c.action,
		middleware.Recoverer(m.logger, c.name),
		middleware.Logger(m.logger, c.name),
	)(ctx)
	if err != nil {
		m.reportFailure(c.name, err)
		return StateMain, nil
	}

	m.success.Fprintln(m.out, c.done)
	return StateMain, nil
}

// ask задаёт вопросы действия; ошибка ввода помечается как неустранимая
func (m *Menu) ask(questions ...prompt.Question) (prompt.Answers, error) {
	answers, err := prompt.Ask(m.prompter, questions...)
	if err != nil && !errors.Is(err, prompt.ErrNoChoices) {
		return nil, &promptFailure{err: err}
	}
	return answers, err
}

func (m *Menu) reportFailure(label string, err error) {
	m.failure.Fprintf(m.out, "Failed to %s: %v\n", strings.ToLower(label), err)
}

func (m *Menu) title(text string) {
	m.headline.Fprintln(m.out, text)
}
