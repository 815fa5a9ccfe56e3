package prompt

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/employee-tracker/internal/choice"
)

// Kind - тип вопроса
type Kind int

const (
	KindSelect Kind = iota
	KindInput
	KindConfirm
	KindNumber
)

var (
	// ErrInterrupted - пользователь прервал ввод (Ctrl-C)
	ErrInterrupted = errors.New("prompt interrupted")
	// ErrNoChoices - список выбора пуст
	ErrNoChoices = errors.New("nothing to choose from")
)

// Question описывает один вопрос пользователю.
//
// Ответ на KindSelect - Value выбранного пункта, на KindInput - строка без
// пробелов по краям, на KindConfirm - bool, на KindNumber - decimal.Decimal.
// Validate вызывается для текстовых ответов; при ошибке вопрос задаётся снова.
// When, если задан, решает по предыдущим ответам, нужен ли вопрос вообще.
type Question struct {
	Name     string
	Kind     Kind
	Message  string
	Choices  []choice.Choice
	Default  any
	Validate func(string) error
	When     func(Answers) bool
}

// Prompter задаёт вопрос и возвращает проверенный ответ
type Prompter interface {
	Ask(q Question) (any, error)
}

// Answers - ответы по имени вопроса
type Answers map[string]any

// Ask задаёт вопросы по очереди. Ошибка на любом шаге прерывает весь опрос.
func Ask(p Prompter, questions ...Question) (Answers, error) {
	answers := make(Answers, len(questions))
	for _, q := range questions {
		if q.When != nil && !q.When(answers) {
			continue
		}
		if q.Kind == KindSelect && len(q.Choices) == 0 {
			return answers, fmt.Errorf("%s: %w", q.Name, ErrNoChoices)
		}

		answer, err := p.Ask(q)
		if err != nil {
			return answers, err
		}
		answers[q.Name] = answer
	}
	return answers, nil
}

// Has сообщает, был ли задан вопрос
func (a Answers) Has(name string) bool {
	_, ok := a[name]
	return ok
}

func (a Answers) String(name string) string {
	s, _ := a[name].(string)
	return s
}

func (a Answers) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

func (a Answers) Decimal(name string) decimal.Decimal {
	d, _ := a[name].(decimal.Decimal)
	return d
}

// ID возвращает идентификатор, выбранный в списке; 0, если ответа нет
func (a Answers) ID(name string) int64 {
	if id := a.OptionalID(name); id != nil {
		return *id
	}
	return 0
}

// OptionalID возвращает nil для пункта "None" или отсутствующего ответа
func (a Answers) OptionalID(name string) *int64 {
	switch v := a[name].(type) {
	case int64:
		return &v
	case *int64:
		return v
	case int:
		id := int64(v)
		return &id
	default:
		return nil
	}
}
