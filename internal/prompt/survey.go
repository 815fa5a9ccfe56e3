package prompt

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/shopspring/decimal"

	"github.com/employee-tracker/internal/choice"
)

// Survey задаёт вопросы в терминале через survey
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey создаёт Prompter для терминала
func NewSurvey(opts ...survey.AskOpt) *Survey {
	return &Survey{opts: opts}
}

func (s *Survey) Ask(q Question) (any, error) {
	switch q.Kind {
	case KindSelect:
		return s.askSelect(q)
	case KindConfirm:
		return s.askConfirm(q)
	case KindInput, KindNumber:
		return s.askInput(q)
	default:
		return nil, fmt.Errorf("unknown question kind %d", q.Kind)
	}
}

func (s *Survey) askSelect(q Question) (any, error) {
	if len(q.Choices) == 0 {
		return nil, ErrNoChoices
	}

	labels := choice.Labels(q.Choices)
	sel := &survey.Select{
		Message:  q.Message,
		Options:  labels,
		PageSize: 10,
	}
	if label, ok := q.Default.(string); ok && slices.Contains(labels, label) {
		sel.Default = label
	}

	var idx int
	if err := survey.AskOne(sel, &idx, s.opts...); err != nil {
		return nil, translate(err)
	}
	return q.Choices[idx].Value, nil
}

func (s *Survey) askConfirm(q Question) (any, error) {
	confirm := &survey.Confirm{Message: q.Message}
	if def, ok := q.Default.(bool); ok {
		confirm.Default = def
	}

	var yes bool
	if err := survey.AskOne(confirm, &yes, s.opts...); err != nil {
		return nil, translate(err)
	}
	return yes, nil
}

func (s *Survey) askInput(q Question) (any, error) {
	input := &survey.Input{Message: q.Message}
	if def, ok := q.Default.(string); ok {
		input.Default = def
	}

	validate := q.Validate
	if q.Kind == KindNumber && validate == nil {
		validate = func(answer string) error {
			_, err := decimal.NewFromString(strings.TrimSpace(answer))
			return err
		}
	}

	opts := s.opts
	if validate != nil {
		opts = append(slices.Clone(s.opts), survey.WithValidator(func(ans any) error {
			str, _ := ans.(string)
			return validate(str)
		}))
	}

	var answer string
	if err := survey.AskOne(input, &answer, opts...); err != nil {
		return nil, translate(err)
	}

	answer = strings.TrimSpace(answer)
	if q.Kind == KindNumber {
		number, err := decimal.NewFromString(answer)
		if err != nil {
			return nil, err
		}
		return number, nil
	}
	return answer, nil
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
