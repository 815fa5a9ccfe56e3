package prompt

import (
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/employee-tracker/internal/choice"
)

// fakePrompter отвечает заранее заданными значениями по имени вопроса
type fakePrompter struct {
	answers map[string]any
	errs    map[string]error
	asked   []string
}

func (f *fakePrompter) Ask(q Question) (any, error) {
	f.asked = append(f.asked, q.Name)
	if err, ok := f.errs[q.Name]; ok {
		return nil, err
	}
	return f.answers[q.Name], nil
}

func TestAsk_SkipsQuestionsByWhen(t *testing.T) {
	p := &fakePrompter{answers: map[string]any{
		"update_role":    false,
		"role_id":        int64(3),
		"update_manager": true,
		"manager_id":     nil,
	}}

	answers, err := Ask(p,
		Question{Name: "update_role", Kind: KindConfirm},
		Question{Name: "role_id", Kind: KindSelect, Choices: []choice.Choice{{Label: "Engineer", Value: int64(3)}},
			When: func(a Answers) bool { return a.Bool("update_role") }},
		Question{Name: "update_manager", Kind: KindConfirm},
		Question{Name: "manager_id", Kind: KindSelect, Choices: choice.WithNone(nil),
			When: func(a Answers) bool { return a.Bool("update_manager") }},
	)
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	if diff := cmp.Diff([]string{"update_role", "update_manager", "manager_id"}, p.asked); diff != "" {
		t.Errorf("unexpected questions (-want +got):\n%s", diff)
	}
	if answers.Has("role_id") {
		t.Error("expected skipped question to have no answer")
	}
	if !answers.Has("manager_id") || answers.OptionalID("manager_id") != nil {
		t.Errorf("expected explicit None for manager, got %v", answers["manager_id"])
	}
}

func TestAsk_EmptyChoices(t *testing.T) {
	p := &fakePrompter{}

	_, err := Ask(p,
		Question{Name: "department_id", Kind: KindSelect},
	)
	if !errors.Is(err, ErrNoChoices) {
		t.Errorf("expected ErrNoChoices, got %v", err)
	}
	if len(p.asked) != 0 {
		t.Errorf("expected prompter not to be called, got %v", p.asked)
	}
}

func TestAsk_StopsOnError(t *testing.T) {
	p := &fakePrompter{
		answers: map[string]any{"first_name": "Ada"},
		errs:    map[string]error{"last_name": ErrInterrupted},
	}

	answers, err := Ask(p,
		Question{Name: "first_name", Kind: KindInput},
		Question{Name: "last_name", Kind: KindInput},
		Question{Name: "role_id", Kind: KindSelect, Choices: []choice.Choice{{Label: "x", Value: int64(1)}}},
	)
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
	if answers.String("first_name") != "Ada" {
		t.Errorf("expected partial answers to be kept, got %v", answers)
	}
	if len(p.asked) != 2 {
		t.Errorf("expected 2 questions asked, got %d", len(p.asked))
	}
}

func TestAnswers_Accessors(t *testing.T) {
	id := int64(7)
	answers := Answers{
		"name":    "Sales",
		"yes":     true,
		"salary":  decimal.RequireFromString("1500.25"),
		"int64":   int64(3),
		"ptr":     &id,
		"int":     5,
		"none":    nil,
		"garbage": "x",
	}

	if answers.String("name") != "Sales" || answers.String("missing") != "" {
		t.Error("unexpected String result")
	}
	if !answers.Bool("yes") || answers.Bool("name") {
		t.Error("unexpected Bool result")
	}
	if !answers.Decimal("salary").Equal(decimal.RequireFromString("1500.25")) {
		t.Errorf("unexpected Decimal result: %s", answers.Decimal("salary"))
	}

	idTests := map[string]int64{"int64": 3, "ptr": 7, "int": 5, "none": 0, "garbage": 0, "missing": 0}
	for name, want := range idTests {
		if got := answers.ID(name); got != want {
			t.Errorf("ID(%q): expected %d, got %d", name, want, got)
		}
	}
	if answers.OptionalID("none") != nil {
		t.Error("expected nil for None answer")
	}
}

func TestTranslate(t *testing.T) {
	if err := translate(terminal.InterruptErr); !errors.Is(err, ErrInterrupted) {
		t.Errorf("expected ErrInterrupted, got %v", err)
	}

	other := errors.New("EOF")
	if err := translate(other); err != other {
		t.Errorf("expected error to pass through, got %v", err)
	}
}

func TestSurvey_AskSelectWithoutChoices(t *testing.T) {
	_, err := NewSurvey().Ask(Question{Name: "x", Kind: KindSelect})
	if !errors.Is(err, ErrNoChoices) {
		t.Errorf("expected ErrNoChoices, got %v", err)
	}
}
