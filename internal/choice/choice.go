package choice

// Подписи для отсутствующего руководителя
const (
	None          = "None"
	NotApplicable = "N/A"
)

// Choice - пункт списка выбора: подпись для пользователя и значение для кода
type Choice struct {
	Label string
	Value any
}

// ToChoices превращает строки выборки в пункты списка
func ToChoices[T any](rows []T, label func(T) string, value func(T) any) []Choice {
	choices := make([]Choice, 0, len(rows))
	for _, row := range rows {
		choices = append(choices, Choice{Label: label(row), Value: value(row)})
	}
	return choices
}

// WithNone добавляет в начало пункт "None" со значением nil
func WithNone(choices []Choice) []Choice {
	return append([]Choice{{Label: None, Value: nil}}, choices...)
}

// Labels возвращает подписи пунктов в исходном порядке
func Labels(choices []Choice) []string {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	return labels
}

// ManagerLabel возвращает имя руководителя для вывода или "N/A"
func ManagerLabel(firstName, lastName *string) string {
	if firstName == nil || lastName == nil {
		return NotApplicable
	}
	return *firstName + " " + *lastName
}
