package value

// Selector значение фильтра-селектора. Зарезервированное значение "All"
// (или пустая строка, когда параметр не передан) отключает фильтр по этому
// измерению. Сравнение с данными точное и регистрозависимое.
type Selector string

const SelectorAll Selector = "All"

func (s Selector) String() string {
	return string(s)
}

// IsAll сообщает, что фильтровать по этому измерению не нужно.
func (s Selector) IsAll() bool {
	return s == SelectorAll || s == ""
}

// Matches проверяет значение строки против селектора.
func (s Selector) Matches(v string) bool {
	return s.IsAll() || string(s) == v
}
