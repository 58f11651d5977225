package entity

// Restaurant строка внешнего каталога ресторанов, берётся как есть,
// производных полей нет. Details хранит остальные колонки источника.
type Restaurant struct {
	Name     string            `json:"name"`
	Location string            `json:"location"`
	Cuisine  string            `json:"cuisine"`
	Details  map[string]string `json:"details,omitempty"`
}
