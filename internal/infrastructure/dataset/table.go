package dataset

// Row одна строка таблицы: имя колонки -> сырое строковое значение.
type Row map[string]string

// Table разобранный табличный источник. Порядок строк исходный, имена колонок
// не переименовываются.
type Table struct {
	Columns []string
	Rows    []Row
}
