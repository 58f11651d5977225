package errcodes

// ErrorCode стабильный машиночитаемый код ошибки для транспортного слоя.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	InternalServerError ErrorCode = "InternalServerError"
	TimeoutExceeded     ErrorCode = "TimeoutExceeded"
	ValidationError     ErrorCode = "ValidationError"
	NotFound            ErrorCode = "NotFound"

	// Коды загрузчика датасета
	SourceNotFound    ErrorCode = "SourceNotFound"    // Файл или URL источника недоступен
	SourceUnparseable ErrorCode = "SourceUnparseable" // Источник есть, но содержимое битое
)
