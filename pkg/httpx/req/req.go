package req

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"bnb_finder/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return &requestError{
			code:        errcodes.ValidationError,
			description: "Invalid JSON",
			cause:       fmt.Errorf("json.Decode: %w", err),
		}
	}

	return Validate(r.Context(), dest)
}

// Validate прогоняет структуру (тело запроса или query-параметры) через validator.
func Validate(ctx context.Context, v any) error {
	if err := validate.StructCtx(ctx, v); err != nil {
		return &requestError{
			code:        errcodes.ValidationError,
			description: err.Error(),
			cause:       err,
		}
	}

	return nil
}

type requestError struct {
	code        errcodes.ErrorCode
	description string
	cause       error
}

func (e *requestError) Error() string {
	return fmt.Sprintf("%s: %v", e.code, e.cause)
}

func (e *requestError) Unwrap() error {
	return e.cause
}

func (e *requestError) ErrorCode() errcodes.ErrorCode {
	return e.code
}

func (e *requestError) Description() string {
	return e.description
}
