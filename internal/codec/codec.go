// Package codec maps tagged runtime values onto the three nullable value
// columns of a field value row and reconstructs them on read.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/hazuki/health-log-api/internal/models"
)

var (
	// ErrUnsupportedDataType is returned for data types without an
	// encoding rule. This includes "duration", which is declared in the
	// type domain but has no column mapping.
	ErrUnsupportedDataType = errors.New("codec: unsupported data type")
	// ErrInvalidValue is returned when a value cannot be represented in
	// the column the data type maps to.
	ErrInvalidValue = errors.New("codec: value does not match data type")
)

// Columns holds the storage representation of one value. Exactly one field
// is non-nil after a successful Encode.
type Columns struct {
	Text    *string
	Number  *float64
	Boolean *bool
}

// Encode converts a runtime value into its storage columns:
//
//	boolean              -> boolean column
//	scale_1_10, number   -> numeric column
//	severity, text       -> text column
func Encode(dataType models.FieldDataType, value any) (Columns, error) {
	switch dataType {
	case models.DataTypeBoolean:
		b, ok := value.(bool)
		if !ok {
			return Columns{}, fmt.Errorf("%w: %q wants a boolean, got %T", ErrInvalidValue, dataType, value)
		}
		return Columns{Boolean: &b}, nil

	case models.DataTypeScale1To10, models.DataTypeNumber:
		n, err := toNumber(value)
		if err != nil {
			return Columns{}, fmt.Errorf("%w: %q wants a number, got %T", ErrInvalidValue, dataType, value)
		}
		return Columns{Number: &n}, nil

	case models.DataTypeSeverity, models.DataTypeText:
		s, ok := value.(string)
		if !ok {
			return Columns{}, fmt.Errorf("%w: %q wants a string, got %T", ErrInvalidValue, dataType, value)
		}
		return Columns{Text: &s}, nil
	}

	return Columns{}, fmt.Errorf("%w: %q", ErrUnsupportedDataType, dataType)
}

// Decode reconstructs the runtime value from a stored row. The reader does
// not always know the original data type, so the populated column is the
// only discriminator; the boolean > number > text precedence must not
// change. Returns nil when every column is null.
func Decode(row models.FieldValue) any {
	switch {
	case row.BooleanValue != nil:
		return *row.BooleanValue
	case row.NumberValue != nil:
		return *row.NumberValue
	case row.TextValue != nil:
		return *row.TextValue
	}
	return nil
}

func toNumber(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(v, 64)
	}
	return 0, fmt.Errorf("not a number: %T", value)
}
