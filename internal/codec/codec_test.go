package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazuki/health-log-api/internal/models"
)

func columnsToRow(c Columns) models.FieldValue {
	return models.FieldValue{
		TextValue:    c.Text,
		NumberValue:  c.Number,
		BooleanValue: c.Boolean,
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		dataType models.FieldDataType
		value    any
		want     any
	}{
		{"boolean true", models.DataTypeBoolean, true, true},
		{"boolean false", models.DataTypeBoolean, false, false},
		{"number zero", models.DataTypeNumber, 0.0, 0.0},
		{"number negative", models.DataTypeNumber, -1.5, -1.5},
		{"number int input", models.DataTypeNumber, 42, 42.0},
		{"scale", models.DataTypeScale1To10, 7.0, 7.0},
		{"severity", models.DataTypeSeverity, "severe", "severe"},
		{"text", models.DataTypeText, "had pizza for lunch", "had pizza for lunch"},
		{"text empty-ish", models.DataTypeText, " ", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, err := Encode(tt.dataType, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Decode(columnsToRow(cols)))
		})
	}
}

func TestEncode_PopulatesExactlyOneColumn(t *testing.T) {
	cols, err := Encode(models.DataTypeBoolean, true)
	require.NoError(t, err)
	assert.NotNil(t, cols.Boolean)
	assert.Nil(t, cols.Number)
	assert.Nil(t, cols.Text)

	cols, err = Encode(models.DataTypeScale1To10, 3.0)
	require.NoError(t, err)
	assert.NotNil(t, cols.Number)
	assert.Nil(t, cols.Boolean)
	assert.Nil(t, cols.Text)

	cols, err = Encode(models.DataTypeSeverity, "mild")
	require.NoError(t, err)
	assert.NotNil(t, cols.Text)
	assert.Nil(t, cols.Boolean)
	assert.Nil(t, cols.Number)
}

func TestEncode_NumericStringIsParsed(t *testing.T) {
	cols, err := Encode(models.DataTypeNumber, "6.5")
	require.NoError(t, err)
	require.NotNil(t, cols.Number)
	assert.Equal(t, 6.5, *cols.Number)
}

func TestEncode_UnsupportedDataType(t *testing.T) {
	_, err := Encode(models.DataTypeDuration, 90)
	assert.ErrorIs(t, err, ErrUnsupportedDataType)

	_, err = Encode(models.FieldDataType("emoji"), "x")
	assert.ErrorIs(t, err, ErrUnsupportedDataType)
}

func TestEncode_ValueMismatch(t *testing.T) {
	_, err := Encode(models.DataTypeBoolean, "yes")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = Encode(models.DataTypeNumber, "not a number")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = Encode(models.DataTypeText, 12)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestDecode_Precedence(t *testing.T) {
	b := true
	n := 4.0
	s := "fallback"

	// The boolean column wins over everything, number wins over text.
	row := models.FieldValue{BooleanValue: &b, NumberValue: &n, TextValue: &s}
	assert.Equal(t, true, Decode(row))

	row = models.FieldValue{NumberValue: &n, TextValue: &s}
	assert.Equal(t, 4.0, Decode(row))

	row = models.FieldValue{TextValue: &s}
	assert.Equal(t, "fallback", Decode(row))

	assert.Nil(t, Decode(models.FieldValue{}))
}
