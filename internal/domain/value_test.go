package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValue(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		raw    any
		dbType string
		want   Value
	}{
		{name: "nulo", raw: nil, want: NullValue()},
		{name: "inteiro", raw: int64(42), dbType: "INT8", want: IntValue(42)},
		{name: "decimal", raw: 150.5, dbType: "FLOAT8", want: NumberValue(150.5)},
		{name: "numeric em bytes", raw: []byte("150.25"), dbType: "numeric", want: NumberValue(150.25)},
		{name: "texto em bytes", raw: []byte("abc"), dbType: "TEXT", want: TextValue("abc")},
		{name: "numeric inválido vira texto", raw: []byte("n/a"), dbType: "NUMERIC", want: TextValue("n/a")},
		{name: "booleano", raw: true, dbType: "BOOL", want: BoolValue(true)},
		{name: "data", raw: day, dbType: "DATE", want: TimeValue(day)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewValue(tt.raw, tt.dbType))
		})
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	row := Row{
		"date":        TimeValue(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		"item_id":     IntValue(3),
		"message":     NullValue(),
		"total_sales": NumberValue(150),
		"eligible":    BoolValue(false),
	}

	out, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-06-01","item_id":3,"message":null,"total_sales":150,"eligible":false}`, string(out))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "150", NumberValue(150).String())
	assert.Equal(t, "0.5", NumberValue(0.5).String())
	assert.Equal(t, "null", NullValue().String())
	assert.Equal(t, "2025-06-01T10:30:00Z", TimeValue(time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)).String())
}

func TestValue_Float(t *testing.T) {
	f, ok := IntValue(2).Float()
	assert.True(t, ok)
	assert.Equal(t, 2.0, f)

	_, ok = TextValue("2").Float()
	assert.False(t, ok)
}
