package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ValueKind identifica a variante carregada por um Value
type ValueKind string

const (
	ValueNull    ValueKind = "null"
	ValueInteger ValueKind = "integer"
	ValueNumber  ValueKind = "number"
	ValueText    ValueKind = "text"
	ValueBool    ValueKind = "bool"
	ValueTime    ValueKind = "time"
)

// Value é um valor tipado vindo do banco. Apenas o campo correspondente a Kind é válido.
type Value struct {
	Kind   ValueKind
	Int    int64
	Number float64
	Text   string
	Bool   bool
	Time   time.Time
}

func NullValue() Value            { return Value{Kind: ValueNull} }
func IntValue(v int64) Value      { return Value{Kind: ValueInteger, Int: v} }
func NumberValue(v float64) Value { return Value{Kind: ValueNumber, Number: v} }
func TextValue(v string) Value    { return Value{Kind: ValueText, Text: v} }
func BoolValue(v bool) Value      { return Value{Kind: ValueBool, Bool: v} }
func TimeValue(v time.Time) Value { return Value{Kind: ValueTime, Time: v} }

// numericTypes são os tipos que o lib/pq entrega como []byte mas representam números
var numericTypes = map[string]bool{
	"NUMERIC": true,
	"DECIMAL": true,
}

// NewValue converte o valor bruto do driver para um Value usando o nome do tipo da coluna
func NewValue(raw any, databaseType string) Value {
	dbType := strings.ToUpper(databaseType)

	switch v := raw.(type) {
	case nil:
		return NullValue()
	case int64:
		return IntValue(v)
	case int32:
		return IntValue(int64(v))
	case int:
		return IntValue(int64(v))
	case float64:
		return NumberValue(v)
	case float32:
		return NumberValue(float64(v))
	case bool:
		return BoolValue(v)
	case time.Time:
		return TimeValue(v)
	case []byte:
		return textOrNumber(string(v), dbType)
	case string:
		return textOrNumber(v, dbType)
	default:
		return TextValue(fmt.Sprint(v))
	}
}

func textOrNumber(s string, dbType string) Value {
	if numericTypes[dbType] {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return NumberValue(f)
		}
	}
	return TextValue(s)
}

func (v Value) IsNull() bool {
	return v.Kind == ValueNull || v.Kind == ""
}

// Float retorna o valor numérico quando o Value é inteiro ou decimal
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case ValueInteger:
		return float64(v.Int), true
	case ValueNumber:
		return v.Number, true
	}
	return 0, false
}

// Interface devolve o valor como tipo nativo do Go
func (v Value) Interface() any {
	switch v.Kind {
	case ValueInteger:
		return v.Int
	case ValueNumber:
		return v.Number
	case ValueText:
		return v.Text
	case ValueBool:
		return v.Bool
	case ValueTime:
		return v.formatTime()
	}
	return nil
}

func (v Value) String() string {
	switch v.Kind {
	case ValueInteger:
		return strconv.FormatInt(v.Int, 10)
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case ValueText:
		return v.Text
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueTime:
		return v.formatTime()
	}
	return "null"
}

// datas sem horário são exibidas apenas como dia
func (v Value) formatTime() string {
	t := v.Time
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == ValueNumber && (math.IsNaN(v.Number) || math.IsInf(v.Number, 0)) {
		return []byte("null"), nil
	}
	return json.Marshal(v.Interface())
}

// Row mapeia o nome da coluna para o valor tipado
type Row map[string]Value

// QueryResult é o resultado de uma consulta, na ordem devolvida pelo banco
type QueryResult struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func (r *QueryResult) RowCount() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}
