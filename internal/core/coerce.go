package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// CoerceValue converts an incoming Value (as produced by literal parsing,
// already one of Null/Int/Float/Bool/Text/DateTime) against a column's
// declared ColumnType, per spec §4.4. Null always passes through
// unchanged. Any other mismatch that doesn't fit the declared type's
// coercion rule raises the standardized error message.
func CoerceValue(v Value, ct ColumnType) (Value, error) {
	if v.IsNull() {
		return Null, nil
	}

	switch ct.Name {
	case "INT":
		return coerceInt(v, ct)
	case "FLOAT":
		return coerceFloat(v, ct)
	case "BOOLEAN":
		return coerceBool(v), nil
	case "DATETIME":
		return coerceDateTime(v), nil
	case "VARCHAR":
		return coerceVarchar(v, ct)
	default:
		return Value{}, fmt.Errorf("invalid value '%s' for type '%s'", v.String(), ct.String())
	}
}

func invalidValueErr(v Value, ct ColumnType) error {
	return fmt.Errorf("invalid value '%s' for type '%s'", v.String(), ct.String())
}

func coerceInt(v Value, ct ColumnType) (Value, error) {
	switch v.Kind() {
	case KindInt:
		return v, nil
	case KindText:
		s, _ := v.AsText()
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return Value{}, invalidValueErr(v, ct)
		}
		return IntValue(i), nil
	default:
		return Value{}, invalidValueErr(v, ct)
	}
}

func coerceFloat(v Value, ct ColumnType) (Value, error) {
	switch v.Kind() {
	case KindInt:
		i, _ := v.AsInt()
		return FloatValue(float64(i)), nil
	case KindFloat:
		return v, nil
	case KindText:
		s, _ := v.AsText()
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Value{}, invalidValueErr(v, ct)
		}
		return FloatValue(f), nil
	default:
		return Value{}, invalidValueErr(v, ct)
	}
}

// trueTokens mirrors the source's str(value).lower() in ('true','1','yes','on').
var trueTokens = map[string]bool{"true": true, "1": true, "yes": true, "on": true}

func coerceBool(v Value) Value {
	if b, ok := v.AsBool(); ok {
		return BoolValue(b)
	}
	return BoolValue(trueTokens[strings.ToLower(v.String())])
}

func coerceDateTime(v Value) Value {
	if s, ok := v.AsText(); ok {
		return DateTimeValue(s)
	}
	if s, ok := v.AsDateTime(); ok {
		return DateTimeValue(s)
	}
	return DateTimeValue(v.String())
}

func coerceVarchar(v Value, ct ColumnType) (Value, error) {
	s := v.String()
	if utf8.RuneCountInString(s) > ct.Varchar {
		return Value{}, invalidValueErr(v, ct)
	}
	return TextValue(s), nil
}
