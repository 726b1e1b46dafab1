package primitive

import (
	"fmt"
	"strconv"
)

// Convert coerces a scalar to the given primitive kind. Already-typed values
// pass through unchanged, so converting twice is a no-op. A value that cannot
// be parsed as the target kind is returned unchanged alongside an error.
func Convert(v any, kind KindEnum) (any, error) {
	switch kind {
	case KindText:
		return convertText(v), nil
	case KindInteger:
		return convertInteger(v)
	case KindReal:
		return convertReal(v)
	case KindBoolean:
		return convertBoolean(v)
	default:
		return v, fmt.Errorf("cannot convert to invalid kind %d", kind)
	}
}

func convertText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func convertInteger(v any) (any, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		// integer(real) truncates toward zero
		return int64(n), nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return v, fmt.Errorf("parse %q as integer: %w", n, err)
		}
		return i, nil
	default:
		return v, fmt.Errorf("cannot convert %T to integer", v)
	}
}

func convertReal(v any) (any, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return v, fmt.Errorf("parse %q as real: %w", n, err)
		}
		return f, nil
	default:
		return v, fmt.Errorf("cannot convert %T to real", v)
	}
}

func convertBoolean(v any) (any, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return v, fmt.Errorf("parse %q as boolean: %w", b, err)
		}
		return parsed, nil
	default:
		return v, fmt.Errorf("cannot convert %T to boolean", v)
	}
}
