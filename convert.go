package cmdparse

import (
	"encoding"
	"fmt"
	"strconv"
	"time"
)

const (
	defaultTimeFormat = "2006-01-02 15:04:05" // no TimeZone!
)

// convert parses value into a T. Supported are strings, booleans, all
// integer and float kinds, time.Duration, time.Time (in defaultTimeFormat),
// and any type whose pointer implements encoding.TextUnmarshaler.
func convert[T any](value string) (T, error) {
	var out T

	switch p := any(&out).(type) {
	case *string:
		*p = value

	case *bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return out, err
		}
		*p = b

	case *int:
		i, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			return out, err
		}
		*p = int(i)
	case *int8:
		i, err := strconv.ParseInt(value, 10, 8)
		if err != nil {
			return out, err
		}
		*p = int8(i)
	case *int16:
		i, err := strconv.ParseInt(value, 10, 16)
		if err != nil {
			return out, err
		}
		*p = int16(i)
	case *int32:
		i, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return out, err
		}
		*p = int32(i)
	case *int64:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return out, err
		}
		*p = i

	case *uint:
		u, err := strconv.ParseUint(value, 10, strconv.IntSize)
		if err != nil {
			return out, err
		}
		*p = uint(u)
	case *uint8:
		u, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return out, err
		}
		*p = uint8(u)
	case *uint16:
		u, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return out, err
		}
		*p = uint16(u)
	case *uint32:
		u, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return out, err
		}
		*p = uint32(u)
	case *uint64:
		u, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return out, err
		}
		*p = u

	case *float32:
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return out, err
		}
		*p = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return out, err
		}
		*p = f

	// Must come before the TextUnmarshaler case: time.Time implements it
	// with RFC 3339, but the command line uses defaultTimeFormat.
	case *time.Time:
		t, err := time.Parse(defaultTimeFormat, value)
		if err != nil {
			return out, err
		}
		*p = t

	case *time.Duration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return out, err
		}
		*p = d

	case encoding.TextUnmarshaler:
		if err := p.UnmarshalText([]byte(value)); err != nil {
			return out, err
		}

	default:
		return out, fmt.Errorf("%w: %T", ErrUnsupportedType, out)
	}

	return out, nil
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
