package coord

import (
	"math"
	"strconv"
	"strings"
)

// Int converts a dynamically typed coordinate component to int.
// All Go integer kinds are accepted. Anything else, floats in particular,
// fails with TypeMismatch, even if the value happens to be integral.
func Int(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if int64(int(n)) != n {
			return 0, Errorf(OutOfRange, "int", "%d does not fit into int", n)
		}
		return int(n), nil
	case uint:
		return fromUint(uint64(n))
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return fromUint(uint64(n))
	case uint64:
		return fromUint(n)
	case uintptr:
		return fromUint(uint64(n))
	case Index:
		return int(n), nil
	case float32, float64:
		return 0, Errorf(TypeMismatch, "int", "coordinate must be an integer, not %T (%v)", v, v)
	default:
		return 0, Errorf(TypeMismatch, "int", "coordinate must be an integer, not %T", v)
	}
}

func fromUint(n uint64) (int, error) {
	if n > math.MaxInt {
		return 0, Errorf(OutOfRange, "int", "%d does not fit into int", n)
	}
	return int(n), nil
}

// KeyOf converts a dynamically typed value into a Key. Integers become an
// Index; Points, [2]int and two-element []int or []any become a Point; Keys
// are passed through unchanged.
func KeyOf(v any) (Key, error) {
	switch k := v.(type) {
	case nil:
		return nil, Errorf(TypeMismatch, "key", "key must not be nil")
	case Key:
		return k, nil
	case [2]int:
		return Point{X: k[0], Y: k[1]}, nil
	case []int:
		if len(k) != 2 {
			return nil, Errorf(TypeMismatch, "key", "point key must have 2 components, has %d", len(k))
		}
		return Point{X: k[0], Y: k[1]}, nil
	case []any:
		if len(k) != 2 {
			return nil, Errorf(TypeMismatch, "key", "point key must have 2 components, has %d", len(k))
		}
		x, err := Int(k[0])
		if err != nil {
			return nil, err
		}
		y, err := Int(k[1])
		if err != nil {
			return nil, err
		}
		return Point{X: x, Y: y}, nil
	}
	i, err := Int(v)
	if err != nil {
		if KindOf(err) == TypeMismatch {
			return nil, Errorf(TypeMismatch, "key", "unsupported key type %T", v)
		}
		return nil, err
	}
	return Index(i), nil
}

// ParseKey parses the textual key notation:
//
//	12          Index
//	-1          Index (last cell)
//	3,4         Point
//	(3,-1)      Point, parentheses are optional
//	0,0:5,5     Range from (0,0) to (5,5), exclusive
//	:5,5        Range with default start
//	1,1:        Range with default stop
//	:           Range spanning the whole canvas
//	::2         Range with step 2 on both axes
//	0,0:8,8:2,1 Range with steps 2 (x) and 1 (y)
//
// Malformed input fails with TypeMismatch.
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, Errorf(TypeMismatch, "parse", "empty key")
	}
	if strings.Contains(s, ":") {
		return parseRange(s)
	}
	if strings.Contains(s, ",") || strings.HasPrefix(s, "(") {
		return parsePoint(s)
	}
	i, err := parseInt(s)
	if err != nil {
		return nil, err
	}
	return Index(i), nil
}

func parseRange(s string) (Range, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Range{}, Errorf(TypeMismatch, "parse", "range %q has more than three parts", s)
	}
	var rg Range
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i == 2 && !strings.Contains(part, ",") && !strings.HasPrefix(part, "(") {
			n, err := parseInt(part)
			if err != nil {
				return Range{}, err
			}
			rg = rg.Every(n)
			continue
		}
		p, err := parsePoint(part)
		if err != nil {
			return Range{}, err
		}
		switch i {
		case 0:
			rg.Start = Some(p)
		case 1:
			rg.Stop = Some(p)
		case 2:
			rg.Step = Some(p)
		}
	}
	return rg, nil
}

func parsePoint(s string) (Point, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return Point{}, Errorf(TypeMismatch, "parse", "unbalanced parentheses in %q", s)
		}
		s = s[1 : len(s)-1]
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(ys, ",") {
		return Point{}, Errorf(TypeMismatch, "parse", "point %q must have exactly 2 components", s)
	}
	x, err := parseInt(xs)
	if err != nil {
		return Point{}, err
	}
	y, err := parseInt(ys)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return 0, Errorf(OutOfRange, "parse", "%q does not fit into int", s)
	}
	if _, ferr := strconv.ParseFloat(s, 64); ferr == nil {
		return 0, Errorf(TypeMismatch, "parse", "coordinate must be an integer, not %q", s)
	}
	return 0, Errorf(TypeMismatch, "parse", "malformed number %q", s)
}
