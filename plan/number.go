// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is numeric plan text kept verbatim until the curve that reads it
// decides whether it is an integer or a float. Underscores may separate
// digits.
type Number string

func (n Number) IsZero() bool {
	return n == ""
}

func (n Number) clean() (string, error) {
	s := strings.ReplaceAll(strings.TrimSpace(string(n)), "_", "")
	if s == "" {
		return "", ErrMissingValue
	}
	return s, nil
}

func (n Number) Uint64() (uint64, error) {
	s, err := n.clean()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidNumber, string(n))
	}
	return v, nil
}

func (n Number) Float64() (float64, error) {
	s, err := n.clean()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a float", ErrInvalidNumber, string(n))
	}
	return v, nil
}

func (n *Number) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*n = ""
	case string:
		*n = Number(v)
	case int:
		*n = Number(strconv.Itoa(v))
	case int64:
		*n = Number(strconv.FormatInt(v, 10))
	case uint64:
		*n = Number(strconv.FormatUint(v, 10))
	case float64:
		*n = Number(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		return fmt.Errorf("%w: unexpected %T", ErrInvalidNumber, raw)
	}
	return nil
}

// UnmarshalJSON keeps the literal text so integers beyond 2^53 are not
// rounded through float64.
func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*n = ""
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*n = Number(str)
	default:
		*n = Number(s)
	}
	return nil
}
