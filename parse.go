package minijson

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse parses input into a Value. Surrounding whitespace is ignored and the
// first significant character selects the variant:
//
//	"...    Text, taken verbatim between the outer quotes
//	{...}   Object of comma separated key:value entries
//	true    Boolean (likewise false)
//	null    Null
//	other   Number
//
// Object entries are split on every comma and on the first colon, with no
// awareness of nesting, so nested objects and strings holding commas do not
// parse as nested values. Duplicate keys keep the last value.
//
// Errors are one of the Err* sentinels and are returned unwrapped, including
// those from nested values.
func Parse(input string) (Value, error) {
	input = strings.TrimSpace(input)
	switch {
	case input == "":
		return nil, ErrEmptyInput
	case input[0] == '"':
		return parseString(input)
	case input[0] == '{':
		if len(input) < 2 {
			return nil, ErrInvalidObjectEntry
		}
		// The closing brace is assumed, not checked.
		_, size := utf8.DecodeLastRuneInString(input)
		return parseObject(input[1 : len(input)-size])
	case input == "true" || input == "false":
		return parseBoolean(input)
	case input == "null":
		return Null{}, nil
	default:
		return parseNumber(input)
	}
}

func parseString(input string) (Value, error) {
	if len(input) < 2 || input[0] != '"' || input[len(input)-1] != '"' {
		return nil, ErrInvalidStringFormat
	}
	return Text(input[1 : len(input)-1]), nil
}

func parseNumber(input string) (Value, error) {
	if !isDecimal(input) {
		return nil, ErrInvalidNumberFormat
	}
	n, err := strconv.ParseFloat(input, 64)
	if err != nil {
		// Out of range literals still parse, to ±Inf.
		if !errors.Is(err, strconv.ErrRange) {
			return nil, ErrInvalidNumberFormat
		}
	}
	return Number(n), nil
}

// isDecimal rejects the hex and digit separator forms ParseFloat accepts
// beyond decimal literals.
func isDecimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X')
}

func parseBoolean(input string) (Value, error) {
	switch input {
	case "true":
		return Boolean(true), nil
	case "false":
		return Boolean(false), nil
	default:
		return nil, ErrInvalidBooleanFormat
	}
}

// parseObject parses the text between an object's braces.
func parseObject(body string) (Value, error) {
	if strings.TrimSpace(body) == "" {
		return Object{}, nil
	}
	entries := make(map[string]Value)
	for pair := range strings.SplitSeq(body, ",") {
		key, val, ok := strings.Cut(pair, ":")
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		if !ok || key == "" || val == "" {
			return nil, ErrInvalidObjectEntry
		}
		v, err := Parse(val)
		if err != nil {
			return nil, err
		}
		entries[strings.Trim(key, `"`)] = v
	}
	return Object{entries: entries}, nil
}
