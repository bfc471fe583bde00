// Package jsonbridge converts between SimpleScript runtime values and JSON
// text for the JSON_ENCODE/JSON_ENCODE_PRETTY/JSON_DECODE built-ins. It has
// no dependency on the evaluator or builtins packages — just runtime.Value
// and the interp concrete types — so it can be unit-tested standalone.
package jsonbridge

import (
	"errors"
	"strings"

	"github.com/LaputanMachines/simple-script/internal/interp"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ErrNotSerializable is returned by Encode for a Function/BuiltInFunction
// argument — the value model has no JSON representation for a callable.
var ErrNotSerializable = errors.New("value is not JSON-serializable")

// ErrInvalidJSON is returned by Decode for text that fails JSON validation.
var ErrInvalidJSON = errors.New("invalid JSON")

// ErrUnrepresentable is returned by Decode when the JSON text contains an
// object — SimpleScript has no associative/record value to decode one into.
var ErrUnrepresentable = errors.New("JSON objects have no SimpleScript representation")

// Encode renders v as compact JSON text: Numbers as JSON numbers, Strings
// as JSON strings (escaped via sjson), Lists as JSON arrays (recursively,
// built by repeated sjson.SetRaw appends).
func Encode(v runtime.Value) (string, error) {
	return encode(v)
}

// EncodePretty is Encode followed by tidwall/pretty indentation.
func EncodePretty(v runtime.Value) (string, error) {
	raw, err := encode(v)
	if err != nil {
		return "", err
	}
	return string(pretty.Pretty([]byte(raw))), nil
}

func encode(v runtime.Value) (string, error) {
	switch val := v.(type) {
	case *interp.Number:
		return val.String(), nil
	case *interp.String:
		doc, err := sjson.Set(`{}`, "v", val.Value)
		if err != nil {
			return "", err
		}
		return gjson.Get(doc, "v").Raw, nil
	case *interp.List:
		arr := "[]"
		for _, el := range val.Elements {
			raw, err := encode(el)
			if err != nil {
				return "", err
			}
			var err2 error
			arr, err2 = sjson.SetRaw(arr, "-1", raw)
			if err2 != nil {
				return "", err2
			}
		}
		return arr, nil
	default:
		return "", ErrNotSerializable
	}
}

// Decode parses text as JSON and converts it to a runtime.Value: arrays
// become Lists, numbers become Numbers (integer-shaped when the raw text
// carries no '.'/'e'/'E'), strings become Strings, and true/false/null
// collapse to Number 1/0/0 — the uniform truthiness the value model uses
// everywhere else.
func Decode(text string) (runtime.Value, error) {
	if !gjson.Valid(text) {
		return nil, ErrInvalidJSON
	}
	return decode(gjson.Parse(text))
}

func decode(r gjson.Result) (runtime.Value, error) {
	switch r.Type {
	case gjson.Number:
		isInt := !strings.ContainsAny(r.Raw, ".eE")
		return interp.NewNumber(r.Num, isInt), nil
	case gjson.String:
		return interp.NewString(r.Str), nil
	case gjson.True:
		return interp.NewInt(1), nil
	case gjson.False, gjson.Null:
		return interp.NewInt(0), nil
	case gjson.JSON:
		if r.IsArray() {
			var elements []runtime.Value
			var elemErr error
			r.ForEach(func(_, val gjson.Result) bool {
				elem, err := decode(val)
				if err != nil {
					elemErr = err
					return false
				}
				elements = append(elements, elem)
				return true
			})
			if elemErr != nil {
				return nil, elemErr
			}
			return interp.NewList(elements), nil
		}
		return nil, ErrUnrepresentable
	default:
		return nil, ErrUnrepresentable
	}
}
