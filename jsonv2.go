package minijson

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshalers returns unmarshalers decoding standard JSON into a *Value:
//   - objects -> Object (later duplicates are rejected by jsontext)
//   - strings -> Text, with escape sequences resolved
//   - numbers -> Number
//   - true/false -> Boolean
//   - null -> Null
//
// Arrays have no Value form and fail with ErrUnsupportedArray.
func Unmarshalers() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *Value) error {
		switch dec.PeekKind() {
		case '{':
			obj, err := decodeObject(dec)
			if err != nil {
				return err
			}
			*v = obj
			return nil
		case '[':
			return fmt.Errorf("read value: %w", ErrUnsupportedArray)
		}

		tok, err := dec.ReadToken()
		if err != nil {
			return fmt.Errorf("read value: %w", err)
		}
		switch tok.Kind() {
		case '"':
			*v = Text(tok.String())
		case '0':
			*v = Number(tok.Float())
		case 't', 'f':
			*v = Boolean(tok.Bool())
		case 'n':
			*v = Null{}
		default:
			return fmt.Errorf("read value: unexpected token %v", tok.Kind())
		}
		return nil
	})
}

// Marshalers returns marshalers encoding Object and Null so that any Value
// marshals to standard JSON. Object members are written in ascending key
// order. Text, Number and Boolean use the default string, float and bool
// encodings, so text is escaped as needed.
func Marshalers() *json.Marshalers {
	return json.JoinMarshalers(
		json.MarshalToFunc(encodeObject),
		json.MarshalToFunc(func(enc *jsontext.Encoder, _ Null) error {
			return enc.WriteToken(jsontext.Null)
		}),
	)
}

// FromJSON decodes a standard JSON document into a Value.
func FromJSON(data []byte) (Value, error) {
	var v Value
	if err := json.Unmarshal(data, &v, json.WithUnmarshalers(Unmarshalers())); err != nil {
		return nil, err
	}
	return v, nil
}

// ToJSON encodes v as standard JSON. Unlike Format, text is escaped, and
// non-finite numbers are an error.
func ToJSON(v Value) ([]byte, error) {
	return json.Marshal(v, json.WithMarshalers(Marshalers()))
}

// decodeObject decodes a JSON object into an Object. Member values are decoded
// through the decoder's own options, so they reach Unmarshalers again.
func decodeObject(dec *jsontext.Decoder) (Object, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return Object{}, fmt.Errorf("read object open: %w", err)
	}
	entries := make(map[string]Value)
	for dec.PeekKind() != '}' {
		var k string
		if err := json.UnmarshalDecode(dec, &k); err != nil {
			return Object{}, fmt.Errorf("read object key: %w", err)
		}
		var v Value
		if err := json.UnmarshalDecode(dec, &v); err != nil {
			return Object{}, fmt.Errorf("read value for key %q: %w", k, err)
		}
		entries[k] = v
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return Object{}, fmt.Errorf("read object close: %w", err)
	}
	if len(entries) == 0 {
		return Object{}, nil
	}
	return Object{entries: entries}, nil
}

func encodeObject(enc *jsontext.Encoder, o Object) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for k, v := range o.All() {
		if err := enc.WriteToken(jsontext.String(k)); err != nil {
			return fmt.Errorf("write object key: %w", err)
		}
		if v == nil {
			v = Null{}
		}
		if err := json.MarshalEncode(enc, v); err != nil {
			return fmt.Errorf("write value for key %q: %w", k, err)
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}
