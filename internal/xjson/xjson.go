// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package xjson

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// Object is a decoded JSON object which keeps the order of its members.
type Object struct {
	Keys   []string
	Values map[string]any
}

// Len returns the number of members in o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Keys)
}

// Decode reads exactly one JSON value from r.
func Decode(r io.Reader) (any, error) {
	dec := jsontext.NewDecoder(r)
	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch _, err := dec.ReadToken(); {
	case err == nil:
		return nil, errors.New("unexpected data after top-level value")
	case !errors.Is(err, io.EOF):
		return nil, err
	}

	return v, nil
}

// DecodeBytes is like [Decode] but reads from b.
func DecodeBytes(b []byte) (any, error) {
	return Decode(bytes.NewReader(b))
}

func decodeValue(dec *jsontext.Decoder) (any, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}

	switch tok.Kind() {
	case 'n':
		return nil, nil
	case 't', 'f':
		return tok.Bool(), nil
	case '"':
		return tok.String(), nil
	case '0':
		return tok.Float(), nil
	case '[':
		arr := []any{}
		for dec.PeekKind() != ']' {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return arr, nil
	case '{':
		obj := &Object{Values: make(map[string]any)}
		for dec.PeekKind() != '}' {
			name, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			key := name.String()
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			if _, ok := obj.Values[key]; !ok {
				obj.Keys = append(obj.Keys, key)
			}
			obj.Values[key] = v
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %q", tok.Kind())
	}
}
