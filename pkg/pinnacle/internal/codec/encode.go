package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sort"

	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
)

// Marshal encodes a record or union to its wire form.
// Fields are written in declaration order, absent fields are omitted and explicit nulls
// are kept. Unknown keys preserved from decoding are appended last.
// It fails when a required field is missing or a non nullable field holds null.
func Marshal(v any) ([]byte, error) {
	rv, err := indirect(reflect.ValueOf(v))
	if err != nil {
		return nil, fmt.Errorf("cannot marshal %T: %v", v, err)
	}
	return encodeValue(rv, rootPath)
}

func encodeValue(v reflect.Value, path string) ([]byte, error) {
	if !v.IsValid() {
		return []byte("null"), nil
	}
	t := v.Type()
	if u, ok := unionOf(t); ok {
		return u.encode(v, path)
	}
	if isRecord(t) {
		return encodeRecord(v, path)
	}

	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			break
		}
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i := range v.Len() {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := encodeValue(v.Index(i), indexPath(path, i))
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil

	case reflect.Map:
		if t.Key().Kind() != reflect.String || v.IsNil() {
			break
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeKey(&buf, k.String())
			b, err := encodeValue(v.MapIndex(k), joinPath(path, k.String()))
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil

	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return []byte("null"), nil
		}
		return encodeValue(v.Elem(), path)
	}

	b, err := json.Marshal(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("field %s: %v", path, err)
	}
	return b, nil
}

func encodeRecord(v reflect.Value, path string) ([]byte, error) {
	ri, err := recordOf(v.Type())
	if err != nil {
		return nil, err
	}
	v = addressable(v)
	meta := metaOf(v)

	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	for _, fi := range ri.fields {
		fv := v.Field(fi.index)
		fpath := joinPath(path, fi.key)

		var b []byte
		switch {
		case fi.optional:
			f := fv.Interface().(fieldValue)
			switch {
			case !f.IsPresent():
				if fi.required {
					return nil, fmt.Errorf("%w: field %s is required", ErrValidation, fpath)
				}
				continue
			case f.IsNull():
				if !fi.nullable {
					return nil, fmt.Errorf("%w: field %s cannot be null", ErrValidation, fpath)
				}
				b = []byte("null")
			default:
				if b, err = encodeValue(reflect.ValueOf(f.Any()), fpath); err != nil {
					return nil, err
				}
			}
		default:
			if fi.required && requiredMissing(meta, fi, fv) {
				return nil, fmt.Errorf("%w: field %s is required", ErrValidation, fpath)
			}
			if fv.Kind() == reflect.Slice && fv.IsNil() {
				b = []byte("[]")
			} else if fv.Kind() == reflect.Map && fv.IsNil() {
				b = []byte("{}")
			} else if b, err = encodeValue(fv, fpath); err != nil {
				return nil, err
			}
		}

		if n > 0 {
			buf.WriteByte(',')
		}
		writeKey(&buf, fi.key)
		buf.Write(b)
		n++
	}

	for _, e := range meta.Extras() {
		if ri.declares(e.Key) {
			continue
		}
		if !json.Valid(e.Value) {
			return nil, fmt.Errorf("unknown key %s: invalid raw JSON", joinPath(path, e.Key))
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		writeKey(&buf, e.Key)
		buf.Write(e.Value)
		n++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// requiredMissing reports whether a required field that is not a field.Field counts as
// not provided. Decoded records rely on the keys seen in the payload. Records built in
// code count an empty string or an empty union as missing.
func requiredMissing(meta *field.Meta, fi fieldInfo, fv reflect.Value) bool {
	if meta.Decoded() {
		return fv.IsZero() && slices.Contains(meta.Missing(), fi.key)
	}
	if _, ok := unionOf(fv.Type()); ok {
		return fv.Field(0).IsNil()
	}
	return fv.Kind() == reflect.String && fv.Len() == 0
}

func writeKey(buf *bytes.Buffer, key string) {
	b, _ := json.Marshal(key)
	buf.Write(b)
	buf.WriteByte(':')
}
