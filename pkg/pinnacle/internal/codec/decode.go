package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/tidwall/gjson"

	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
)

// Unmarshal decodes data into the record or union pointed to by v.
//
// Declared fields are decoded by wire key. Missing keys leave their field absent and null
// leaves it null. Unknown keys and the raw payload are kept in the record Meta.
// Required fields are not enforced here, see Validate.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("cannot unmarshal into %T: need a non nil pointer", v)
	}
	if !json.Valid(data) {
		return fmt.Errorf("%w: invalid JSON", ErrValidation)
	}
	return decodeValue(data, rv.Elem(), rootPath)
}

func decodeValue(data []byte, v reflect.Value, path string) error {
	t := v.Type()
	if u, ok := unionOf(t); ok {
		if err := u.decode(data, v, path); err != nil {
			return wrapPath(path, err)
		}
		return nil
	}
	if isRecord(t) {
		return decodeRecordAt(data, v, "", path)
	}

	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null && !acceptsNull(t) {
		return typeError(path)
	}
	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			break
		}
		if !res.IsArray() {
			return typeError(path)
		}
		elems := res.Array()
		s := reflect.MakeSlice(t, len(elems), len(elems))
		for i, e := range elems {
			if err := decodeValue([]byte(e.Raw), s.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
		v.Set(s)
		return nil

	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			break
		}
		if !res.IsObject() {
			return typeError(path)
		}
		m := reflect.MakeMap(t)
		var err error
		res.ForEach(func(k, e gjson.Result) bool {
			elem := reflect.New(t.Elem()).Elem()
			if err = decodeValue([]byte(e.Raw), elem, joinPath(path, k.String())); err != nil {
				return false
			}
			m.SetMapIndex(reflect.ValueOf(k.String()).Convert(t.Key()), elem)
			return true
		})
		if err != nil {
			return err
		}
		v.Set(m)
		return nil
	}

	if err := json.Unmarshal(data, v.Addr().Interface()); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) {
			return typeError(path)
		}
		return fieldError{fmt.Errorf("field %s: %v", path, err)}
	}
	return nil
}

// acceptsNull reports whether t has a Go value standing for a JSON null.
func acceptsNull(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return true
	}
	return t == reflect.TypeFor[json.RawMessage]()
}

// decodeRecordAt decodes the object data into the record v. skip names a key which is not
// kept as unknown, used for the discriminant of union members.
func decodeRecordAt(data []byte, v reflect.Value, skip, path string) error {
	ri, err := recordOf(v.Type())
	if err != nil {
		return err
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return wrapPath(path, ErrNotObject)
	}

	v.Set(reflect.Zero(v.Type()))
	seen := make([]bool, len(ri.fields))
	var extras []field.Extra
	res.ForEach(func(k, val gjson.Result) bool {
		key := k.String()
		idx, ok := ri.byKey[key]
		if !ok {
			if skip == "" || key != skip {
				extras = append(extras, field.Extra{Key: key, Value: json.RawMessage(val.Raw)})
			}
			return true
		}
		seen[idx] = true
		fi := ri.fields[idx]
		err = decodeField([]byte(val.Raw), v.Field(fi.index), fi, joinPath(path, key))
		return err == nil
	})
	if err != nil {
		return err
	}

	var missing []string
	for i, fi := range ri.fields {
		if fi.required && !seen[i] {
			missing = append(missing, fi.key)
		}
	}
	raw := append(json.RawMessage(nil), data...)
	metaOf(v).Reset(raw, extras, missing)
	return nil
}

// decodeField decodes a declared field. Only field.Field can hold null, any other field
// sent as null is reported as a type mismatch.
func decodeField(data []byte, fv reflect.Value, fi fieldInfo, path string) error {
	if !fi.optional {
		return decodeValue(data, fv, path)
	}

	setter := fv.Addr().Interface().(fieldSetter)
	if gjson.ParseBytes(data).Type == gjson.Null {
		return setter.SetAny(nil)
	}
	inner := reflect.New(fi.typ).Elem()
	if err := decodeValue(data, inner, path); err != nil {
		return err
	}
	return setter.SetAny(inner.Interface())
}

func typeError(path string) error {
	return fieldError{fmt.Errorf("%w: passed value for field %s is not the expected type", ErrValidation, path)}
}

// fieldError marks an error whose message already names the path of its field.
type fieldError struct{ err error }

func (e fieldError) Error() string { return e.err.Error() }
func (e fieldError) Unwrap() error { return e.err }

// wrapPath prefixes err with the field path unless a nested field already did.
func wrapPath(path string, err error) error {
	var fe fieldError
	if errors.As(err, &fe) {
		return err
	}
	return fieldError{fmt.Errorf("field %s: %w", path, err)}
}
