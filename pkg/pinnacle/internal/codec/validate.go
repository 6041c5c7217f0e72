package codec

import (
	"fmt"
	"math"
	"reflect"

	"github.com/tidwall/gjson"
)

// Validate checks a record or union built in code or decoded from a payload.
// Required fields must be provided, non nullable fields cannot be null and enums must hold
// a known value. Nested records, slices, maps and unions are checked recursively.
// The first failure is returned and wraps ErrValidation.
func Validate(v any) error {
	rv, err := indirect(reflect.ValueOf(v))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return validateValue(rv, rootPath)
}

func validateValue(v reflect.Value, path string) error {
	if !v.IsValid() {
		return nil
	}
	t := v.Type()
	if u, ok := unionOf(t); ok {
		active := v.Field(0)
		if _, err := u.variantOf(active); err != nil {
			return fmt.Errorf("field %s: %w", path, err)
		}
		return validateValue(active.Elem(), path)
	}
	if isRecord(t) {
		return validateRecord(v, path)
	}
	if isEnum(t) {
		if !v.Interface().(enum).IsKnown() {
			return fmt.Errorf("%w: field %s has unknown value %q", ErrValidation, path, v.String())
		}
		return nil
	}

	switch t.Kind() {
	case reflect.Slice:
		for i := range v.Len() {
			if err := validateValue(v.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if err := validateValue(iter.Value(), joinPath(path, iter.Key().String())); err != nil {
				return err
			}
		}
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			return validateValue(v.Elem(), path)
		}
	}
	return nil
}

func validateRecord(v reflect.Value, path string) error {
	ri, err := recordOf(v.Type())
	if err != nil {
		return err
	}
	v = addressable(v)
	meta := metaOf(v)

	for _, fi := range ri.fields {
		fv := v.Field(fi.index)
		fpath := joinPath(path, fi.key)

		if !fi.optional {
			if fi.required && requiredMissing(meta, fi, fv) {
				return fmt.Errorf("%w: field %s is required", ErrValidation, fpath)
			}
			if err := validateValue(fv, fpath); err != nil {
				return err
			}
			continue
		}

		f := fv.Interface().(fieldValue)
		switch {
		case !f.IsPresent():
			if fi.required {
				return fmt.Errorf("%w: field %s is required", ErrValidation, fpath)
			}
		case f.IsNull():
			if !fi.nullable {
				return fmt.Errorf("%w: field %s cannot be null", ErrValidation, fpath)
			}
		default:
			if err := validateValue(reflect.ValueOf(f.Any()), fpath); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateRaw checks that the JSON object data has the shape of the record or union t.
// Each declared field present in data must hold a value of the expected kind: string,
// integer, number, boolean, known enum value, object, array or map. Required fields must
// be present and null is accepted only for optional or nullable fields. Nested records and
// unions are checked the same way while array elements and map values are not inspected.
func ValidateRaw(t reflect.Type, data []byte) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: invalid JSON", ErrValidation)
	}
	return validateRawType(t, gjson.ParseBytes(data), rootPath)
}

// ValidateRawFor is ValidateRaw for the type T.
func ValidateRawFor[T any](data []byte) error {
	return ValidateRaw(reflect.TypeFor[T](), data)
}

func validateRawType(t reflect.Type, res gjson.Result, path string) error {
	if u, ok := unionOf(t); ok {
		if !res.IsObject() {
			return typeError(path)
		}
		v, err := u.Match([]byte(res.Raw))
		if err != nil {
			return wrapPath(path, err)
		}
		if v.Tag != "" || v.Fallback {
			// Selected without a shape check.
			return validateRawType(v.Type, res, path)
		}
		return nil
	}
	if isRecord(t) {
		if !res.IsObject() {
			return typeError(path)
		}
		return validateRawRecord(t, res, path)
	}
	if isEnum(t) {
		if res.Type != gjson.String {
			return typeError(path)
		}
		e := reflect.New(t).Elem()
		e.SetString(res.String())
		if !e.Interface().(enum).IsKnown() {
			return typeError(path)
		}
		return nil
	}

	ok := true
	switch t.Kind() {
	case reflect.String:
		ok = res.Type == gjson.String
	case reflect.Bool:
		ok = res.Type == gjson.True || res.Type == gjson.False
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ok = res.Type == gjson.Number && res.Num == math.Trunc(res.Num)
	case reflect.Float32, reflect.Float64:
		ok = res.Type == gjson.Number
	case reflect.Slice:
		ok = res.IsArray()
	case reflect.Map:
		ok = res.IsObject()
	}
	if !ok {
		return typeError(path)
	}
	return nil
}

func validateRawRecord(t reflect.Type, res gjson.Result, path string) error {
	ri, err := recordOf(t)
	if err != nil {
		return err
	}

	values := make(map[string]gjson.Result, len(ri.fields))
	res.ForEach(func(k, v gjson.Result) bool {
		values[k.String()] = v
		return true
	})

	for _, fi := range ri.fields {
		fpath := joinPath(path, fi.key)
		val, ok := values[fi.key]
		if !ok {
			if fi.required {
				return typeError(fpath)
			}
			continue
		}
		if val.Type == gjson.Null {
			if fi.nullable || !fi.required {
				continue
			}
			return typeError(fpath)
		}
		if err := validateRawType(fi.typ, val, fpath); err != nil {
			return err
		}
	}
	return nil
}
