// Package codec maps record models to and from their JSON wire form.
//
// A record is a struct embedding field.Meta. Each exported field carries a json tag with
// its wire key and optional "required" and "nullable" flags. Optional or nullable fields
// are field.Field values so that absent and null stay distinct. Unions are wrapper
// structs registered with RegisterUnion.
package codec

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
)

var (
	// ErrValidation is wrapped by every error reporting a payload or record that does not
	// match its declared shape.
	ErrValidation = errors.New("validation failed")

	// ErrNoVariant is returned when a payload matches none of the members of a union.
	ErrNoVariant = fmt.Errorf("%w: passed value matched no type within the union", ErrValidation)

	// ErrNotObject is returned when a record or union is decoded from anything but a JSON object.
	ErrNotObject = fmt.Errorf("%w: expected a JSON object", ErrValidation)
)

// metaHolder is implemented by pointers to records through the embedded field.Meta.
type metaHolder interface {
	RecordMeta() *field.Meta
}

// fieldValue is implemented by field.Field.
type fieldValue interface {
	IsPresent() bool
	IsNull() bool
	Any() any
	ValueType() reflect.Type
}

type fieldSetter interface {
	SetAny(v any) error
}

// enum is implemented by closed string sets.
type enum interface {
	IsKnown() bool
}

var (
	metaHolderType = reflect.TypeFor[metaHolder]()
	fieldValueType = reflect.TypeFor[fieldValue]()
	enumType       = reflect.TypeFor[enum]()
	metaType       = reflect.TypeFor[field.Meta]()
)

// fieldInfo describes one declared field of a record.
type fieldInfo struct {
	index    int
	name     string
	key      string
	required bool
	nullable bool
	// optional is set when the Go field is a field.Field.
	optional bool
	// typ is the type of the value, unwrapped from field.Field.
	typ reflect.Type
}

type recordInfo struct {
	typ    reflect.Type
	fields []fieldInfo
	byKey  map[string]int
}

func (ri *recordInfo) declares(key string) bool {
	_, ok := ri.byKey[key]
	return ok
}

var records sync.Map // reflect.Type -> *recordInfo

func isRecord(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(metaHolderType)
}

func isField(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.Implements(fieldValueType)
}

func isEnum(t reflect.Type) bool {
	return t.Kind() == reflect.String && t.Implements(enumType)
}

// recordOf returns the cached description of the record type t.
func recordOf(t reflect.Type) (*recordInfo, error) {
	if ri, ok := records.Load(t); ok {
		return ri.(*recordInfo), nil
	}
	if !isRecord(t) {
		return nil, fmt.Errorf("%v is not a record model", t)
	}

	ri := &recordInfo{typ: t, byKey: make(map[string]int)}
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type == metaType {
			continue
		}
		if !sf.IsExported() {
			continue
		}
		tag, ok := sf.Tag.Lookup("json")
		if !ok || tag == "-" {
			continue
		}

		parts := strings.Split(tag, ",")
		fi := fieldInfo{index: i, name: sf.Name, key: parts[0], typ: sf.Type}
		if fi.key == "" {
			fi.key = sf.Name
		}
		for _, opt := range parts[1:] {
			switch opt {
			case "required":
				fi.required = true
			case "nullable":
				fi.nullable = true
			case "":
			default:
				return nil, fmt.Errorf("%v.%s: unknown tag option %q", t, sf.Name, opt)
			}
		}
		if isField(sf.Type) {
			fi.optional = true
			fi.typ = reflect.Zero(sf.Type).Interface().(fieldValue).ValueType()
		} else if fi.nullable {
			return nil, fmt.Errorf("%v.%s: nullable fields must be field.Field", t, sf.Name)
		}
		if _, dup := ri.byKey[fi.key]; dup {
			return nil, fmt.Errorf("%v: wire key %q declared twice", t, fi.key)
		}

		ri.byKey[fi.key] = len(ri.fields)
		ri.fields = append(ri.fields, fi)
	}

	actual, _ := records.LoadOrStore(t, ri)
	return actual.(*recordInfo), nil
}

// addressable returns v or an addressable copy of it.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

func metaOf(v reflect.Value) *field.Meta {
	return v.Addr().Interface().(metaHolder).RecordMeta()
}

// indirect dereferences pointers until reaching a non pointer value.
func indirect(v reflect.Value) (reflect.Value, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, errors.New("nil value")
		}
		v = v.Elem()
	}
	return v, nil
}

func joinPath(parent, key string) string {
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

const rootPath = "obj"
