package codec

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Variant is one member of a union.
type Variant struct {
	// Tag is the discriminant value selecting this member. Empty for untagged members.
	Tag  string
	Type reflect.Type
	// Fallback marks the member used when the payload carries no known tag.
	Fallback bool
}

// Tagged declares the record T as the union member selected by tag.
func Tagged[T any](tag string) Variant {
	return Variant{Tag: tag, Type: reflect.TypeFor[T]()}
}

// Untagged declares the record T as a union member recognised by its shape only.
func Untagged[T any]() Variant {
	return Variant{Type: reflect.TypeFor[T]()}
}

// Fallback declares the record T as the member of payloads without a known tag.
// A union has at most one fallback member.
func Fallback[T any]() Variant {
	return Variant{Type: reflect.TypeFor[T](), Fallback: true}
}

// Union describes how a wrapper struct maps to one of its member records.
//
// Decoding first looks at the discriminant key, when the union has one and the payload
// carries a known tag. Otherwise the fallback member is used when one is declared, or every
// member is checked against the payload with ValidateRaw. Matching members are tried from
// the one declaring the most of the payload keys, ties going to the member declared first,
// and the first one decoding without error wins.
type Union struct {
	Name          string
	Discriminator string
	Variants      []Variant
}

var unions sync.Map // reflect.Type (wrapper) -> *Union

// RegisterUnion registers W as a union wrapper whose single field Variant holds a V.
// discriminator is the wire key carrying the member tag, or empty for untagged unions.
// It panics on a malformed declaration.
func RegisterUnion[W any, V any](discriminator string, variants ...Variant) *Union {
	w := reflect.TypeFor[W]()
	iface := reflect.TypeFor[V]()
	if w.Kind() != reflect.Struct || w.NumField() != 1 || w.Field(0).Name != "Variant" || w.Field(0).Type != iface {
		panic(fmt.Sprintf("union %v must be a struct with a single field Variant of type %v", w, iface))
	}
	if iface.Kind() != reflect.Interface {
		panic(fmt.Sprintf("union %v: %v is not an interface", w, iface))
	}
	if len(variants) == 0 {
		panic(fmt.Sprintf("union %v has no member", w))
	}
	for _, v := range variants {
		if !isRecord(v.Type) {
			panic(fmt.Sprintf("union %v: member %v is not a record", w, v.Type))
		}
		if !v.Type.Implements(iface) {
			panic(fmt.Sprintf("union %v: member %v does not implement %v", w, v.Type, iface))
		}
		if v.Fallback && v.Tag != "" {
			panic(fmt.Sprintf("union %v: fallback member %v cannot carry a tag", w, v.Type))
		}
		if v.Tag != "" && discriminator == "" {
			panic(fmt.Sprintf("union %v: tagged member %v without discriminator", w, v.Type))
		}
	}

	if n := len(slices.DeleteFunc(slices.Clone(variants), func(v Variant) bool { return !v.Fallback })); n > 1 {
		panic(fmt.Sprintf("union %v has %d fallback members", w, n))
	}

	u := &Union{
		Name:          w.Name(),
		Discriminator: discriminator,
		Variants:      variants,
	}
	unions.Store(w, u)
	return u
}

func unionOf(t reflect.Type) (*Union, bool) {
	u, ok := unions.Load(t)
	if !ok {
		return nil, false
	}
	return u.(*Union), true
}

func (u *Union) byTag(tag string) (Variant, bool) {
	for _, v := range u.Variants {
		if v.Tag != "" && v.Tag == tag {
			return v, true
		}
	}
	return Variant{}, false
}

func (u *Union) byType(t reflect.Type) (Variant, bool) {
	for _, v := range u.Variants {
		if v.Type == t {
			return v, true
		}
	}
	return Variant{}, false
}

// Match returns the member selected for the payload data, without decoding it.
func (u *Union) Match(data []byte) (Variant, error) {
	candidates, err := u.Candidates(data)
	if err != nil {
		return Variant{}, err
	}
	return candidates[0], nil
}

// Candidates returns the members accepting the payload data, best match first.
//
// A known tag selects its member alone. Without one, the fallback member is selected alone
// when the union has one. Otherwise members passing ValidateRaw are ranked by the number of
// payload keys they declare, ties keeping declaration order.
func (u *Union) Candidates(data []byte) ([]Variant, error) {
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return nil, ErrNotObject
	}

	if u.Discriminator != "" {
		if tag := objectKey(res, u.Discriminator); tag.Type == gjson.String {
			if v, ok := u.byTag(tag.String()); ok {
				return []Variant{v}, nil
			}
		}
	}
	if v, ok := u.fallback(); ok {
		return []Variant{v}, nil
	}

	type ranked struct {
		v     Variant
		score int
	}
	var matches []ranked
	for _, v := range u.Variants {
		if err := validateRawType(v.Type, res, rootPath); err != nil {
			continue
		}
		ri, err := recordOf(v.Type)
		if err != nil {
			return nil, err
		}
		score := 0
		res.ForEach(func(k, _ gjson.Result) bool {
			if ri.declares(k.String()) {
				score++
			}
			return true
		})
		matches = append(matches, ranked{v: v, score: score})
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", u.Name, ErrNoVariant)
	}

	slices.SortStableFunc(matches, func(a, b ranked) int { return b.score - a.score })
	candidates := make([]Variant, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, m.v)
	}
	return candidates, nil
}

func (u *Union) fallback() (Variant, bool) {
	for _, v := range u.Variants {
		if v.Fallback {
			return v, true
		}
	}
	return Variant{}, false
}

// variantOf returns the member registered for the type of the active value.
func (u *Union) variantOf(active reflect.Value) (Variant, error) {
	if !active.IsValid() || (active.Kind() == reflect.Interface && active.IsNil()) {
		return Variant{}, fmt.Errorf("%w: union %s has no value", ErrValidation, u.Name)
	}
	concrete := active
	if concrete.Kind() == reflect.Interface {
		concrete = concrete.Elem()
	}
	v, ok := u.byType(concrete.Type())
	if !ok {
		return Variant{}, fmt.Errorf("%w: %v is not a member of union %s", ErrValidation, concrete.Type(), u.Name)
	}
	return v, nil
}

func (u *Union) encode(w reflect.Value, path string) ([]byte, error) {
	active := w.Field(0)
	v, err := u.variantOf(active)
	if err != nil {
		return nil, err
	}
	b, err := encodeRecord(active.Elem(), path)
	if err != nil {
		return nil, err
	}
	if v.Tag == "" || objectKey(gjson.ParseBytes(b), u.Discriminator).Exists() {
		return b, nil
	}
	return sjson.SetBytes(b, u.Discriminator, v.Tag)
}

// decode tries the candidates in order and keeps the first one decoding cleanly. The
// discriminant is dropped from the member extras only when it carried the tag of the
// member, so an unknown tag is written back as is.
func (u *Union) decode(data []byte, w reflect.Value, path string) error {
	candidates, err := u.Candidates(data)
	if err != nil {
		return err
	}

	tag := objectKey(gjson.ParseBytes(data), u.Discriminator).String()
	var first error
	for _, v := range candidates {
		var skip string
		if v.Tag != "" && tag == v.Tag {
			skip = u.Discriminator
		}
		member := reflect.New(v.Type).Elem()
		if err := decodeRecordAt(data, member, skip, path); err != nil {
			if first == nil {
				first = err
			}
			continue
		}
		w.Field(0).Set(member)
		return nil
	}
	if v := candidates[0]; v.Fallback || (v.Tag != "" && v.Tag == tag) {
		return first
	}
	return fmt.Errorf("%s: %w (best match: %v)", u.Name, ErrNoVariant, first)
}

// objectKey returns the value of the top level key of an object without path parsing.
func objectKey(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
		}
		return true
	})
	return found
}
