// Package pinnacle contains the Go bindings for the Pinnacle messaging API: record models
// for every request and response payload, and a Client calling the REST endpoints.
//
// Every model decodes from and encodes to JSON through its MarshalJSON and UnmarshalJSON
// methods. Optional and nullable fields are field.Field values so that an absent field
// and an explicit null stay distinct. Keys a model does not declare are kept and written
// back untouched.
package pinnacle

import (
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/internal/codec"
)

// Validation errors.
var (
	// ErrValidation is wrapped by every error reporting a payload or model that does not match its declared shape.
	ErrValidation = codec.ErrValidation
	// ErrNoVariant is returned when a payload matches none of the members of a union.
	ErrNoVariant = codec.ErrNoVariant
	// ErrNotObject is returned when a model is decoded from anything but a JSON object.
	ErrNotObject = codec.ErrNotObject
)

// Model is implemented by every record and union of this package.
type Model interface {
	Validate() error
}

// ValidateRaw checks that the JSON object data has the shape of the model T without
// decoding it.
//
// Each declared field must hold a value of the expected kind, required fields must be
// present and enums must hold a known value. It is the check used to pick the member of a
// union when the payload carries no discriminant.
func ValidateRaw[T Model](data []byte) error {
	return codec.ValidateRawFor[T](data)
}

// Decode unmarshals data into a new T and validates it.
func Decode[T any, PT interface {
	*T
	Model
}](data []byte) (T, error) {
	var v T
	if err := codec.Unmarshal(data, PT(&v)); err != nil {
		return v, err
	}
	return v, PT(&v).Validate()
}
