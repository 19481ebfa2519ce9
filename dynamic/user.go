// Package dynamic holds user records as untyped key-value pairs, validated
// at construction and asserted on every read. It is the comparison target
// for the typed models package.
package dynamic

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goccy/go-json"
)

// Common dynamic record errors
var (
	// ErrValidation reports input that does not satisfy the five-field user schema
	ErrValidation = errors.New("user validation failed")

	// ErrKeyNotFound reports an accessor read of a key the record does not carry
	ErrKeyNotFound = errors.New("key not found")

	// ErrWrongType reports a value whose dynamic type does not match the accessor
	ErrWrongType = errors.New("value has wrong type")
)

// User is a user record backed by a map instead of struct fields.
// Every read pays for a map lookup plus a type assertion, the cost a typed
// models.User never pays.
type User struct {
	fields map[string]any
}

// FromMap validates m against the user schema and returns the record.
// Integer fields accept int, int64, json.Number, and whole float64 values
// within float64's exact range, normalized to int; extra keys are dropped.
// The input map is not retained.
func FromMap(m map[string]any) (User, error) {
	id, err := intField(m, "id")
	if err != nil {
		return User{}, err
	}
	name, err := strField(m, "name")
	if err != nil {
		return User{}, err
	}
	email, err := strField(m, "email")
	if err != nil {
		return User{}, err
	}
	age, err := intField(m, "age")
	if err != nil {
		return User{}, err
	}
	active, err := boolField(m, "active")
	if err != nil {
		return User{}, err
	}

	return User{fields: map[string]any{
		"id":     id,
		"name":   name,
		"email":  email,
		"age":    age,
		"active": active,
	}}, nil
}

// FromJSON decodes a JSON object and validates it against the user schema.
// Numbers are decoded with integer precision intact, so values beyond
// float64's exact range survive the trip.
func FromJSON(jsonStr string) (User, error) {
	dec := json.NewDecoder(strings.NewReader(jsonStr))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if m == nil {
		return User{}, fmt.Errorf("%w: top-level value is not an object", ErrValidation)
	}
	if _, err := dec.Token(); err != io.EOF {
		return User{}, fmt.Errorf("%w: unexpected data after JSON document", ErrValidation)
	}
	return FromMap(m)
}

// NewUser builds a record from already-typed field values
func NewUser(id int, name, email string, age int, active bool) User {
	return User{fields: map[string]any{
		"id":     id,
		"name":   name,
		"email":  email,
		"age":    age,
		"active": active,
	}}
}

// Wrap adopts m as a user record without validating it, retaining the map.
// Reads through the accessors surface any missing or ill-typed fields;
// FromMap is the checked path.
func Wrap(m map[string]any) User {
	return User{fields: m}
}

func intField(m map[string]any, key string) (int, error) {
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing key %q", ErrValidation, key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: key %q: number %v is not an integer", ErrValidation, key, n)
		}
		return int(i), nil
	case float64:
		// float64 stops representing every integer exactly beyond 2^53
		if math.IsInf(n, 0) || n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, fmt.Errorf("%w: key %q: number %v is not an integer", ErrValidation, key, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: key %q: expected integer, got %T", ErrValidation, key, v)
	}
}

func strField(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("%w: missing key %q", ErrValidation, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: key %q: expected string, got %T", ErrValidation, key, v)
	}
	return s, nil
}

func boolField(m map[string]any, key string) (bool, error) {
	v, ok := m[key]
	if !ok {
		return false, fmt.Errorf("%w: missing key %q", ErrValidation, key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: key %q: expected bool, got %T", ErrValidation, key, v)
	}
	return b, nil
}

// Int reads an integer-valued key
func (u User) Int(key string) (int, error) {
	v, ok := u.fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%w: key %q holds %T, not int", ErrWrongType, key, v)
	}
	return n, nil
}

// Str reads a string-valued key
func (u User) Str(key string) (string, error) {
	v, ok := u.fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: key %q holds %T, not string", ErrWrongType, key, v)
	}
	return s, nil
}

// Bool reads a bool-valued key
func (u User) Bool(key string) (bool, error) {
	v, ok := u.fields[key]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: key %q holds %T, not bool", ErrWrongType, key, v)
	}
	return b, nil
}

// ID returns the record's id field
func (u User) ID() (int, error) { return u.Int("id") }

// Name returns the record's name field
func (u User) Name() (string, error) { return u.Str("name") }

// Email returns the record's email field
func (u User) Email() (string, error) { return u.Str("email") }

// Age returns the record's age field
func (u User) Age() (int, error) { return u.Int("age") }

// Active returns the record's active field
func (u User) Active() (bool, error) { return u.Bool("active") }

// JSON returns the compact JSON encoding of the record.
// Map encoding emits keys in sorted order; decoding does not depend on key
// order, so round trips through either representation are unaffected.
func (u User) JSON() (string, error) {
	data, err := json.Marshal(u.fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode user: %w", err)
	}
	return string(data), nil
}

// JSONPretty returns the indented JSON encoding of the record
func (u User) JSONPretty() (string, error) {
	data, err := json.MarshalIndent(u.fields, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode user: %w", err)
	}
	return string(data), nil
}

// Dict returns a copy of the underlying key-value pairs
func (u User) Dict() map[string]any {
	out := make(map[string]any, len(u.fields))
	for k, v := range u.fields {
		out[k] = v
	}
	return out
}

// With returns a new record with updates merged over the receiver's fields.
// The merged document is validated again since updates are untyped; the
// receiver is never modified.
func (u User) With(updates map[string]any) (User, error) {
	merged := u.Dict()
	for k, v := range updates {
		merged[k] = v
	}
	return FromMap(merged)
}

// String implements fmt.Stringer
func (u User) String() string {
	id, _ := u.Int("id")
	name, _ := u.Str("name")
	email, _ := u.Str("email")
	return fmt.Sprintf("User(id=%d, name='%s', email='%s')", id, name, email)
}
