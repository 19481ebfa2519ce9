package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// User represents a user record in our system
type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Age    int    `json:"age"`
	Active bool   `json:"active"`
}

// Parse failure causes reported by UserFromJSON
var (
	// ErrMalformedJSON means the input is not valid JSON at all
	ErrMalformedJSON = errors.New("malformed JSON")

	// ErrNotObject means the top-level JSON value is not an object
	ErrNotObject = errors.New("top-level value is not an object")

	// ErrMissingField means a required key is absent from the object
	ErrMissingField = errors.New("missing required field")

	// ErrWrongType means a value's JSON type does not match the field type
	ErrWrongType = errors.New("field has wrong type")
)

// ParseError describes why a JSON document could not be decoded into a User.
// Field names the offending key when the document itself was readable.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("failed to parse user: field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("failed to parse user: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewUser creates a user record from the given field values
// Values are stored verbatim; construction never fails
func NewUser(id int, name, email string, age int, active bool) User {
	return User{
		ID:     id,
		Name:   name,
		Email:  email,
		Age:    age,
		Active: active,
	}
}

// JSON returns the compact JSON encoding of the user
// Keys always appear in the order id, name, email, age, active
func (u User) JSON() (string, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("failed to encode user: %w", err)
	}
	return string(data), nil
}

// JSONPretty returns the indented JSON encoding of the user
// It decodes to the same record as the compact form
func (u User) JSONPretty() (string, error) {
	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode user: %w", err)
	}
	return string(data), nil
}

// UserFromJSON decodes a JSON object into a User
// The object may list keys in any order; unknown keys are ignored
// All five fields must be present with matching JSON types, otherwise a
// *ParseError is returned and no partial record is produced
func UserFromJSON(jsonStr string) (User, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return User{}, &ParseError{Err: fmt.Errorf("%w: got JSON %s", ErrNotObject, typeErr.Value)}
		}
		return User{}, &ParseError{Err: fmt.Errorf("%w: %v", ErrMalformedJSON, err)}
	}
	// A bare null decodes into a nil map without error
	if fields == nil {
		return User{}, &ParseError{Err: fmt.Errorf("%w: got JSON null", ErrNotObject)}
	}

	var u User
	for _, f := range []struct {
		key string
		dst any
	}{
		{"id", &u.ID},
		{"name", &u.Name},
		{"email", &u.Email},
		{"age", &u.Age},
		{"active", &u.Active},
	} {
		raw, ok := fields[f.key]
		if !ok {
			return User{}, &ParseError{Field: f.key, Err: ErrMissingField}
		}
		if err := unmarshalField(raw, f.dst); err != nil {
			return User{}, &ParseError{Field: f.key, Err: err}
		}
	}

	return u, nil
}

func unmarshalField(raw json.RawMessage, dst any) error {
	// null unmarshals into a non-pointer target as a no-op, so reject it here
	if string(raw) == "null" {
		return fmt.Errorf("%w: got JSON null", ErrWrongType)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: got JSON %s", ErrWrongType, typeErr.Value)
		}
		return err
	}
	return nil
}

// Dict returns the user's fields as a map with native Go values
// The map is freshly allocated on every call
func (u User) Dict() map[string]any {
	return map[string]any{
		"id":     u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"age":    u.Age,
		"active": u.Active,
	}
}

// Overrides selects the fields Copy replaces; nil fields keep the source value
type Overrides struct {
	ID     *int
	Name   *string
	Email  *string
	Age    *int
	Active *bool
}

// Copy returns a new user with the given overrides applied
// The receiver is never modified
func (u User) Copy(o Overrides) User {
	out := u
	if o.ID != nil {
		out.ID = *o.ID
	}
	if o.Name != nil {
		out.Name = *o.Name
	}
	if o.Email != nil {
		out.Email = *o.Email
	}
	if o.Age != nil {
		out.Age = *o.Age
	}
	if o.Active != nil {
		out.Active = *o.Active
	}
	return out
}

// String implements fmt.Stringer
func (u User) String() string {
	return fmt.Sprintf("User(id=%d, name='%s', email='%s')", u.ID, u.Name, u.Email)
}
