package dynamic

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/sco3/records-and-validation/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{"id":1,"name":"Alice Johnson","email":"alice@example.com","age":30,"active":true}`

func sampleMap() map[string]any {
	return map[string]any{
		"id":     1,
		"name":   "Alice Johnson",
		"email":  "alice@example.com",
		"age":    30,
		"active": true,
	}
}

func TestFromMap(t *testing.T) {
	user, err := FromMap(sampleMap())
	require.NoError(t, err)

	assert.Equal(t, NewUser(1, "Alice Johnson", "alice@example.com", 30, true), user)
}

func TestFromMap_NormalizesIntegers(t *testing.T) {
	tests := []struct {
		name string
		age  any
	}{
		{"int", 30},
		{"int64", int64(30)},
		{"whole float64", float64(30)},
		{"json.Number", json.Number("30")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sampleMap()
			m["age"] = tt.age

			user, err := FromMap(m)
			require.NoError(t, err)

			age, err := user.Age()
			require.NoError(t, err)
			assert.Equal(t, 30, age, "integer fields should be normalized to int")
		})
	}
}

func TestFromMap_DropsExtraKeys(t *testing.T) {
	m := sampleMap()
	m["extra"] = "ignored"

	user, err := FromMap(m)
	require.NoError(t, err)
	assert.NotContains(t, user.Dict(), "extra")
}

func TestFromMap_DoesNotRetainInput(t *testing.T) {
	m := sampleMap()
	user, err := FromMap(m)
	require.NoError(t, err)

	m["name"] = "mutated"

	name, err := user.Name()
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", name)
}

func TestFromMap_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing id", func(m map[string]any) { delete(m, "id") }},
		{"missing name", func(m map[string]any) { delete(m, "name") }},
		{"missing email", func(m map[string]any) { delete(m, "email") }},
		{"missing age", func(m map[string]any) { delete(m, "age") }},
		{"missing active", func(m map[string]any) { delete(m, "active") }},
		{"id as string", func(m map[string]any) { m["id"] = "1" }},
		{"name as number", func(m map[string]any) { m["name"] = 7 }},
		{"age as fraction", func(m map[string]any) { m["age"] = 30.5 }},
		{"age beyond exact float range", func(m map[string]any) { m["age"] = 1e300 }},
		{"age above 2^53", func(m map[string]any) { m["age"] = float64(9007199254740994) }},
		{"age as bool", func(m map[string]any) { m["age"] = true }},
		{"active as string", func(m map[string]any) { m["active"] = "yes" }},
		{"nil value", func(m map[string]any) { m["email"] = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sampleMap()
			tt.mutate(m)

			_, err := FromMap(m)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestFromJSON(t *testing.T) {
	user, err := FromJSON(sampleJSON)
	require.NoError(t, err)

	assert.Equal(t, NewUser(1, "Alice Johnson", "alice@example.com", 30, true), user)
}

func TestFromJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "not json"},
		{"empty object", "{}"},
		{"top-level array", "[1,2,3]"},
		{"top-level null", "null"},
		{"id as string", `{"id":"1","name":"Alice Johnson","email":"alice@example.com","age":30,"active":true}`},
		{"age as fraction", `{"id":1,"name":"Alice Johnson","email":"alice@example.com","age":30.5,"active":true}`},
		{"age beyond integer range", `{"id":1,"name":"Alice Johnson","email":"alice@example.com","age":1e300,"active":true}`},
		{"trailing data", sampleJSON + ` extra`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSON(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestFromJSON_KeepsLargeIntegersExact(t *testing.T) {
	// 2^53+1 has no float64 representation; decoding must not round it
	input := `{"id":1,"name":"Alice Johnson","email":"alice@example.com","age":9007199254740993,"active":true}`

	user, err := FromJSON(input)
	require.NoError(t, err)

	age, err := user.Age()
	require.NoError(t, err)
	assert.Equal(t, 9007199254740993, age)

	jsonStr, err := user.JSON()
	require.NoError(t, err)
	assert.Contains(t, jsonStr, `"age":9007199254740993`)

	decoded, err := FromJSON(jsonStr)
	require.NoError(t, err)
	assert.Equal(t, user, decoded)
}

func TestUser_Accessors(t *testing.T) {
	user, err := FromJSON(sampleJSON)
	require.NoError(t, err)

	id, err := user.ID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	name, err := user.Name()
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", name)

	email, err := user.Email()
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)

	age, err := user.Age()
	require.NoError(t, err)
	assert.Equal(t, 30, age)

	active, err := user.Active()
	require.NoError(t, err)
	assert.True(t, active)
}

func TestUser_AccessorErrors(t *testing.T) {
	// Wrap skips validation, so reads have to surface the problems
	user := Wrap(map[string]any{
		"id":     1,
		"age":    "thirty",
		"active": true,
	})

	_, err := user.Name()
	assert.ErrorIs(t, err, ErrKeyNotFound)

	_, err = user.Age()
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = user.Str("id")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = user.Bool("age")
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestUser_JSON(t *testing.T) {
	user := NewUser(1, "Alice Johnson", "alice@example.com", 30, true)

	jsonStr, err := user.JSON()
	require.NoError(t, err)

	// Map encoding sorts keys alphabetically
	assert.Equal(t, `{"active":true,"age":30,"email":"alice@example.com","id":1,"name":"Alice Johnson"}`, jsonStr)

	decoded, err := FromJSON(jsonStr)
	require.NoError(t, err)
	assert.Equal(t, user, decoded)
}

func TestUser_JSONPretty(t *testing.T) {
	user := NewUser(1, "Alice Johnson", "alice@example.com", 30, true)

	pretty, err := user.JSONPretty()
	require.NoError(t, err)
	assert.Contains(t, pretty, "\n")

	decoded, err := FromJSON(pretty)
	require.NoError(t, err)
	assert.Equal(t, user, decoded)
}

func TestUser_Dict(t *testing.T) {
	user := NewUser(1, "Alice Johnson", "alice@example.com", 30, true)

	dict := user.Dict()
	assert.Equal(t, sampleMap(), dict)

	// The returned map is a copy
	dict["name"] = "mutated"
	name, err := user.Name()
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", name)
}

func TestUser_With(t *testing.T) {
	user := NewUser(1, "Alice Johnson", "alice@example.com", 30, true)

	updated, err := user.With(map[string]any{"age": 31, "name": "Alice Smith"})
	require.NoError(t, err)

	age, err := updated.Age()
	require.NoError(t, err)
	assert.Equal(t, 31, age)

	name, err := updated.Name()
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", name)

	// Untouched fields carry over, the receiver stays as built
	email, err := updated.Email()
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
	assert.Equal(t, NewUser(1, "Alice Johnson", "alice@example.com", 30, true), user)
}

func TestUser_WithRejectsInvalidUpdates(t *testing.T) {
	user := NewUser(1, "Alice Johnson", "alice@example.com", 30, true)

	_, err := user.With(map[string]any{"age": "old"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUser_String(t *testing.T) {
	user := NewUser(1, "Alice Johnson", "alice@example.com", 30, true)
	assert.Equal(t, "User(id=1, name='Alice Johnson', email='alice@example.com')", user.String())
}

func TestCrossRepresentation(t *testing.T) {
	dynamicUser := NewUser(1, "Alice Johnson", "alice@example.com", 30, true)
	typedUser := models.NewUser(1, "Alice Johnson", "alice@example.com", 30, true)

	// The typed side decodes the dynamic encoding
	jsonStr, err := dynamicUser.JSON()
	require.NoError(t, err)

	decoded, err := models.UserFromJSON(jsonStr)
	require.NoError(t, err)
	assert.Equal(t, typedUser, decoded)

	// The dynamic side decodes the typed encoding
	typedJSON, err := typedUser.JSON()
	require.NoError(t, err)

	crossed, err := FromJSON(typedJSON)
	require.NoError(t, err)
	assert.Equal(t, dynamicUser, crossed)
	t.Logf("both representations agree on %s", jsonStr)
}
