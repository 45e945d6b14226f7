package dsl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jod "github.com/M1tsumi/Jod"
	"github.com/M1tsumi/Jod/dsl"
)

type user struct {
	Name  string
	Email string
	Age   int32
}

func userSchema() dsl.ObjectSchema[user] {
	return dsl.Object[user]().
		Field("name", dsl.String().Min(1).Required()).
		Field("email", dsl.String().Email().Required()).
		Field("age", dsl.Integer().Min(18).Required()).
		Builds(func(m map[string]any) (user, error) {
			return user{
				Name:  dsl.FieldString(m, "name"),
				Email: dsl.FieldString(m, "email"),
				Age:   dsl.FieldInt32(m, "age"),
			}, nil
		}).
		MustBuild()
}

func TestObjectValid(t *testing.T) {
	ctx := context.Background()
	r := userSchema().ValidateNullable(ctx, map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"age":   36,
	})
	require.True(t, r.IsValid(), "errors: %v", r.Errors())
	v, present := r.Value()
	require.True(t, present)
	assert.Equal(t, user{Name: "Ada", Email: "ada@example.com", Age: 36}, v)
}

func TestObjectFieldViolationPaths(t *testing.T) {
	ctx := context.Background()
	r := userSchema().ValidateNullable(ctx, map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"age":   16,
	})
	require.False(t, r.IsValid())
	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, jod.CodeMinValue, errs[0].Code)
	assert.Equal(t, "$.age", errs[0].Path)
	assert.Equal(t, int32(16), errs[0].Rejected)
}

func TestObjectMissingFieldIsNull(t *testing.T) {
	ctx := context.Background()
	r := userSchema().ValidateNullable(ctx, map[string]any{
		"email": "ada@example.com",
		"age":   36,
	})
	require.False(t, r.IsValid())
	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, jod.CodeRequired, errs[0].Code)
	assert.Equal(t, "$.name", errs[0].Path)
}

func TestObjectErrorsFollowDeclarationOrder(t *testing.T) {
	ctx := context.Background()
	r := userSchema().ValidateNullable(ctx, map[string]any{
		"name":  "",
		"email": "nope",
		"age":   16,
	})
	require.False(t, r.IsValid())
	errs := r.Errors()
	require.Len(t, errs, 3)
	assert.Equal(t, "$.name", errs[0].Path)
	assert.Equal(t, "$.email", errs[1].Path)
	assert.Equal(t, "$.age", errs[2].Path)
}

func TestObjectToleratesUnknownFields(t *testing.T) {
	ctx := context.Background()
	r := userSchema().ValidateNullable(ctx, map[string]any{
		"name":    "Ada",
		"email":   "ada@example.com",
		"age":     36,
		"comment": "ignored",
		"extra":   []any{1, 2, 3},
	})
	require.True(t, r.IsValid(), "errors: %v", r.Errors())
}

func TestObjectRejectsNonMap(t *testing.T) {
	ctx := context.Background()
	r := userSchema().ValidateNullable(ctx, "not an object")
	require.False(t, r.IsValid())
	assert.Equal(t, jod.CodeInvalidType, r.Errors()[0].Code)
}

func TestObjectCrossFieldCustom(t *testing.T) {
	ctx := context.Background()
	s := dsl.Object[map[string]any]().
		Field("min", dsl.Integer().Required()).
		Field("max", dsl.Integer().Required()).
		Custom(func(m map[string]any) bool {
			lo, _ := m["min"].(int)
			hi, _ := m["max"].(int)
			return lo <= hi
		}, "min must not exceed max").
		Builds(func(m map[string]any) (map[string]any, error) { return m, nil }).
		MustBuild()

	r := s.ValidateNullable(ctx, map[string]any{"min": 10, "max": 5})
	require.False(t, r.IsValid())
	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, jod.CodeCustom, errs[0].Code)
	assert.Equal(t, "$", errs[0].Path)
}

func TestObjectConstructorErrorBecomesConstructionFailed(t *testing.T) {
	ctx := context.Background()
	s := dsl.Object[user]().
		Field("name", dsl.String().Required()).
		Builds(func(m map[string]any) (user, error) {
			return user{}, errors.New("db unavailable")
		}).
		MustBuild()

	r := s.ValidateNullable(ctx, map[string]any{"name": "Ada"})
	require.False(t, r.IsValid())
	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, jod.CodeConstructionFailed, errs[0].Code)
	assert.Equal(t, "$", errs[0].Path)
	assert.Contains(t, errs[0].Message, "db unavailable")
}

func TestObjectConstructorPanicIsContained(t *testing.T) {
	ctx := context.Background()
	s := dsl.Object[user]().
		Field("name", dsl.String().Required()).
		Builds(func(m map[string]any) (user, error) {
			panic("invariant broken")
		}).
		MustBuild()

	r := s.ValidateNullable(ctx, map[string]any{"name": "Ada"})
	require.False(t, r.IsValid())
	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, jod.CodeConstructionFailed, errs[0].Code)
	assert.Contains(t, errs[0].Message, "invariant broken")
}

func TestObjectConstructorSkippedOnFieldFailure(t *testing.T) {
	ctx := context.Background()
	called := false
	s := dsl.Object[user]().
		Field("age", dsl.Integer().Min(18).Required()).
		Builds(func(m map[string]any) (user, error) {
			called = true
			return user{}, nil
		}).
		MustBuild()

	s.ValidateNullable(ctx, map[string]any{"age": 16})
	assert.False(t, called, "constructor must not run on a failed validation")
}

func TestObjectBuildRequiresConstructor(t *testing.T) {
	_, err := dsl.Object[user]().
		Field("name", dsl.String()).
		Build()
	require.Error(t, err)

	assert.Panics(t, func() {
		dsl.Object[user]().MustBuild()
	})
}

func TestObjectInListReportsNestedPaths(t *testing.T) {
	ctx := context.Background()
	s := dsl.List[user](userSchema())

	r := s.ValidateNullable(ctx, []any{
		map[string]any{"name": "Ada", "email": "ada@example.com", "age": 36},
		map[string]any{"name": "Bob", "email": "bob@example.com", "age": 16},
	})
	require.False(t, r.IsValid())
	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "$.[1].age", errs[0].Path)
	assert.Equal(t, jod.CodeMinValue, errs[0].Code)
}

func TestObjectNestedObjectPaths(t *testing.T) {
	ctx := context.Background()
	type profile struct {
		Owner user
	}
	s := dsl.Object[profile]().
		Field("owner", userSchema()).
		Builds(func(m map[string]any) (profile, error) {
			owner, _ := dsl.Field[user](m, "owner")
			return profile{Owner: owner}, nil
		}).
		MustBuild()

	r := s.ValidateNullable(ctx, map[string]any{
		"owner": map[string]any{"name": "Ada", "email": "bad", "age": 36},
	})
	require.False(t, r.IsValid())
	assert.Equal(t, "$.owner.email", r.Errors()[0].Path)
}

func TestObjectBuilderForks(t *testing.T) {
	ctx := context.Background()
	base := dsl.Object[map[string]any]().
		Field("a", dsl.String().Required())

	strict := base.Field("b", dsl.String().Required())

	ctor := func(m map[string]any) (map[string]any, error) { return m, nil }
	loose := base.Builds(ctor).MustBuild()
	tight := strict.Builds(ctor).MustBuild()

	in := map[string]any{"a": "x"}
	require.True(t, loose.ValidateNullable(ctx, in).IsValid())
	require.False(t, tight.ValidateNullable(ctx, in).IsValid())
}
