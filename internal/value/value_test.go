package value_test

import (
	"testing"

	"github.com/ringneck-lang/ringneck/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictPreservesInsertionOrderAndOverwritePosition(t *testing.T) {
	d := value.NewDict()
	d.Set("x", value.Int{Value: 1})
	d.Set("y", value.Int{Value: 2})
	d.Set("z", value.Int{Value: 3})

	assert.Equal(t, []string{"x", "y", "z"}, d.Keys())

	d.Set("x", value.Int{Value: 99})
	assert.Equal(t, []string{"x", "y", "z"}, d.Keys(), "overwriting a key must not move it")

	got, ok := d.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Int{Value: 99}, got)

	_, ok = d.Get("missing")
	assert.False(t, ok)
}

func TestDictStringMatchesKeyColonValueShape(t *testing.T) {
	d := value.NewDict()
	d.Set("foo", value.Str{Value: "bar"})
	assert.Equal(t, "foo: bar", d.String())
}

func TestDictTruthyEmptyVsNonEmpty(t *testing.T) {
	d := value.NewDict()
	assert.False(t, d.Truthy())
	d.Set("a", value.NullValue)
	assert.True(t, d.Truthy())
}

func TestFromGoPrimitives(t *testing.T) {
	assert.Equal(t, value.NullValue, value.FromGo(nil))
	assert.Equal(t, value.Bool{Value: true}, value.FromGo(true))
	assert.Equal(t, value.Str{Value: "hi"}, value.FromGo("hi"))
	assert.Equal(t, value.Int{Value: 7}, value.FromGo(7))
	assert.Equal(t, value.Int{Value: 7}, value.FromGo(int64(7)))
	assert.Equal(t, value.Float{Value: 1.5}, value.FromGo(1.5))
}

func TestFromGoMapBecomesDict(t *testing.T) {
	v := value.FromGo(map[string]any{"a": 1, "b": "two"})
	d, ok := v.(*value.Dict)
	require.True(t, ok)
	got, ok := d.Get("a")
	require.True(t, ok)
	assert.Equal(t, value.Int{Value: 1}, got)
	got, ok = d.Get("b")
	require.True(t, ok)
	assert.Equal(t, value.Str{Value: "two"}, got)
}

func TestFromGoSliceBecomesList(t *testing.T) {
	v := value.FromGo([]any{1, 2, 3})
	l, ok := v.(*value.List)
	require.True(t, ok)
	require.Len(t, l.Elements, 3)
	assert.Equal(t, value.Int{Value: 1}, l.Elements[0])
}

type hostRecord struct {
	Name   string
	Age    int
	hidden string
}

func TestFromGoStructBecomesDictByExportedFieldName(t *testing.T) {
	v := value.FromGo(hostRecord{Name: "Ada", Age: 30, hidden: "nope"})
	d, ok := v.(*value.Dict)
	require.True(t, ok)
	got, ok := d.Get("Name")
	require.True(t, ok)
	assert.Equal(t, value.Str{Value: "Ada"}, got)
	_, ok = d.Get("hidden")
	assert.False(t, ok, "unexported fields must not surface")
}

func TestFromGoPointerDereferences(t *testing.T) {
	n := 5
	v := value.FromGo(&n)
	assert.Equal(t, value.Int{Value: 5}, v)
}

func TestToGoRoundTripsScalarsAndCollections(t *testing.T) {
	d := value.NewDict()
	d.Set("x", value.Int{Value: 1})
	l := &value.List{Elements: []value.Value{value.Str{Value: "a"}, value.Bool{Value: false}}}
	d.Set("y", l)

	out, err := value.ToGo(d)
	require.NoError(t, err)
	m, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(1), m["x"])
	ys, ok := m["y"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"a", false}, ys)
}

func TestToGoRejectsBuiltin(t *testing.T) {
	b := value.Builtin{Name: "f", Fn: func(ctx value.BuiltinContext, args []value.Value) (value.Value, error) {
		return value.NullValue, nil
	}}
	_, err := value.ToGo(b)
	assert.Error(t, err)
}
