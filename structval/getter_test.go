package structval_test

import (
	"testing"

	"github.com/effective-security/xjwt/structval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const getterDoc = `{
	"str": "value",
	"on": true,
	"count": 1234,
	"big": 18446744073709551615,
	"exp_form": 1e3,
	"neg": -5,
	"frac": 1.5,
	"too_big": 18446744073709551616,
	"ratio": 0.25,
	"one_aud": "solo",
	"many_aud": ["aud1", "aud2"],
	"mixed_aud": ["aud1", 42],
	"nested": {"inner": {"leaf": "found me"}},
	"nothing": null
}`

func newGetter(t *testing.T) structval.Getter {
	t.Helper()
	v, err := structval.Parse([]byte(getterDoc))
	require.NoError(t, err)
	return structval.NewGetter(v)
}

func TestGetter_GetString(t *testing.T) {
	g := newGetter(t)

	s, res := g.GetString("str")
	assert.Equal(t, structval.Found, res)
	assert.Equal(t, "value", s)

	_, res = g.GetString("absent")
	assert.Equal(t, structval.Missing, res)

	_, res = g.GetString("count")
	assert.Equal(t, structval.WrongType, res)

	_, res = g.GetString("nothing")
	assert.Equal(t, structval.WrongType, res)
}

func TestGetter_GetBool(t *testing.T) {
	g := newGetter(t)

	b, res := g.GetBool("on")
	assert.Equal(t, structval.Found, res)
	assert.True(t, b)

	_, res = g.GetBool("absent")
	assert.Equal(t, structval.Missing, res)

	_, res = g.GetBool("str")
	assert.Equal(t, structval.WrongType, res)
}

func TestGetter_GetUInt64(t *testing.T) {
	g := newGetter(t)

	tcases := []struct {
		key string
		val uint64
		res structval.Result
	}{
		{key: "count", val: 1234, res: structval.Found},
		{key: "big", val: 18446744073709551615, res: structval.Found},
		{key: "exp_form", val: 1000, res: structval.Found},
		{key: "absent", res: structval.Missing},
		{key: "neg", res: structval.WrongType},
		{key: "frac", res: structval.WrongType},
		{key: "too_big", res: structval.WrongType},
		{key: "str", res: structval.WrongType},
	}
	for _, tc := range tcases {
		t.Run(tc.key, func(t *testing.T) {
			u, res := g.GetUInt64(tc.key)
			assert.Equal(t, tc.res, res)
			assert.Equal(t, tc.val, u)
		})
	}
}

func TestGetter_GetDouble(t *testing.T) {
	g := newGetter(t)

	d, res := g.GetDouble("ratio")
	assert.Equal(t, structval.Found, res)
	assert.Equal(t, 0.25, d)

	d, res = g.GetDouble("neg")
	assert.Equal(t, structval.Found, res)
	assert.Equal(t, -5.0, d)

	_, res = g.GetDouble("absent")
	assert.Equal(t, structval.Missing, res)

	_, res = g.GetDouble("str")
	assert.Equal(t, structval.WrongType, res)
}

func TestGetter_GetStringList(t *testing.T) {
	g := newGetter(t)

	l, res := g.GetStringList("many_aud")
	assert.Equal(t, structval.Found, res)
	assert.Equal(t, []string{"aud1", "aud2"}, l)

	// a single string promotes to a one element list
	l, res = g.GetStringList("one_aud")
	assert.Equal(t, structval.Found, res)
	assert.Equal(t, []string{"solo"}, l)

	_, res = g.GetStringList("absent")
	assert.Equal(t, structval.Missing, res)

	_, res = g.GetStringList("mixed_aud")
	assert.Equal(t, structval.WrongType, res)

	_, res = g.GetStringList("count")
	assert.Equal(t, structval.WrongType, res)
}

func TestGetter_GetStruct(t *testing.T) {
	g := newGetter(t)

	nested, res := g.GetStruct("nested")
	require.Equal(t, structval.Found, res)

	inner, res := nested.GetStruct("inner")
	require.Equal(t, structval.Found, res)

	s, res := inner.GetString("leaf")
	assert.Equal(t, structval.Found, res)
	assert.Equal(t, "found me", s)

	_, res = g.GetStruct("absent")
	assert.Equal(t, structval.Missing, res)

	_, res = g.GetStruct("str")
	assert.Equal(t, structval.WrongType, res)

	assert.NotNil(t, nested.Value())
}

func TestGetter_GetValue(t *testing.T) {
	g := newGetter(t)

	v, res := g.GetValue("many_aud")
	require.Equal(t, structval.Found, res)
	assert.Equal(t, structval.KindList, v.Kind())

	v, res = g.GetValue("nothing")
	require.Equal(t, structval.Found, res)
	assert.Equal(t, structval.KindNull, v.Kind())

	_, res = g.GetValue("absent")
	assert.Equal(t, structval.Missing, res)
}

func TestGetter_NonObject(t *testing.T) {
	// the zero Getter finds nothing
	var zero structval.Getter
	_, res := zero.GetString("any")
	assert.Equal(t, structval.Missing, res)
	assert.Nil(t, zero.Value())

	// a Getter over a list node finds nothing
	list, err := structval.Parse([]byte(`[1,2,3]`))
	require.NoError(t, err)
	g := structval.NewGetter(list)
	_, res = g.GetUInt64("0")
	assert.Equal(t, structval.Missing, res)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "found", structval.Found.String())
	assert.Equal(t, "missing", structval.Missing.String())
	assert.Equal(t, "wrong type", structval.WrongType.String())
}
