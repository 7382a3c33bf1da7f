package payload

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := New([]byte("  {\"a\":1}\n"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(p.Raw()))
	assert.False(t, p.IsZero())

	_, err = New([]byte("<html>oops</html>"))
	assert.ErrorIs(t, err, ErrInvalidJSON)

	assert.True(t, Payload{}.IsZero())
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Kind
	}{
		{name: "article", raw: `{"title":"t","sections":[]}`, want: KindArticle},
		{name: "updates", raw: `{"title":"t","updates":["a"]}`, want: KindUpdates},
		{name: "holdings", raw: `{"title":"t","holdings":[]}`, want: KindHoldings},
		{name: "steps", raw: `{"title":"t","steps":["x"]}`, want: KindSteps},
		{name: "info page", raw: `{"title":"Intro","content":"Welcome"}`, want: KindRaw},
		{name: "array", raw: `[1,2]`, want: KindRaw},
		{name: "scalar", raw: `"hello"`, want: KindRaw},
		{name: "null discriminant", raw: `{"sections":null,"steps":["x"]}`, want: KindSteps},
		{name: "false discriminant", raw: `{"updates":false}`, want: KindRaw},
		{name: "zero discriminant", raw: `{"holdings":0}`, want: KindRaw},
		{name: "empty string discriminant", raw: `{"steps":""}`, want: KindRaw},
		{
			name: "priority sections over everything",
			raw:  `{"steps":["s"],"holdings":[],"updates":["u"],"sections":[]}`,
			want: KindArticle,
		},
		{name: "priority updates over holdings", raw: `{"holdings":[],"updates":[]}`, want: KindUpdates},
		{name: "priority holdings over steps", raw: `{"steps":[],"holdings":[]}`, want: KindHoldings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustNew(tt.raw).Kind())
		})
	}
}

func TestDump_PreservesOrder(t *testing.T) {
	raw := `{"zeta":1,"alpha":{"y":[true,null],"b":"x"},"mid":"m"}`
	want := `{
  "zeta": 1,
  "alpha": {
    "y": [
      true,
      null
    ],
    "b": "x"
  },
  "mid": "m"
}`

	got := MustNew(raw).Dump()
	assert.Equal(t, want, got)

	var a, b any
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	require.NoError(t, json.Unmarshal([]byte(got), &b))
	assert.Empty(t, cmp.Diff(a, b))
}

func TestText_Loose(t *testing.T) {
	var u Updates
	require.NoError(t, json.Unmarshal([]byte(`{"title":42,"updates":["a",1.5,true,null]}`), &u))

	assert.Equal(t, Text("42"), u.Title)
	assert.Equal(t, []Text{"a", "1.5", "true", ""}, u.Updates)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew("{") })
}

func TestNumber_Loose(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Number
	}{
		{name: "integer", raw: `7`, want: Num(7)},
		{name: "float", raw: `2.5`, want: Num(2.5)},
		{name: "zero", raw: `0`, want: Num(0)},
		{name: "null", raw: `null`, want: Number{}},
		{name: "string", raw: `"n/a"`, want: Number{}},
		{name: "numeric string", raw: `"2.5"`, want: Number{}},
		{name: "bool", raw: `true`, want: Number{}},
		{name: "object", raw: `{"v":1}`, want: Number{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, n.UnmarshalJSON([]byte(tt.raw)))
			assert.Equal(t, tt.want, n)
		})
	}

	assert.Zero(t, Number{}.OrZero())
	assert.InDelta(t, 1.5, Num(1.5).OrZero(), 1e-9)
}
