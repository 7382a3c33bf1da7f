package payload

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldings_MissingPrice(t *testing.T) {
	p := MustNew(`{"title":"Your Portfolio","holdings":[
		{"symbol":"AAA","shares":10,"price":2.5},
		{"symbol":"BBB","shares":4}
	]}`)
	require.Equal(t, KindHoldings, p.Kind())

	h, err := p.Holdings()
	require.NoError(t, err)

	assert.InDelta(t, 25.0, h.Total(), 1e-9)
	assert.Equal(t, "$25.00", FormatMoney(h.Total()))

	want := []HoldingRow{
		{Symbol: "AAA", Shares: "10", Price: "$2.50", Value: "$25.00"},
		{Symbol: "BBB", Shares: "4", Price: "—", Value: "$0.00"},
	}
	if diff := cmp.Diff(want, h.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestHoldings_NullPriceAndFractionalShares(t *testing.T) {
	h, err := MustNew(`{"holdings":[{"symbol":"X","shares":2.5,"price":null},{"symbol":"Y","shares":2,"price":238.67}]}`).Holdings()
	require.NoError(t, err)

	rows := h.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "2.5", rows[0].Shares)
	assert.Equal(t, MissingPrice, rows[0].Price)
	assert.Equal(t, "$0.00", rows[0].Value)
	assert.Equal(t, "$238.67", rows[1].Price)
	assert.Equal(t, "$477.34", rows[1].Value)
}

func TestHoldings_NonNumericFieldsDecodeAsMissing(t *testing.T) {
	h, err := MustNew(`{"holdings":[
		{"symbol":"AAA","shares":10,"price":2.5},
		{"symbol":"BBB","shares":4,"price":"n/a"},
		{"symbol":"CCC","shares":"lots","price":3},
		{"symbol":"DDD","shares":1,"price":{"amount":9}}
	]}`).Holdings()
	require.NoError(t, err)

	want := []HoldingRow{
		{Symbol: "AAA", Shares: "10", Price: "$2.50", Value: "$25.00"},
		{Symbol: "BBB", Shares: "4", Price: MissingPrice, Value: "$0.00"},
		{Symbol: "CCC", Shares: MissingPrice, Price: "$3.00", Value: "$0.00"},
		{Symbol: "DDD", Shares: "1", Price: MissingPrice, Value: "$0.00"},
	}
	if diff := cmp.Diff(want, h.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "$25.00", FormatMoney(h.Total()))
}

func TestHoldings_SampleTotal(t *testing.T) {
	h, err := MustNew(`{"title":"Your Portfolio","holdings":[
		{"symbol":"AAPL","shares":10,"price":225.12},
		{"symbol":"TSLA","shares":2,"price":238.67}
	]}`).Holdings()
	require.NoError(t, err)

	assert.Equal(t, "$2728.54", FormatMoney(h.Total()))
}

func TestHoldings_WrongShape(t *testing.T) {
	_, err := MustNew(`{"holdings":"lots"}`).Holdings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding holdings payload")
}

func TestArticle(t *testing.T) {
	a, err := MustNew(`{"title":"Intro","sections":[
		{"id":"budget","title":"Budgeting","items":[
			{"headline":"50/30/20","blurb":"Split income."},
			{"term":"APR","blurb":"Annual rate."}
		]},
		{"id":2,"title":"Empty"}
	]}`).Article()
	require.NoError(t, err)

	require.Len(t, a.Sections, 2)
	assert.Equal(t, "50/30/20", a.Sections[0].Items[0].Label())
	assert.Equal(t, "APR", a.Sections[0].Items[1].Label())
	assert.Empty(t, a.Sections[1].Items)

	md := a.Markdown()
	assert.Equal(t, "# Intro\n\n"+
		"## Budgeting\n\n"+
		"- **50/30/20**: Split income.\n"+
		"- **APR**: Annual rate.\n\n"+
		"## Empty\n\n\n", md)
}

func TestUpdatesAndSteps(t *testing.T) {
	u, err := MustNew(`{"title":"X","updates":["a","b"]}`).Updates()
	require.NoError(t, err)
	assert.Equal(t, Text("X"), u.Title)
	assert.Equal(t, []Text{"a", "b"}, u.Updates)

	s, err := MustNew(`{"title":"Planning","steps":["one","two","three"]}`).Steps()
	require.NoError(t, err)
	assert.Len(t, s.Steps, 3)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "sections", KindArticle.String())
	assert.Equal(t, "raw", KindRaw.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
