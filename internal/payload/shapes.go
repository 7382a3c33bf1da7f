package payload

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MissingPrice is shown in place of a holding's price or shares when the API
// omits it or sends something other than a number.
const MissingPrice = "—"

// Article is a titled document of sections, each a list of labelled blurbs.
type Article struct {
	Title    Text      `json:"title"`
	Sections []Section `json:"sections"`
}

// Section is one titled group of items inside an Article.
type Section struct {
	ID    json.RawMessage `json:"id"`
	Title Text            `json:"title"`
	Items []Item          `json:"items"`
}

// Item is a single entry in a Section. Either Headline or Term labels it.
type Item struct {
	Headline Text `json:"headline"`
	Term     Text `json:"term"`
	Blurb    Text `json:"blurb"`
}

// Label returns the headline, falling back to the term.
func (i Item) Label() string {
	if i.Headline != "" {
		return i.Headline.String()
	}
	return i.Term.String()
}

// Markdown renders the article as a Markdown document.
func (a Article) Markdown() string {
	var b strings.Builder
	if a.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", a.Title)
	}
	for _, sec := range a.Sections {
		fmt.Fprintf(&b, "## %s\n\n", sec.Title)
		for _, it := range sec.Items {
			fmt.Fprintf(&b, "- **%s**: %s\n", it.Label(), it.Blurb)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Updates is a titled list of short market notes.
type Updates struct {
	Title   Text   `json:"title"`
	Updates []Text `json:"updates"`
}

// Steps is a titled ordered list of planning steps.
type Steps struct {
	Title Text   `json:"title"`
	Steps []Text `json:"steps"`
}

// Holdings is a titled list of portfolio positions.
type Holdings struct {
	Title    Text      `json:"title"`
	Holdings []Holding `json:"holdings"`
}

// Holding is one position. Shares and Price are missing when the API omits
// them or sends a non-number.
type Holding struct {
	Symbol Text   `json:"symbol"`
	Shares Number `json:"shares"`
	Price  Number `json:"price"`
}

// Value returns shares × price, counting a missing shares or price as zero.
func (h Holding) Value() float64 {
	return h.Shares.OrZero() * h.Price.OrZero()
}

// Total sums the value of every holding. It is recomputed on each call.
func (h Holdings) Total() float64 {
	total := 0.0
	for _, holding := range h.Holdings {
		total += holding.Value()
	}
	return total
}

// HoldingRow is a holding formatted for display.
type HoldingRow struct {
	Symbol string
	Shares string
	Price  string
	Value  string
}

// Rows formats every holding for display. A missing shares or price shows
// MissingPrice while its value is still computed with zero in its place.
func (h Holdings) Rows() []HoldingRow {
	rows := make([]HoldingRow, 0, len(h.Holdings))
	for _, holding := range h.Holdings {
		shares := MissingPrice
		if holding.Shares.Valid {
			shares = strconv.FormatFloat(holding.Shares.Value, 'f', -1, 64)
		}
		price := MissingPrice
		if holding.Price.Valid {
			price = FormatMoney(holding.Price.Value)
		}
		rows = append(rows, HoldingRow{
			Symbol: holding.Symbol.String(),
			Shares: shares,
			Price:  price,
			Value:  FormatMoney(holding.Value()),
		})
	}
	return rows
}

// FormatMoney formats v as dollars with two decimals, e.g. "$25.00".
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Article decodes the payload as an Article.
func (p Payload) Article() (Article, error) {
	var a Article
	err := p.decode(&a, KindArticle)
	return a, err
}

// Updates decodes the payload as Updates.
func (p Payload) Updates() (Updates, error) {
	var u Updates
	err := p.decode(&u, KindUpdates)
	return u, err
}

// Holdings decodes the payload as Holdings.
func (p Payload) Holdings() (Holdings, error) {
	var h Holdings
	err := p.decode(&h, KindHoldings)
	return h, err
}

// Steps decodes the payload as Steps.
func (p Payload) Steps() (Steps, error) {
	var s Steps
	err := p.decode(&s, KindSteps)
	return s, err
}
