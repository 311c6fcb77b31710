package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countrypick/internal/countries"
	"countrypick/internal/filter"
)

type recorder struct {
	calls []Selection
}

func (r *recorder) record(s Selection) {
	r.calls = append(r.calls, s)
}

func newTestPicker(t *testing.T, opts ...Option) (*Picker, *recorder, []string) {
	t.Helper()
	tbl, err := countries.NewTable(
		[]string{"FR", "IN", "DE", "ID", "US"},
		[]string{"France", "India", "Germany", "Indonesia", "United States"},
	)
	require.NoError(t, err)

	rec := &recorder{}
	opts = append(opts, WithOnSelect(rec.record))
	return New(tbl, filter.New(tbl), opts...), rec, tbl.Codes()
}

func TestNewStartsClosedWithFullList(t *testing.T) {
	p, rec, all := newTestPicker(t)

	snap := p.Snapshot()
	assert.Equal(t, Closed, snap.State)
	assert.False(t, snap.Open)
	assert.Empty(t, snap.Query)
	assert.Empty(t, snap.SelectedCode)
	assert.Equal(t, all, snap.Visible)
	assert.Empty(t, rec.calls)
}

func TestInitWithInitialCode(t *testing.T) {
	p, rec, _ := newTestPicker(t, WithInitialCode("FR"))
	p.Init()

	assert.Equal(t, Selected, p.State())
	assert.Equal(t, "France", p.Query())
	assert.Equal(t, "FR", p.SelectedCode())
	assert.False(t, p.IsOpen())
	require.Len(t, rec.calls, 1)
	assert.Equal(t, Selection{Country: "France", Code: "FR"}, rec.calls[0])
}

func TestCommitsUseTableCodes(t *testing.T) {
	p, rec, _ := newTestPicker(t, WithInitialCode(" fr "))
	p.Init()

	assert.Equal(t, "FR", p.SelectedCode())
	assert.Equal(t, "France", p.Query())
	assert.Contains(t, filter.New(countries.Default()).Filter(p.Query()), p.SelectedCode())

	p.Select("id")
	assert.Equal(t, "ID", p.SelectedCode())
	assert.Equal(t, Selection{Country: "Indonesia", Code: "ID"}, p.Selection())

	require.Len(t, rec.calls, 2)
	assert.Equal(t, Selection{Country: "France", Code: "FR"}, rec.calls[0])
	assert.Equal(t, Selection{Country: "Indonesia", Code: "ID"}, rec.calls[1])
}

func TestInitWithUnknownCodeIsIgnored(t *testing.T) {
	p, rec, _ := newTestPicker(t, WithInitialCode("ZZ"))
	p.Init()

	assert.Equal(t, Closed, p.State())
	assert.Empty(t, p.Query())
	assert.Empty(t, rec.calls)
}

func TestQueryChangedOpensAndFilters(t *testing.T) {
	p, rec, _ := newTestPicker(t)
	p.QueryChanged("Ind")

	assert.Equal(t, Searching, p.State())
	assert.True(t, p.IsOpen())
	assert.Equal(t, []string{"IN", "ID"}, p.Visible())
	assert.Empty(t, rec.calls)
}

func TestQueryClearedClosesAndRestoresList(t *testing.T) {
	p, rec, all := newTestPicker(t)
	p.QueryChanged("Ind")
	p.Select("IN")
	p.QueryChanged("")

	snap := p.Snapshot()
	assert.Equal(t, Closed, snap.State)
	assert.False(t, snap.Open)
	assert.Empty(t, snap.SelectedCode)
	assert.Equal(t, all, snap.Visible)
	assert.Len(t, rec.calls, 1)
}

func TestEditAfterSelectionClearsSelection(t *testing.T) {
	p, _, _ := newTestPicker(t)
	p.Select("IN")
	p.QueryChanged("Indi")

	assert.Empty(t, p.SelectedCode())
	assert.Equal(t, Searching, p.State())
	assert.True(t, p.Selection().IsZero())
}

func TestSelectCommits(t *testing.T) {
	p, rec, _ := newTestPicker(t)
	p.QueryChanged("Ind")
	p.Select("IN")

	snap := p.Snapshot()
	assert.Equal(t, Selected, snap.State)
	assert.Equal(t, "India", snap.Query)
	assert.Equal(t, "IN", snap.SelectedCode)
	assert.False(t, snap.Open)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, Selection{Country: "India", Code: "IN"}, rec.calls[0])
	assert.Equal(t, Selection{Country: "India", Code: "IN"}, p.Selection())
}

func TestSelectUnknownCodeIsNoop(t *testing.T) {
	p, rec, _ := newTestPicker(t)
	p.QueryChanged("Ind")
	before := p.Snapshot()

	p.Select("ZZ")

	assert.Equal(t, before, p.Snapshot())
	assert.Empty(t, rec.calls)
}

func TestSelectionSurvivesRefilter(t *testing.T) {
	p, _, _ := newTestPicker(t)
	p.Select("ID")

	e := p.filterer.(*filter.Engine)
	assert.Contains(t, e.Filter(p.Query()), p.SelectedCode())
}

func TestFocusOpensWithoutChangingQuery(t *testing.T) {
	p, _, all := newTestPicker(t)
	p.Focus()

	assert.True(t, p.IsOpen())
	assert.Equal(t, Searching, p.State())
	assert.Empty(t, p.Query())
	assert.Equal(t, all, p.Visible())

	p.QueryChanged("Ind")
	p.Blur()
	p.Focus()
	assert.Equal(t, "Ind", p.Query())
	assert.Equal(t, []string{"IN", "ID"}, p.Visible())
}

func TestBlurClosesAndPreserves(t *testing.T) {
	p, _, _ := newTestPicker(t)
	p.QueryChanged("Ger")
	p.Blur()

	assert.Equal(t, Closed, p.State())
	assert.False(t, p.IsOpen())
	assert.Equal(t, "Ger", p.Query())

	p.Select("DE")
	p.Focus()
	p.Blur()
	assert.Equal(t, Selected, p.State())
	assert.Equal(t, "DE", p.SelectedCode())
	assert.Equal(t, "Germany", p.Query())
}

func TestResetFromAnyState(t *testing.T) {
	setups := map[string]func(p *Picker){
		"closed":    func(p *Picker) {},
		"searching": func(p *Picker) { p.QueryChanged("Ind") },
		"selected":  func(p *Picker) { p.Select("US") },
		"focused":   func(p *Picker) { p.Select("US"); p.Focus() },
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			p, rec, all := newTestPicker(t, WithResetToken("a"))
			setup(p)
			rec.calls = nil

			p.Reset("b")

			snap := p.Snapshot()
			assert.Equal(t, Closed, snap.State)
			assert.Empty(t, snap.Query)
			assert.Empty(t, snap.SelectedCode)
			assert.False(t, snap.Open)
			assert.Equal(t, all, snap.Visible)
			require.Len(t, rec.calls, 1)
			assert.Equal(t, Selection{}, rec.calls[0])
			assert.Equal(t, "b", p.ResetToken())
		})
	}
}

func TestResetIgnoresUnchangedToken(t *testing.T) {
	p, rec, _ := newTestPicker(t, WithResetToken("a"))
	p.Select("FR")
	p.Reset("a")

	assert.Equal(t, "FR", p.SelectedCode())
	assert.Len(t, rec.calls, 1)
}

func TestForceReset(t *testing.T) {
	p, rec, _ := newTestPicker(t)
	p.Select("FR")
	p.ForceReset()

	assert.Equal(t, Closed, p.State())
	require.Len(t, rec.calls, 2)
	assert.True(t, rec.calls[1].IsZero())
}

func TestVisibleReturnsCopy(t *testing.T) {
	p, _, _ := newTestPicker(t)
	v := p.Visible()
	v[0] = "XX"
	assert.Equal(t, "FR", p.Visible()[0])
}

func TestNilCollaboratorsUseBundledTable(t *testing.T) {
	p := New(nil, nil, WithOnSelect(nil))
	assert.Len(t, p.Visible(), countries.Default().Len())

	p.Select("IN")
	assert.Equal(t, "India", p.Query())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "searching", Searching.String())
	assert.Equal(t, "selected", Selected.String())
	assert.Equal(t, "unknown", State(42).String())
}
