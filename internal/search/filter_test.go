package search

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagelink_backend/internal/geocode"
)

// fakeGeocoder returns canned coordinates, recording the addresses it was
// asked to resolve.
type fakeGeocoder struct {
	coords *geocode.Coordinates
	calls  []string
}

func (f *fakeGeocoder) GeocodeAddress(_ context.Context, address string) *geocode.Coordinates {
	f.calls = append(f.calls, address)
	return f.coords
}

func floatPtr(v float64) *float64 { return &v }

func TestBuild_EmptyCriteria(t *testing.T) {
	t.Parallel()

	f := NewBuilder(Criteria{}, nil).Build(context.Background(), false)

	require.Len(t, f.Conditions, 1)
	assert.Equal(t, "is_visible = ?", f.Conditions[0].Expr)
	assert.Equal(t, []any{true}, f.Conditions[0].Args)
}

func TestBuild_IncludeHiddenSkipsVisibilityGate(t *testing.T) {
	t.Parallel()

	f := NewBuilder(Criteria{}, nil).Build(context.Background(), true)
	assert.Empty(t, f.Conditions)
}

func TestBuild_VisibilityGateNotDefeatedByOtherFilters(t *testing.T) {
	t.Parallel()

	f := NewBuilder(Criteria{Title: "design", Sector: "IT"}, nil).Build(context.Background(), false)

	var visible int
	for _, c := range f.Conditions {
		if c.Expr == "is_visible = ?" {
			visible++
		}
	}
	assert.Equal(t, 1, visible)
}

func TestBuild_SingleTokenUsesFullTextFastPath(t *testing.T) {
	t.Parallel()

	f := NewBuilder(Criteria{SearchQuery: "sanitaires"}, nil).Build(context.Background(), true)

	require.Len(t, f.Conditions, 1)
	assert.Contains(t, f.Conditions[0].Expr, "plainto_tsquery")
	assert.Equal(t, []any{"sanitaires"}, f.Conditions[0].Args)
}

func TestBuild_MultiTokenFallsBackToFuzzyScan(t *testing.T) {
	t.Parallel()

	f := NewBuilder(Criteria{SearchQuery: "sa nitaires!"}, nil).Build(context.Background(), true)

	// One OR-group per token, combined by AND.
	require.Len(t, f.Conditions, 2)
	for _, c := range f.Conditions {
		assert.NotContains(t, c.Expr, "plainto_tsquery")
		assert.Contains(t, c.Expr, "title ~* ?")
		assert.Contains(t, c.Expr, "jsonb_array_elements_text")
		// Four columns plus the key_skills element match.
		assert.Len(t, c.Args, 5)
	}
}

func TestBuild_NonAlphanumericSingleTokenSkipsFastPath(t *testing.T) {
	t.Parallel()

	f := NewBuilder(Criteria{SearchQuery: "c++"}, nil).Build(context.Background(), true)

	require.Len(t, f.Conditions, 1)
	assert.NotContains(t, f.Conditions[0].Expr, "plainto_tsquery")
	assert.Contains(t, f.Conditions[0].Expr, "~*")
}

func TestBuild_SearchQueryTokenCap(t *testing.T) {
	t.Parallel()

	query := strings.Repeat("token! ", MaxSearchTokens+5)
	f := NewBuilder(Criteria{SearchQuery: query}, nil).Build(context.Background(), true)

	assert.Len(t, f.Conditions, MaxSearchTokens)
}

func TestBuild_SectorIsAnchored(t *testing.T) {
	t.Parallel()

	f := NewBuilder(Criteria{Sector: "IT"}, nil).Build(context.Background(), true)

	require.Len(t, f.Conditions, 1)
	assert.Equal(t, "sector ~* ?", f.Conditions[0].Expr)
	assert.Equal(t, []any{"^IT$"}, f.Conditions[0].Args)
}

func TestBuild_CompanyIDValidation(t *testing.T) {
	t.Parallel()

	// Malformed ids are dropped silently.
	f := NewBuilder(Criteria{CompanyID: "not-a-uuid"}, nil).Build(context.Background(), true)
	assert.Empty(t, f.Conditions)

	id := "7f4df26a-9f2e-4c54-9a39-0a6b2a1c3d4e"
	f = NewBuilder(Criteria{CompanyID: id}, nil).Build(context.Background(), true)
	require.Len(t, f.Conditions, 1)
	assert.Equal(t, "company_id = ?", f.Conditions[0].Expr)
	assert.Equal(t, []any{id}, f.Conditions[0].Args)
}

func TestBuild_SalaryRange(t *testing.T) {
	t.Parallel()

	build := func(min, max *float64) *Filter {
		return NewBuilder(Criteria{MinSalary: min, MaxSalary: max}, nil).Build(context.Background(), true)
	}

	t.Run("both bounds", func(t *testing.T) {
		f := build(floatPtr(1000), floatPtr(3000))
		require.Len(t, f.Conditions, 1)
		assert.Equal(t, "min_salary >= ? AND min_salary <= ? AND max_salary <= ?", f.Conditions[0].Expr)
		assert.Equal(t, []any{1000.0, 3000.0, 3000.0}, f.Conditions[0].Args)
	})

	t.Run("reversed bounds are swapped", func(t *testing.T) {
		straight := build(floatPtr(1000), floatPtr(3000))
		reversed := build(floatPtr(3000), floatPtr(1000))
		assert.Equal(t, straight.Conditions, reversed.Conditions)
	})

	t.Run("min only", func(t *testing.T) {
		f := build(floatPtr(1500), nil)
		require.Len(t, f.Conditions, 1)
		assert.Equal(t, "min_salary >= ?", f.Conditions[0].Expr)
		assert.Equal(t, []any{1500.0}, f.Conditions[0].Args)
	})

	t.Run("max only keeps open-ended posts", func(t *testing.T) {
		f := build(nil, floatPtr(2500))
		require.Len(t, f.Conditions, 1)
		assert.Equal(t, "min_salary <= ? AND (max_salary <= ? OR max_salary IS NULL)", f.Conditions[0].Expr)
		assert.Equal(t, []any{2500.0, 2500.0}, f.Conditions[0].Args)
	})
}

func TestBuild_KeySkills(t *testing.T) {
	t.Parallel()

	f := NewBuilder(Criteria{KeySkills: []string{"go", " sql ", ""}}, nil).Build(context.Background(), true)

	require.Len(t, f.Conditions, 1)
	c := f.Conditions[0]
	// Two element matches ORed inside a single condition.
	assert.Equal(t, 2, strings.Count(c.Expr, "jsonb_array_elements_text"))
	assert.Contains(t, c.Expr, " OR ")
	assert.Equal(t, []any{"go", "sql"}, c.Args)
}

func TestBuild_GeoRadius(t *testing.T) {
	t.Parallel()

	t.Run("resolved city adds the spherical clause", func(t *testing.T) {
		geocoder := &fakeGeocoder{coords: &geocode.Coordinates{Lon: 2.3522, Lat: 48.8566}}
		criteria := Criteria{City: "Paris", RadiusKm: floatPtr(25)}

		f := NewBuilder(criteria, geocoder).Build(context.Background(), true)

		require.Len(t, f.Conditions, 1)
		c := f.Conditions[0]
		assert.Contains(t, c.Expr, "latitude IS NOT NULL")
		assert.Contains(t, c.Expr, "acos")
		require.Len(t, c.Args, 4)
		assert.Equal(t, 48.8566, c.Args[0])
		assert.Equal(t, 48.8566, c.Args[1])
		assert.Equal(t, 2.3522, c.Args[2])
		assert.InDelta(t, 25.0/6371.0, c.Args[3], 1e-12)
		assert.Equal(t, []string{"Paris"}, geocoder.calls)
	})

	t.Run("failed geocoding skips the clause", func(t *testing.T) {
		geocoder := &fakeGeocoder{coords: nil}
		f := NewBuilder(Criteria{City: "Nowhere", RadiusKm: floatPtr(25)}, geocoder).Build(context.Background(), true)
		assert.Empty(t, f.Conditions)
		assert.Equal(t, []string{"Nowhere"}, geocoder.calls)
	})

	t.Run("missing radius never geocodes", func(t *testing.T) {
		geocoder := &fakeGeocoder{coords: &geocode.Coordinates{Lon: 1, Lat: 1}}
		f := NewBuilder(Criteria{City: "Paris"}, geocoder).Build(context.Background(), true)
		assert.Empty(t, f.Conditions)
		assert.Empty(t, geocoder.calls)
	})

	t.Run("non-positive radius never geocodes", func(t *testing.T) {
		geocoder := &fakeGeocoder{coords: &geocode.Coordinates{Lon: 1, Lat: 1}}
		f := NewBuilder(Criteria{City: "Paris", RadiusKm: floatPtr(0)}, geocoder).Build(context.Background(), true)
		assert.Empty(t, f.Conditions)
		assert.Empty(t, geocoder.calls)
	})

	t.Run("nil geocoder skips the clause", func(t *testing.T) {
		f := NewBuilder(Criteria{City: "Paris", RadiusKm: floatPtr(25)}, nil).Build(context.Background(), true)
		assert.Empty(t, f.Conditions)
	})
}

func TestBuild_IDPassthroughComesLast(t *testing.T) {
	t.Parallel()

	id := "7f4df26a-9f2e-4c54-9a39-0a6b2a1c3d4e"
	f := NewBuilder(Criteria{Title: "design", ID: id}, nil).Build(context.Background(), false)

	require.NotEmpty(t, f.Conditions)
	last := f.Conditions[len(f.Conditions)-1]
	assert.Equal(t, "id = ?", last.Expr)
	assert.Equal(t, []any{id}, last.Args)
}

func TestBuildSort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "created_at ASC", BuildSort("dateAsc"))
	assert.Equal(t, "created_at DESC", BuildSort(""))
	assert.Equal(t, "created_at DESC", BuildSort("bogus"))
}

func TestBuildMessageFilter(t *testing.T) {
	t.Parallel()

	f := BuildMessageFilter("topic-1")
	require.Len(t, f.Conditions, 1)
	assert.Equal(t, "topic_id = ?", f.Conditions[0].Expr)
	assert.Equal(t, []any{"topic-1"}, f.Conditions[0].Args)

	assert.Empty(t, BuildMessageFilter("  ").Conditions)
}
