package search

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stagelink_backend/internal/geocode"
)

// MaxSearchTokens caps how many free-text tokens a single query may
// contribute to the filter.
const MaxSearchTokens = 8

const earthRadiusKm = 6371.0

// Columns the fuzzy free-text search fans out over, plus the key_skills
// JSONB array which needs per-element matching.
var fuzzySearchColumns = []string{"title", "description", "sector", "duration"}

const keySkillsElementMatch = "EXISTS (SELECT 1 FROM jsonb_array_elements_text(key_skills) AS skill WHERE skill ~* ?)"

// Geocoder resolves a free-form address to coordinates, returning nil
// when resolution fails for any reason.
type Geocoder interface {
	GeocodeAddress(ctx context.Context, address string) *geocode.Coordinates
}

// Criteria carries the recognized listing query parameters after binding.
// Optional numeric parameters are pointers so "absent" and "zero" stay
// distinct.
type Criteria struct {
	SearchQuery string
	Title       string
	Description string
	Sector      string
	Type        string
	Duration    string
	CompanyID   string
	MinSalary   *float64
	MaxSalary   *float64
	KeySkills   []string
	City        string
	RadiusKm    *float64
	ID          string
	Sort        string
}

// Condition is one SQL predicate fragment with its bind arguments.
// Conditions are independent and combined by AND; OR alternatives live
// inside a single condition's expression.
type Condition struct {
	Expr string
	Args []any
}

// Filter is the ordered list of conditions a listing query applies.
type Filter struct {
	Conditions []Condition
}

func (f *Filter) add(expr string, args ...any) {
	f.Conditions = append(f.Conditions, Condition{Expr: expr, Args: args})
}

// Apply chains every condition onto the gorm query.
func (f *Filter) Apply(tx *gorm.DB) *gorm.DB {
	for _, c := range f.Conditions {
		tx = tx.Where(c.Expr, c.Args...)
	}
	return tx
}

// Builder assembles a Filter from listing criteria. It never fails:
// malformed identifiers are ignored, failed geocoding skips the
// geospatial clause and unknown sort values fall back to the default.
// Genuine input validation belongs to the request DTOs upstream.
type Builder struct {
	criteria Criteria
	geocoder Geocoder
}

// NewBuilder creates a Builder. The geocoder may be nil, in which case
// the geospatial filter is skipped entirely.
func NewBuilder(criteria Criteria, geocoder Geocoder) *Builder {
	return &Builder{criteria: criteria, geocoder: geocoder}
}

// Build produces the filter for internship listings. Unless includeHidden
// is set (moderation context), the visibility gate is forced last and
// cannot be defeated by any user-supplied parameter.
func (b *Builder) Build(ctx context.Context, includeHidden bool) *Filter {
	f := &Filter{}

	b.applySearchQuery(f)
	b.applyFieldFilters(f)
	b.applySalaryRange(f)
	b.applyKeySkills(f)
	b.applyGeoRadius(ctx, f)

	if !includeHidden {
		f.add("is_visible = ?", true)
	}

	if id := strings.TrimSpace(b.criteria.ID); id != "" {
		f.add("id = ?", id)
	}

	return f
}

// BuildSort maps the sort parameter to an ORDER BY key. Descending by
// creation time is the default, unrecognized values included.
func (b *Builder) BuildSort() string {
	return BuildSort(b.criteria.Sort)
}

func BuildSort(sort string) string {
	if sort == "dateAsc" {
		return "created_at ASC"
	}
	return "created_at DESC"
}

// BuildMessageFilter is the narrow variant used for forum message
// listings: an exact topic match when a topic id is given, nothing else.
func BuildMessageFilter(topicID string) *Filter {
	f := &Filter{}
	if id := strings.TrimSpace(topicID); id != "" {
		f.add("topic_id = ?", id)
	}
	return f
}

func (b *Builder) applySearchQuery(f *Filter) {
	tokens := TokenizeSearchQuery(b.criteria.SearchQuery, MaxSearchTokens)
	if len(tokens) == 0 {
		return
	}

	// Single clean token: indexed full-text fast path. Accent folding
	// and typo tolerance are not expressible there, so anything else
	// falls back to the fuzzy regex scan.
	if len(tokens) == 1 && isAlphanumeric(tokens[0]) {
		f.add(
			"to_tsvector('simple', coalesce(title, '') || ' ' || coalesce(description, '') || ' ' || coalesce(sector, '')) @@ plainto_tsquery('simple', ?)",
			tokens[0],
		)
		return
	}

	// AND of per-token OR-groups: every token must match some field,
	// not necessarily the same one.
	for _, token := range tokens {
		pattern := BuildFuzzyPattern(token)

		exprs := make([]string, 0, len(fuzzySearchColumns)+1)
		args := make([]any, 0, len(fuzzySearchColumns)+1)
		for _, col := range fuzzySearchColumns {
			exprs = append(exprs, col+" ~* ?")
			args = append(args, pattern)
		}
		exprs = append(exprs, keySkillsElementMatch)
		args = append(args, pattern)

		f.add("("+strings.Join(exprs, " OR ")+")", args...)
	}
}

func (b *Builder) applyFieldFilters(f *Filter) {
	c := b.criteria

	if v := strings.TrimSpace(c.Title); v != "" {
		f.add("title ~* ?", EscapeRegex(v))
	}
	if v := strings.TrimSpace(c.Description); v != "" {
		f.add("description ~* ?", EscapeRegex(v))
	}
	if v := strings.TrimSpace(c.Duration); v != "" {
		f.add("duration ~* ?", EscapeRegex(v))
	}
	if v := strings.TrimSpace(c.Sector); v != "" {
		f.add("sector ~* ?", "^"+EscapeRegex(v)+"$")
	}
	if v := strings.TrimSpace(c.Type); v != "" {
		f.add("type = ?", v)
	}
	if v := strings.TrimSpace(c.CompanyID); v != "" {
		// Malformed ids are silently ignored, not an error.
		if _, err := uuid.Parse(v); err == nil {
			f.add("company_id = ?", v)
		}
	}
}

// applySalaryRange keeps posts whose stored salary range is contained
// within the requested interval, not merely overlapping it. Reversed user
// input is corrected by swapping the bounds.
func (b *Builder) applySalaryRange(f *Filter) {
	min, max := b.criteria.MinSalary, b.criteria.MaxSalary
	if min != nil && max != nil && *min > *max {
		min, max = max, min
	}

	switch {
	case min != nil && max != nil:
		f.add("min_salary >= ? AND min_salary <= ? AND max_salary <= ?", *min, *max, *max)
	case min != nil:
		f.add("min_salary >= ?", *min)
	case max != nil:
		f.add("min_salary <= ? AND (max_salary <= ? OR max_salary IS NULL)", *max, *max)
	}
}

// applyKeySkills matches posts whose key_skills array contains any of the
// supplied skills (OR, not AND).
func (b *Builder) applyKeySkills(f *Filter) {
	var exprs []string
	var args []any

	for _, skill := range b.criteria.KeySkills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		exprs = append(exprs, keySkillsElementMatch)
		args = append(args, EscapeRegex(skill))
	}

	if len(exprs) == 0 {
		return
	}
	f.add("("+strings.Join(exprs, " OR ")+")", args...)
}

// applyGeoRadius resolves the city and keeps posts within the requested
// spherical radius. A nil geocoder or a failed lookup skips the clause.
func (b *Builder) applyGeoRadius(ctx context.Context, f *Filter) {
	if b.geocoder == nil {
		return
	}

	city := strings.TrimSpace(b.criteria.City)
	if city == "" || b.criteria.RadiusKm == nil || *b.criteria.RadiusKm <= 0 {
		return
	}

	coords := b.geocoder.GeocodeAddress(ctx, city)
	if coords == nil {
		return
	}

	angularRadius := *b.criteria.RadiusKm / earthRadiusKm
	f.add(
		"latitude IS NOT NULL AND longitude IS NOT NULL AND acos(least(1.0, sin(radians(?)) * sin(radians(latitude)) + cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude - ?)))) <= ?",
		coords.Lat, coords.Lat, coords.Lon, angularRadius,
	)
}
