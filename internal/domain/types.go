package domain

// SortKey identifies the active sort order for browse results
type SortKey string

const (
	SortYearDesc  SortKey = "year_desc"
	SortYearAsc   SortKey = "year_asc"
	SortPriceDesc SortKey = "price_desc"
	SortPriceAsc  SortKey = "price_asc"
)

// DefaultSortKey is applied when no sort (or an unknown sort) is requested
const DefaultSortKey = SortYearDesc

// ParseSortKey maps a raw string to a SortKey, falling back to the default
// for unknown values
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortYearAsc, SortYearDesc, SortPriceAsc, SortPriceDesc:
		return SortKey(s)
	default:
		return DefaultSortKey
	}
}

// IsPrice reports whether the key sorts by price
func (k SortKey) IsPrice() bool {
	return k == SortPriceAsc || k == SortPriceDesc
}

// Ascending reports the sort direction
func (k SortKey) Ascending() bool {
	return k == SortYearAsc || k == SortPriceAsc
}

// CoerceForView enforces the view-mode/sort compatibility rule: price sorts
// are not available in table view and silently fall back to year descending.
func (k SortKey) CoerceForView(view ViewMode) SortKey {
	if view == ViewTable && k.IsPrice() {
		return SortYearDesc
	}
	return k
}

// ViewMode identifies how the browse surface renders the record set
type ViewMode string

const (
	ViewGrid  ViewMode = "grid"
	ViewList  ViewMode = "list"
	ViewTable ViewMode = "table"
)

// ParseViewMode maps a raw string to a ViewMode, defaulting to grid
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ViewGrid, ViewList, ViewTable:
		return ViewMode(s)
	default:
		return ViewGrid
	}
}

// OwnedFilter restricts browsing to the ownership overlay
type OwnedFilter string

const (
	OwnedAll  OwnedFilter = "all"
	OwnedOnly OwnedFilter = "owned"
)

// FilterState carries every user-controlled input that shapes a browse
// query. The zero value (empty search, no country, no period, OwnedAll must
// be set explicitly via DefaultFilterState) is explore mode.
type FilterState struct {
	Search    string
	CountryID int64
	PeriodID  int64
	Owned     OwnedFilter
	SortBy    SortKey
}

// DefaultFilterState returns the initial browse state
func DefaultFilterState() FilterState {
	return FilterState{Owned: OwnedAll, SortBy: DefaultSortKey}
}

// IsExplore reports whether no filter is active: no search text, no country,
// no period and the ownership filter showing everything.
func (f FilterState) IsExplore() bool {
	return f.Search == "" && f.CountryID == 0 && f.PeriodID == 0 && (f.Owned == "" || f.Owned == OwnedAll)
}

// WithCountry returns a copy with the country changed. Selecting a country
// always resets the period selection.
func (f FilterState) WithCountry(countryID int64) FilterState {
	f.CountryID = countryID
	f.PeriodID = 0
	return f
}

// WithSearch returns a copy with the search text changed
func (f FilterState) WithSearch(search string) FilterState {
	f.Search = search
	return f
}

// Cleared returns a copy with search, country, period and ownership filters
// reset while keeping the sort selection.
func (f FilterState) Cleared() FilterState {
	f.Search = ""
	f.CountryID = 0
	f.PeriodID = 0
	f.Owned = OwnedAll
	return f
}

// CatalogRecord is one coin in the catalog, immutable once fetched within a
// query cycle. Year 0 encodes an unknown year; Price nil an unknown price.
type CatalogRecord struct {
	ID               int64    `json:"coin_id"`
	Name             string   `json:"name"`
	Year             int      `json:"year"`
	Price            *float64 `json:"price_usd"`
	CatalogNumber    string   `json:"km"`
	Subject          string   `json:"subject"`
	CategoryID       int64    `json:"type_id"`
	PeriodID         int64    `json:"period_id"`
	DenominationID   int64    `json:"denomination_id"`
	SeriesID         int64    `json:"series_id"`
	Marked           bool     `json:"marked"`
	PeriodName       string   `json:"period_name,omitempty"`
	PeriodStartYear  int      `json:"period_start_year,omitempty"`
	DenominationName string   `json:"denomination_name,omitempty"`
	SeriesName       string   `json:"series_name,omitempty"`
}

// PriceValue returns the price or 0 when unknown
func (r CatalogRecord) PriceValue() float64 {
	if r.Price == nil {
		return 0
	}
	return *r.Price
}

// OwnershipRecord is one row of the ownership overlay: image URL tiers per
// face for a coin the collector owns. Absent tiers are empty strings.
type OwnershipRecord struct {
	CoinID        int64  `json:"coin_id"`
	PeriodID      int64  `json:"period_id"`
	ObverseFull   string `json:"url_obverse"`
	ReverseFull   string `json:"url_reverse"`
	ObverseMedium string `json:"medium_url_obverse"`
	ReverseMedium string `json:"medium_url_reverse"`
	ObverseThumb  string `json:"thumb_url_obverse"`
	ReverseThumb  string `json:"thumb_url_reverse"`
}

// FaceImages holds the resolved URL tiers for one face of a coin. After
// merging, every tier is populated whenever any tier exists for the face.
type FaceImages struct {
	Full   string `json:"full"`
	Medium string `json:"medium"`
	Thumb  string `json:"thumb"`
}

// RecordImages holds both faces
type RecordImages struct {
	Obverse FaceImages `json:"obverse"`
	Reverse FaceImages `json:"reverse"`
}

// DecoratedRecord is a CatalogRecord merged with the ownership overlay.
// Treated as a value type: never mutated after creation.
type DecoratedRecord struct {
	CatalogRecord
	IsOwned bool         `json:"is_owned"`
	Images  RecordImages `json:"images"`
}

// Category is a fixed catalog category (circulation, commemorative, ...)
type Category struct {
	ID   int64  `json:"type_id"`
	Name string `json:"type_name"`
}

// Country is a reference record for the country filter
type Country struct {
	ID   int64  `json:"country_id"`
	Name string `json:"country_name"`
}

// Period is a historical issuing period. A period belongs to one or more
// countries through PeriodLink rows.
type Period struct {
	ID        int64  `json:"period_id"`
	Name      string `json:"period_name"`
	StartYear int    `json:"period_start_year"`
	Range     string `json:"period_range,omitempty"`
}

// PeriodLink is one row of the country/period many-to-many link table
type PeriodLink struct {
	CountryID int64 `json:"country_id"`
	PeriodID  int64 `json:"period_id"`
}
