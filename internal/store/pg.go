package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/coinfolio/gallery/internal/domain"
	"github.com/coinfolio/gallery/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL repository instance
func NewPGStore(db *gorm.DB) Repository {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to safe defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values. database/sql treats MaxOpenConns=0 as unlimited and
// MaxIdleConns=0 as "no idle connections", so zeros are replaced.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// coinRow is the flattened scan target for coin queries with reference joins
type coinRow struct {
	CoinID           int64
	Name             string
	Year             *int
	PriceUSD         *float64
	KM               string
	Subject          string
	TypeID           int64
	PeriodID         *int64
	DenominationID   *int64
	SeriesID         *int64
	Marked           bool
	PeriodName       *string
	PeriodStartYear  *int
	DenominationName *string
	SeriesName       *string
}

const coinSelect = `f_coins.coin_id, f_coins.name, f_coins.year, f_coins.price_usd, f_coins.km,
	f_coins.subject, f_coins.type_id, f_coins.period_id, f_coins.denomination_id, f_coins.series_id,
	f_coins.marked,
	d_period.period_name AS period_name, d_period.period_start_year AS period_start_year,
	d_denominations.denomination_name AS denomination_name,
	d_series.series_name AS series_name`

// coinQuery builds the base coin query with reference-table joins
func (s *pgStore) coinQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("f_coins").
		Select(coinSelect).
		Joins("LEFT JOIN d_period ON d_period.period_id = f_coins.period_id").
		Joins("LEFT JOIN d_denominations ON d_denominations.denomination_id = f_coins.denomination_id").
		Joins("LEFT JOIN d_series ON d_series.series_id = f_coins.series_id")
}

// mapCoinRow validates and maps one scanned row into the domain schema.
// An absent identifier means the row shape is broken: fail fast rather than
// propagate half-mapped records.
func mapCoinRow(row coinRow) (domain.CatalogRecord, error) {
	if row.CoinID == 0 {
		return domain.CatalogRecord{}, fmt.Errorf("coin row missing identifier")
	}

	rec := domain.CatalogRecord{
		ID:            row.CoinID,
		Name:          row.Name,
		Price:         row.PriceUSD,
		CatalogNumber: row.KM,
		Subject:       row.Subject,
		CategoryID:    row.TypeID,
		Marked:        row.Marked,
	}
	if row.Year != nil {
		rec.Year = *row.Year
	}
	if row.PeriodID != nil {
		rec.PeriodID = *row.PeriodID
	}
	if row.DenominationID != nil {
		rec.DenominationID = *row.DenominationID
	}
	if row.SeriesID != nil {
		rec.SeriesID = *row.SeriesID
	}
	if row.PeriodName != nil {
		rec.PeriodName = *row.PeriodName
	}
	if row.PeriodStartYear != nil {
		rec.PeriodStartYear = *row.PeriodStartYear
	}
	if row.DenominationName != nil {
		rec.DenominationName = *row.DenominationName
	}
	if row.SeriesName != nil {
		rec.SeriesName = *row.SeriesName
	}
	return rec, nil
}

func mapCoinRows(op string, rows []coinRow) ([]domain.CatalogRecord, error) {
	records := make([]domain.CatalogRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := mapCoinRow(row)
		if err != nil {
			return nil, domain.NewRepositoryError(op, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// sortClause maps a sort key to its ORDER BY clause. The coin id tie-break
// keeps pagination deterministic across windows.
func sortClause(sort domain.SortKey) string {
	switch sort {
	case domain.SortYearAsc:
		return "f_coins.year ASC NULLS FIRST, f_coins.coin_id ASC"
	case domain.SortPriceDesc:
		return "f_coins.price_usd DESC NULLS LAST, f_coins.coin_id ASC"
	case domain.SortPriceAsc:
		return "f_coins.price_usd ASC NULLS FIRST, f_coins.coin_id ASC"
	default:
		return "f_coins.year DESC NULLS LAST, f_coins.coin_id ASC"
	}
}

// CountByCategory returns the exact number of catalog records in a category
func (s *pgStore) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Coin{}).
		Where("type_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, domain.NewRepositoryError("count by category", err)
	}
	return count, nil
}

// FetchPage executes one bounded filtered+sorted range query
func (s *pgStore) FetchPage(ctx context.Context, spec PageSpec, offset, limit int) ([]domain.CatalogRecord, error) {
	q := s.coinQuery(ctx)

	if spec.Search != "" {
		pattern := "%" + spec.Search + "%"
		q = q.Where("(f_coins.name ILIKE ? OR f_coins.subject ILIKE ? OR f_coins.km ILIKE ?)",
			pattern, pattern, pattern)
	}
	if spec.CoinIDs != nil {
		q = q.Where("f_coins.coin_id IN ?", spec.CoinIDs)
	}
	if spec.PeriodIDs != nil {
		q = q.Where("f_coins.period_id IN ?", spec.PeriodIDs)
	}

	var rows []coinRow
	err := q.Order(sortClause(spec.Sort)).
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewRepositoryError("fetch page", err)
	}

	return mapCoinRows("fetch page", rows)
}

// FetchRange returns a contiguous unfiltered run of one category, ordered by
// identifier
func (s *pgStore) FetchRange(ctx context.Context, categoryID int64, offset, limit int) ([]domain.CatalogRecord, error) {
	var rows []coinRow
	err := s.coinQuery(ctx).
		Where("f_coins.type_id = ?", categoryID).
		Order("f_coins.coin_id ASC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewRepositoryError("fetch range", err)
	}

	return mapCoinRows("fetch range", rows)
}

// ownershipRow is the scan target for the overlay query with the joined
// period id
type ownershipRow struct {
	CoinID           int64
	PeriodID         *int64
	URLObverse       *string
	URLReverse       *string
	MediumURLObverse *string
	MediumURLReverse *string
	ThumbURLObverse  *string
	ThumbURLReverse  *string
}

// FetchOwnership returns the full ownership overlay in one request
func (s *pgStore) FetchOwnership(ctx context.Context) ([]domain.OwnershipRecord, error) {
	var rows []ownershipRow
	err := s.db.WithContext(ctx).
		Table("d_coins_owned").
		Select(`d_coins_owned.coin_id, f_coins.period_id,
			d_coins_owned.url_obverse, d_coins_owned.url_reverse,
			d_coins_owned.medium_url_obverse, d_coins_owned.medium_url_reverse,
			d_coins_owned.thumb_url_obverse, d_coins_owned.thumb_url_reverse`).
		Joins("INNER JOIN f_coins ON f_coins.coin_id = d_coins_owned.coin_id").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewRepositoryError("fetch ownership", err)
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	records := make([]domain.OwnershipRecord, 0, len(rows))
	for _, row := range rows {
		if row.CoinID == 0 {
			return nil, domain.NewRepositoryError("fetch ownership", fmt.Errorf("ownership row missing coin identifier"))
		}
		rec := domain.OwnershipRecord{
			CoinID:        row.CoinID,
			ObverseFull:   deref(row.URLObverse),
			ReverseFull:   deref(row.URLReverse),
			ObverseMedium: deref(row.MediumURLObverse),
			ReverseMedium: deref(row.MediumURLReverse),
			ObverseThumb:  deref(row.ThumbURLObverse),
			ReverseThumb:  deref(row.ThumbURLReverse),
		}
		if row.PeriodID != nil {
			rec.PeriodID = *row.PeriodID
		}
		records = append(records, rec)
	}
	return records, nil
}

// FetchCountryPeriodLinks returns the full country/period link table
func (s *pgStore) FetchCountryPeriodLinks(ctx context.Context) ([]domain.PeriodLink, error) {
	var links []schema.PeriodCountry
	err := s.db.WithContext(ctx).Find(&links).Error
	if err != nil {
		return nil, domain.NewRepositoryError("fetch period links", err)
	}

	out := make([]domain.PeriodLink, len(links))
	for i, l := range links {
		out[i] = domain.PeriodLink{CountryID: l.CountryID, PeriodID: l.PeriodID}
	}
	return out, nil
}

// FetchPeriodIDsForCountry resolves a country to its period id-set
func (s *pgStore) FetchPeriodIDsForCountry(ctx context.Context, countryID int64) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Model(&schema.PeriodCountry{}).
		Where("country_id = ?", countryID).
		Pluck("period_id", &ids).Error
	if err != nil {
		return nil, domain.NewRepositoryError("fetch period ids for country", err)
	}
	return ids, nil
}

// FetchCountries returns all countries ordered by name
func (s *pgStore) FetchCountries(ctx context.Context) ([]domain.Country, error) {
	var countries []schema.Country
	err := s.db.WithContext(ctx).Order("country_name").Find(&countries).Error
	if err != nil {
		return nil, domain.NewRepositoryError("fetch countries", err)
	}

	out := make([]domain.Country, len(countries))
	for i, c := range countries {
		out[i] = domain.Country{ID: c.ID, Name: c.Name}
	}
	return out, nil
}

// FetchCategories returns all categories ordered by name
func (s *pgStore) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []schema.Category
	err := s.db.WithContext(ctx).Order("type_name").Find(&categories).Error
	if err != nil {
		return nil, domain.NewRepositoryError("fetch categories", err)
	}

	out := make([]domain.Category, len(categories))
	for i, c := range categories {
		out[i] = domain.Category{ID: c.ID, Name: c.Name}
	}
	return out, nil
}

// FetchPeriodsForCountry returns a country's periods, newest start year first
func (s *pgStore) FetchPeriodsForCountry(ctx context.Context, countryID int64) ([]domain.Period, error) {
	var periods []schema.Period
	err := s.db.WithContext(ctx).
		Model(&schema.Period{}).
		Joins("INNER JOIN b_periods_countries ON b_periods_countries.period_id = d_period.period_id").
		Where("b_periods_countries.country_id = ?", countryID).
		Order("d_period.period_start_year DESC NULLS LAST").
		Find(&periods).Error
	if err != nil {
		return nil, domain.NewRepositoryError("fetch periods for country", err)
	}

	out := make([]domain.Period, len(periods))
	for i, p := range periods {
		out[i] = domain.Period{ID: p.ID, Name: p.Name, Range: p.Range}
		if p.StartYear != nil {
			out[i].StartYear = *p.StartYear
		}
	}
	return out, nil
}
