package schema

// Coin represents the f_coins table - the primary catalog entity.
// Year and price are nullable in the store; the repository boundary maps
// NULL year to 0 (unknown) and keeps price as a pointer.
type Coin struct {
	// ID is the catalog-wide unique coin identifier
	ID int64 `gorm:"column:coin_id;primaryKey;autoIncrement"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// Year is the mint year, NULL when unknown
	Year *int `gorm:"column:year"`
	// PriceUSD is the estimated market price, NULL when unknown
	PriceUSD *float64 `gorm:"column:price_usd"`
	// KM is the Krause-Mishler catalog number
	KM string `gorm:"column:km;type:text"`
	// Subject is the free-text subject/motif description
	Subject string `gorm:"column:subject;type:text"`
	// TypeID references the fixed category table
	TypeID int64 `gorm:"column:type_id;not null;index"`
	// PeriodID references the issuing period, NULL for general issues
	PeriodID *int64 `gorm:"column:period_id;index"`
	// DenominationID references the denomination reference table
	DenominationID *int64 `gorm:"column:denomination_id"`
	// SeriesID references the series reference table
	SeriesID *int64 `gorm:"column:series_id"`
	// Marked flags rare/notable pieces
	Marked bool `gorm:"column:marked;not null;default:false"`

	// Associations
	Period       *Period       `gorm:"foreignKey:PeriodID;references:ID"`
	Denomination *Denomination `gorm:"foreignKey:DenominationID;references:ID"`
	Series       *Series       `gorm:"foreignKey:SeriesID;references:ID"`
}

// TableName specifies the table name for the Coin model
func (Coin) TableName() string {
	return "f_coins"
}

// CoinOwned represents the d_coins_owned table - the personal ownership
// overlay with up to three image-URL tiers per face.
type CoinOwned struct {
	CoinID           int64  `gorm:"column:coin_id;primaryKey"`
	URLObverse       string `gorm:"column:url_obverse;type:text"`
	URLReverse       string `gorm:"column:url_reverse;type:text"`
	MediumURLObverse string `gorm:"column:medium_url_obverse;type:text"`
	MediumURLReverse string `gorm:"column:medium_url_reverse;type:text"`
	ThumbURLObverse  string `gorm:"column:thumb_url_obverse;type:text"`
	ThumbURLReverse  string `gorm:"column:thumb_url_reverse;type:text"`

	Coin *Coin `gorm:"foreignKey:CoinID;references:ID"`
}

// TableName specifies the table name for the CoinOwned model
func (CoinOwned) TableName() string {
	return "d_coins_owned"
}
