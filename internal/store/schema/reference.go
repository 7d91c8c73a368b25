package schema

// Country represents the d_countries reference table
type Country struct {
	ID   int64  `gorm:"column:country_id;primaryKey;autoIncrement"`
	Name string `gorm:"column:country_name;not null;type:text"`
}

// TableName specifies the table name for the Country model
func (Country) TableName() string {
	return "d_countries"
}

// Category represents the d_categories reference table (coin types)
type Category struct {
	ID   int64  `gorm:"column:type_id;primaryKey;autoIncrement"`
	Name string `gorm:"column:type_name;not null;type:text"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "d_categories"
}

// Period represents the d_period reference table
type Period struct {
	ID        int64  `gorm:"column:period_id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:period_name;not null;type:text"`
	StartYear *int   `gorm:"column:period_start_year"`
	Range     string `gorm:"column:period_range;type:text"`
}

// TableName specifies the table name for the Period model
func (Period) TableName() string {
	return "d_period"
}

// PeriodCountry represents the b_periods_countries link table. A period can
// belong to several countries (and a country spans several periods).
type PeriodCountry struct {
	PeriodID  int64 `gorm:"column:period_id;primaryKey"`
	CountryID int64 `gorm:"column:country_id;primaryKey"`
}

// TableName specifies the table name for the PeriodCountry model
func (PeriodCountry) TableName() string {
	return "b_periods_countries"
}

// Denomination represents the d_denominations reference table
type Denomination struct {
	ID   int64  `gorm:"column:denomination_id;primaryKey;autoIncrement"`
	Name string `gorm:"column:denomination_name;not null;type:text"`
}

// TableName specifies the table name for the Denomination model
func (Denomination) TableName() string {
	return "d_denominations"
}

// Series represents the d_series reference table
type Series struct {
	ID   int64  `gorm:"column:series_id;primaryKey;autoIncrement"`
	Name string `gorm:"column:series_name;not null;type:text"`
}

// TableName specifies the table name for the Series model
func (Series) TableName() string {
	return "d_series"
}
