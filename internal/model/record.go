package model

import "time"

// Field names as exposed to predicates, reducers and the API layer.
const (
	FieldBikeModel = "bike_model"
	FieldCategory  = "category"
	FieldRegion    = "region"
	FieldPriceUSD  = "price_usd"
	FieldUnitsSold = "units_sold"
	FieldDate      = "date"
	FieldTotalUSD  = "total_sales_usd"
)

// Record represents a single sale observation
type Record struct {
	BikeModel     string    `json:"bike_model"`
	Category      string    `json:"category"`
	Region        string    `json:"region"`
	PriceUSD      float64   `json:"price_usd"`
	UnitsSold     int       `json:"units_sold"`
	Date          time.Time `json:"date"`
	TotalSalesUSD float64   `json:"total_sales_usd"`
}

// Dataset is an in-memory ordered collection of records with a fixed schema
type Dataset []Record

// Categorical returns the string value of a categorical field
func (r Record) Categorical(field string) (string, bool) {
	switch field {
	case FieldBikeModel:
		return r.BikeModel, true
	case FieldCategory:
		return r.Category, true
	case FieldRegion:
		return r.Region, true
	default:
		return "", false
	}
}

// Numeric returns the value of a numeric field as float64
func (r Record) Numeric(field string) (float64, bool) {
	switch field {
	case FieldPriceUSD:
		return r.PriceUSD, true
	case FieldUnitsSold:
		return float64(r.UnitsSold), true
	case FieldTotalUSD:
		return r.TotalSalesUSD, true
	default:
		return 0, false
	}
}

// DateValue returns the value of a date field
func (r Record) DateValue(field string) (time.Time, bool) {
	if field == FieldDate {
		return r.Date, true
	}
	return time.Time{}, false
}

// CategoricalFields lists the fields usable as group keys and membership filters
func CategoricalFields() []string {
	return []string{FieldBikeModel, FieldCategory, FieldRegion}
}

// NumericFields lists the fields usable as measures and threshold filters
func NumericFields() []string {
	return []string{FieldPriceUSD, FieldUnitsSold, FieldTotalUSD}
}

// HasField reports whether a field name exists on the record schema
func HasField(name string) bool {
	switch name {
	case FieldBikeModel, FieldCategory, FieldRegion,
		FieldPriceUSD, FieldUnitsSold, FieldTotalUSD, FieldDate:
		return true
	default:
		return false
	}
}
