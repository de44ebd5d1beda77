package domain

import (
	"errors"
	"math"
)

type SalesRecord struct {
	Product string  `csv:"Product" db:"product" json:"product"`
	Month   string  `csv:"Month"   db:"month"   json:"month"`
	Sales   float64 `csv:"Sales"   db:"sales"   json:"sales"`
}

func (r *SalesRecord) Validate() error {
	if r.Product == "" {
		return errors.New("product is required")
	}

	if r.Month == "" {
		return errors.New("month is required")
	}

	if math.IsNaN(r.Sales) || math.IsInf(r.Sales, 0) {
		return errors.New("sales must be a finite number")
	}

	return nil
}
