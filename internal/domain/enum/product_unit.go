package enum

import (
	"encoding/json"
	"fmt"
)

// ProductUnit represents the unit of measure a product is sold in
type ProductUnit int

const (
	UnitWeight ProductUnit = iota // kilograms
	UnitEach                      // single pieces
	UnitVolume                    // liters
)

var productUnitNames = [...]string{"kg", "un", "lt"}

func (u ProductUnit) String() string {
	if int(u) < 0 || int(u) >= len(productUnitNames) {
		return "un"
	}
	return productUnitNames[u]
}

// ParseProductUnit converts a wire name into a ProductUnit.
func ParseProductUnit(s string) (ProductUnit, error) {
	for i, name := range productUnitNames {
		if name == s {
			return ProductUnit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown product unit %q", s)
}

func (u ProductUnit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *ProductUnit) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*u = ProductUnit(i)
		return nil
	}
	parsed, err := ParseProductUnit(str)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
