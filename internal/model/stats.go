package model

import (
	"encoding/json"
	"math"
)

// CategoryCount is the number of scans recorded for one category.
type CategoryCount struct {
	Category Category
	Count    int
}

// CategoryCounts keeps the backend's key order for by_category.
type CategoryCounts []CategoryCount

// UnmarshalJSON implements json.Unmarshaler preserving key order.
func (c *CategoryCounts) UnmarshalJSON(data []byte) error {
	out := CategoryCounts{}
	err := decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var n int
		if err := dec.Decode(&n); err != nil {
			return err
		}
		out = append(out, CategoryCount{Category: Category(key), Count: n})
		return nil
	})
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// MarshalJSON implements json.Marshaler preserving order.
func (c CategoryCounts) MarshalJSON() ([]byte, error) {
	return encodeOrderedObject(len(c), func(i int) (string, any) {
		return string(c[i].Category), c[i].Count
	})
}

// Stats is the aggregate statistics snapshot.
type Stats struct {
	AvgConfidence      *float64       `json:"avg_confidence,omitempty"`
	RecyclableCount    *int           `json:"recyclable_count,omitempty"`
	NonRecyclableCount *int           `json:"non_recyclable_count,omitempty"`
	RecyclabilityRate  *float64       `json:"recyclability_rate,omitempty"`
	AvgEcoScore        *float64       `json:"avg_eco_score,omitempty"`
	ByCategory         CategoryCounts `json:"by_category"`
	Total              int            `json:"total"`
	ThisWeek           int            `json:"this_week"`
	AchievementsCount  int            `json:"achievements_count"`
}

// Impact is the environmental savings estimate derived from a scan count.
type Impact struct {
	Trees     int
	WaterL    int
	EnergyKWh int
	CO2Kg     int
}

// ImpactFor estimates savings for total sorted items.
func ImpactFor(total int) Impact {
	t := float64(total)
	return Impact{
		Trees:     int(math.Floor(t * 0.05)),
		WaterL:    int(math.Floor(t * 2.5)),
		EnergyKWh: int(math.Floor(t * 0.3)),
		CO2Kg:     int(math.Floor(t * 0.5)),
	}
}
