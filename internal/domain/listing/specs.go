package listing

import (
	"encoding/json"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const (
	MinSeats = 1
	MaxSeats = 60
)

// Specs carries the category-specific attributes of a listing.
// The concrete type is selected by Category.
type Specs interface {
	Category() Category
	Validate() error
	isSpecs()
}

type CarSpecs struct {
	Seats        int          `mapstructure:"seats" json:"seats,omitempty"`
	Fuel         string       `mapstructure:"fuel" json:"fuel,omitempty"`
	Transmission Transmission `mapstructure:"transmission" json:"transmission"`
}

func (CarSpecs) Category() Category { return CategoryCar }
func (CarSpecs) isSpecs()           {}

func (s CarSpecs) Validate() error {
	if !s.Transmission.IsValid() {
		return ErrTransmissionRequired
	}
	if s.Seats != 0 && (s.Seats < MinSeats || s.Seats > MaxSeats) {
		return ErrInvalidSeats
	}
	return nil
}

type HeavySpecs struct {
	Tonnage    string `mapstructure:"tonnage" json:"tonnage"`
	UsageHours string `mapstructure:"usage_hours" json:"usage_hours,omitempty"`
	Reach      string `mapstructure:"reach" json:"reach,omitempty"`
}

func (HeavySpecs) Category() Category { return CategoryHeavy }
func (HeavySpecs) isSpecs()           {}

func (s HeavySpecs) Validate() error {
	if strings.TrimSpace(s.Tonnage) == "" {
		return ErrTonnageRequired
	}
	return nil
}

// DecodeSpecs builds the variant for category from a loosely typed bag
// (form input or a JSONB column). Numbers sent as strings are accepted.
func DecodeSpecs(category Category, raw map[string]any) (Specs, error) {
	specs, err := decode(category, raw)
	if err != nil {
		return nil, err
	}
	if err := specs.Validate(); err != nil {
		return nil, err
	}
	return specs, nil
}

// DecodeSpecsJSON reads a stored specs column. Stored rows are not re-validated.
func DecodeSpecsJSON(category Category, data []byte) (Specs, error) {
	raw := map[string]any{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, ErrInvalidSpecs
		}
	}
	return decode(category, raw)
}

func decode(category Category, raw map[string]any) (Specs, error) {
	var target Specs
	switch category {
	case CategoryCar:
		target = &CarSpecs{}
	case CategoryHeavy:
		target = &HeavySpecs{}
	default:
		return nil, ErrInvalidCategory
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, ErrInvalidSpecs
	}

	var specs Specs
	switch v := target.(type) {
	case *CarSpecs:
		v.Transmission = Transmission(strings.ToLower(strings.TrimSpace(string(v.Transmission))))
		v.Fuel = strings.TrimSpace(v.Fuel)
		specs = *v
	case *HeavySpecs:
		v.Tonnage = strings.TrimSpace(v.Tonnage)
		v.UsageHours = strings.TrimSpace(v.UsageHours)
		v.Reach = strings.TrimSpace(v.Reach)
		specs = *v
	}
	return specs, nil
}

func EncodeSpecs(s Specs) ([]byte, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}
