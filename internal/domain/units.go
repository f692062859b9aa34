package domain

// WeightUnit is a recognised unit for body weight.
type WeightUnit string

// HeightUnit is a recognised unit for body height.
type HeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lb"

	Meters      HeightUnit = "m"
	Centimeters HeightUnit = "cm"
	Inches      HeightUnit = "in"
)

// UnitOptions enumerates the units a profile may use and the unit assumed
// when none has been chosen yet.
type UnitOptions struct {
	Weight        []WeightUnit `json:"weight"`
	Height        []HeightUnit `json:"height"`
	DefaultWeight WeightUnit   `json:"defaultWeight"`
	DefaultHeight HeightUnit   `json:"defaultHeight"`
}

// DefaultUnitOptions returns the built-in unit configuration.
func DefaultUnitOptions() UnitOptions {
	return UnitOptions{
		Weight:        []WeightUnit{Kilograms, Pounds},
		Height:        []HeightUnit{Meters, Centimeters, Inches},
		DefaultWeight: Kilograms,
		DefaultHeight: Centimeters,
	}
}

// WeightUnitOrDefault returns u when it is one of the recognised weight units,
// otherwise the configured default.
func (o UnitOptions) WeightUnitOrDefault(u string) WeightUnit {
	for _, w := range o.Weight {
		if string(w) == u {
			return w
		}
	}
	return o.DefaultWeight
}

// HeightUnitOrDefault returns u when it is one of the recognised height units,
// otherwise the configured default.
func (o UnitOptions) HeightUnitOrDefault(u string) HeightUnit {
	for _, h := range o.Height {
		if string(h) == u {
			return h
		}
	}
	return o.DefaultHeight
}

// WithDefaults overrides the default units. Unrecognised values leave the
// current default untouched.
func (o UnitOptions) WithDefaults(weight, height string) UnitOptions {
	o.DefaultWeight = o.WeightUnitOrDefault(weight)
	o.DefaultHeight = o.HeightUnitOrDefault(height)
	return o
}
