package domain

// BodyProfile holds the last entered body measurements. A zero Weight or
// Height means the field has not been filled in.
type BodyProfile struct {
	Weight     float64    `json:"weight"`
	WeightUnit WeightUnit `json:"weightUnit"`
	Height     float64    `json:"height"`
	HeightUnit HeightUnit `json:"heightUnit"`
}

// BMI computes the reading for the profile.
func (p BodyProfile) BMI() BMIResult {
	return CalculateBMI(p.Weight, p.WeightUnit, p.Height, p.HeightUnit)
}
