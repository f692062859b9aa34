package domain

import "fmt"

// BMI categories, lower bound inclusive.
const (
	CategoryIncomplete  = "Enter weight and height"
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObesity     = "Obesity"
)

// BMIResult is a body-mass-index reading. BMI is nil when the inputs were
// incomplete; Category then carries the prompt text.
type BMIResult struct {
	BMI      *float64 `json:"bmi"`
	Category string   `json:"category"`
}

// CalculateBMI converts the measurements to kilograms and meters and returns
// the unrounded BMI with its category. It never fails: weights or heights that
// are not positive finite numbers after conversion, or a quotient that
// overflows, give the incomplete result.
func CalculateBMI(weight float64, weightUnit WeightUnit, height float64, heightUnit HeightUnit) BMIResult {
	kg := ToKilograms(weight, weightUnit)
	m := ToMeters(height, heightUnit)
	if !(kg > 0) || !(m > 0) || !isFinite(kg) || !isFinite(m) {
		return BMIResult{Category: CategoryIncomplete}
	}

	bmi := kg / (m * m)
	if !isFinite(bmi) {
		return BMIResult{Category: CategoryIncomplete}
	}
	return BMIResult{BMI: &bmi, Category: bmiCategory(bmi)}
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObesity
	}
}

// Display renders the reading rounded to one decimal, e.g. "BMI: 22.9".
func (r BMIResult) Display() string {
	if r.BMI == nil {
		return "BMI: --"
	}
	return fmt.Sprintf("BMI: %.1f", *r.BMI)
}
