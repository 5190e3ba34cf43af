package domain

// Gender as captured during onboarding.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// UserPhysicalStats are the body measurements collected on onboarding.
type UserPhysicalStats struct {
	Age    int      `json:"age"`
	Gender Gender   `json:"gender"`
	Height float64  `json:"height"`        // cm
	Weight float64  `json:"weight"`        // kg
	Waist  float64  `json:"waist"`         // cm
	Neck   float64  `json:"neck"`          // cm
	Hip    *float64 `json:"hip,omitempty"` // cm, usually only given by female users
}

// HealthAnalysis is the AI assessment produced from UserPhysicalStats.
type HealthAnalysis struct {
	BMI             float64 `json:"bmi"`
	BodyFatEstimate string  `json:"bodyFatEstimate"` // range or approximate value, e.g. "%15-18"
	BodyType        string  `json:"bodyType"`
	Status          string  `json:"status"`
	Feedback        string  `json:"feedback"`
}

// UserProfile is the single user's onboarding result.
type UserProfile struct {
	Stats    UserPhysicalStats `json:"stats"`
	Analysis *HealthAnalysis   `json:"analysis,omitempty"`
	Name     string            `json:"name,omitempty"`
}
