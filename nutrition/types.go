package nutrition

import "time"

// Nutrient status bands, classified from the uncapped percentage of goal.
type Status string

const (
	StatusDeficient  Status = "DEFICIENT"  // < 50%
	StatusLow        Status = "LOW"        // 50–79%
	StatusAdequate   Status = "ADEQUATE"   // 80–99%
	StatusSufficient Status = "SUFFICIENT" // >= 100%
	StatusUnknown    Status = "UNKNOWN"    // no data / no recommended amount
)

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Canonical macro nutrient names used as map keys throughout the engine.
const (
	NutrientProtein = "Protein"
	NutrientCarbs   = "Carbohydrates"
	NutrientFat     = "Fat"
	NutrientFiber   = "Fiber"
)

// Warning is a recoverable data-quality finding attached to a result.
// Aggregation continues past these; they are never fatal.
type Warning struct {
	Code    string `json:"code"`    // "unknown_food" | "serving_size_fallback"
	Message string `json:"message"`
	EntryID uint   `json:"entry_id,omitempty"`
}

// Totals is the output of aggregation: accumulated amounts per nutrient
// name plus calories and the span of contributing entries. Ephemeral,
// recomputed on demand.
type Totals struct {
	Calories   float64            `json:"calories"`
	Nutrients  map[string]float64 `json:"nutrients"`
	Units      map[string]string  `json:"units"`
	EntryCount int                `json:"entry_count"`
	From       time.Time          `json:"from,omitempty"`
	To         time.Time          `json:"to,omitempty"`
}

// GoalSet is a user's daily macro targets. All values must be positive
// when passed to Evaluate.
type GoalSet struct {
	CalorieGoal float64 `json:"calorieGoal"`
	ProteinGoal float64 `json:"proteinGoal"`
	CarbsGoal   float64 `json:"carbsGoal"`
	FatGoal     float64 `json:"fatGoal"`
	FiberGoal   float64 `json:"fiberGoal"`
}

// BiometricProfile carries optional body measurements; zero means absent.
type BiometricProfile struct {
	WeightKg float64 `json:"weightKg"`
	HeightCm float64 `json:"heightCm"`
}

// NutrientScore is one nutrient's line in a report. Percentage is
// uncapped; cap it at 100 for display only.
type NutrientScore struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Consumed    float64 `json:"consumed"`
	Recommended float64 `json:"recommended"`
	Percentage  float64 `json:"percentage"`
	Status      Status  `json:"status"`
}

// Report is the output of Evaluate. Calories are tracked separately and
// never blended into OverallScore. OverallScore is nil when there was no
// data to evaluate.
type Report struct {
	Calories     NutrientScore   `json:"calories"`
	Macros       []NutrientScore `json:"macronutrients"`
	Micros       []NutrientScore `json:"micronutrients"`
	OverallScore *int            `json:"overallScore"`
	EntryCount   int             `json:"mealCount"`
}

// Recommendation is one suggested dietary adjustment.
type Recommendation struct {
	Nutrient   string   `json:"nutrient"`
	Priority   Priority `json:"priority"`
	Percentage float64  `json:"percentage"`
	Message    string   `json:"message"`
	Foods      []string `json:"foods"`
}

type reference struct {
	amount float64
	unit   string
}

// Daily reference intakes for the tracked micronutrients (adult values).
// Nutrients outside this table are reported as UNKNOWN and excluded from
// the overall score.
var dailyReference = map[string]reference{
	"Vitamin A":   {900, "mcg"},
	"Vitamin C":   {90, "mg"},
	"Vitamin D":   {20, "mcg"},
	"Vitamin E":   {15, "mg"},
	"Vitamin K":   {120, "mcg"},
	"Vitamin B12": {2.4, "mcg"},
	"Calcium":     {1000, "mg"},
	"Iron":        {18, "mg"},
	"Magnesium":   {400, "mg"},
	"Zinc":        {11, "mg"},
	"Potassium":   {3500, "mg"},
}

// Stable report order for micronutrients.
var microOrder = []string{
	"Vitamin A", "Vitamin C", "Vitamin D", "Vitamin E", "Vitamin K",
	"Vitamin B12", "Calcium", "Iron", "Magnesium", "Zinc", "Potassium",
}
