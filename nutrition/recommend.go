package nutrition

import (
	"fmt"
	"sort"
)

// RecommendOptions tunes recommendation output. Zero value gives the
// built-in food table and a cap of 5.
type RecommendOptions struct {
	Max          int                 // max recommendations returned; <=0 means 5
	ExampleFoods map[string][]string // overrides/extends the built-in table
}

const defaultMaxRecommendations = 5

// Example foods per nutrient, drawn from the seeded catalog. Callers may
// override per nutrient via RecommendOptions.ExampleFoods.
var exampleFoods = map[string][]string{
	NutrientProtein: {"Chicken Breast", "Egg", "Salmon", "Dal Tadka"},
	NutrientCarbs:   {"Brown Rice", "Chapati", "Banana"},
	NutrientFat:     {"Almonds", "Salmon", "Milk"},
	NutrientFiber:   {"Broccoli", "Rajma", "Chole", "Almonds"},
	"Vitamin A":     {"Spinach", "Broccoli"},
	"Vitamin C":     {"Broccoli", "Apple"},
	"Vitamin D":     {"Salmon", "Egg", "Milk"},
	"Vitamin E":     {"Almonds", "Spinach"},
	"Vitamin K":     {"Spinach", "Broccoli"},
	"Vitamin B12":   {"Salmon", "Milk", "Egg"},
	"Calcium":       {"Milk", "Curd / Dahi", "Almonds"},
	"Iron":          {"Spinach", "Chole", "Rajma"},
	"Magnesium":     {"Almonds", "Brown Rice", "Spinach"},
	"Zinc":          {"Chicken Breast", "Chole", "Almonds"},
	"Potassium":     {"Banana", "Rajma", "Broccoli"},
}

// Recommend turns a report into a prioritized list of dietary
// adjustments. Only DEFICIENT and LOW nutrients produce output; adequate
// intake stays silent.
func Recommend(report *Report, opts RecommendOptions) []Recommendation {
	if report == nil {
		return nil
	}
	max := opts.Max
	if max <= 0 {
		max = defaultMaxRecommendations
	}

	// deficiency compounded by overall undereating is more urgent
	caloriesShort := report.Calories.Status != StatusUnknown && report.Calories.Percentage < 80

	var recs []Recommendation
	for _, s := range append(append([]NutrientScore{}, report.Macros...), report.Micros...) {
		var priority Priority
		switch s.Status {
		case StatusDeficient:
			priority = PriorityHigh
		case StatusLow:
			priority = PriorityMedium
		default:
			continue
		}
		if s.Percentage < 30 && caloriesShort {
			priority = PriorityHigh
		}
		recs = append(recs, Recommendation{
			Nutrient:   s.Name,
			Priority:   priority,
			Percentage: s.Percentage,
			Message:    messageFor(s),
			Foods:      foodsFor(s.Name, opts.ExampleFoods),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return priorityRank(recs[i].Priority) < priorityRank(recs[j].Priority)
		}
		return recs[i].Percentage < recs[j].Percentage
	})

	if len(recs) > max {
		recs = recs[:max]
	}
	return recs
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

func messageFor(s NutrientScore) string {
	if s.Status == StatusDeficient {
		return fmt.Sprintf("%s is at %.0f%% of your daily target, well short of what you need.", s.Name, s.Percentage)
	}
	return fmt.Sprintf("%s is at %.0f%% of your daily target, a little more would help.", s.Name, s.Percentage)
}

func foodsFor(nutrient string, overrides map[string][]string) []string {
	if overrides != nil {
		if foods, ok := overrides[nutrient]; ok {
			return foods
		}
	}
	if foods, ok := exampleFoods[nutrient]; ok {
		return foods
	}
	return []string{}
}
