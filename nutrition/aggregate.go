package nutrition

import (
	"fmt"
	"sort"
	"time"

	"github.com/Sahithi-Sritha/FSAD-Project/models"
)

// Grouping modes for AggregateGrouped.
const (
	GroupDay         = "day"
	GroupMealType    = "mealType"
	GroupDayMealType = "day+mealType"
)

// Options controls aggregation. Location sets the day boundary for
// day-based grouping; nil means UTC.
type Options struct {
	Location *time.Location
}

const fallbackServingGrams = 100.0

// Aggregate folds dietary entries into per-nutrient totals. Entries whose
// food cannot be resolved are skipped and reported as warnings; a
// non-positive portion is a caller bug and fails the call.
func Aggregate(entries []models.DietaryEntry, foodsByID map[uint]models.FoodItem, opts Options) (Totals, []Warning, error) {
	totals := newTotals()
	warnings := []Warning{}

	for i := range entries {
		e := &entries[i]
		if e.PortionGrams <= 0 {
			return Totals{}, nil, fmt.Errorf("entry %d: portion must be positive, got %g", e.ID, e.PortionGrams)
		}
		food, ok := foodsByID[e.FoodItemID]
		if !ok {
			warnings = append(warnings, Warning{
				Code:    "unknown_food",
				Message: fmt.Sprintf("food item %d not found in catalog; entry skipped", e.FoodItemID),
				EntryID: e.ID,
			})
			continue
		}
		if food.Profile.ServingSizeGrams <= 0 {
			warnings = append(warnings, Warning{
				Code:    "serving_size_fallback",
				Message: fmt.Sprintf("food %q has no serving size; assuming %gg", food.Name, fallbackServingGrams),
				EntryID: e.ID,
			})
		}
		fold(&totals, e, &food.Profile)
	}
	return totals, warnings, nil
}

// AggregateGrouped partitions entries by calendar day and/or meal type
// before applying the same fold per partition. Day keys are YYYY-MM-DD in
// opts.Location (UTC by default); combined keys are "YYYY-MM-DD/MEALTYPE".
func AggregateGrouped(entries []models.DietaryEntry, foodsByID map[uint]models.FoodItem, groupBy string, opts Options) (map[string]Totals, []Warning, error) {
	switch groupBy {
	case GroupDay, GroupMealType, GroupDayMealType:
	default:
		return nil, nil, fmt.Errorf("unsupported groupBy %q", groupBy)
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	buckets := map[string][]models.DietaryEntry{}
	for _, e := range entries {
		var key string
		switch groupBy {
		case GroupDay:
			key = e.ConsumedAt.In(loc).Format("2006-01-02")
		case GroupMealType:
			key = e.MealType
		case GroupDayMealType:
			key = e.ConsumedAt.In(loc).Format("2006-01-02") + "/" + e.MealType
		}
		buckets[key] = append(buckets[key], e)
	}

	out := make(map[string]Totals, len(buckets))
	var warnings []Warning
	// iterate keys in order so warnings come out deterministically
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t, ws, err := Aggregate(buckets[k], foodsByID, opts)
		if err != nil {
			return nil, nil, err
		}
		out[k] = t
		warnings = append(warnings, ws...)
	}
	return out, warnings, nil
}

func newTotals() Totals {
	return Totals{
		Nutrients: map[string]float64{},
		Units:     map[string]string{},
	}
}

func fold(t *Totals, e *models.DietaryEntry, p *models.NutrientProfile) {
	serving := p.ServingSizeGrams
	if serving <= 0 {
		serving = fallbackServingGrams
	}
	factor := e.PortionGrams / serving

	t.Calories += p.Calories * factor
	addNutrient(t, NutrientProtein, p.Protein*factor, "g")
	addNutrient(t, NutrientCarbs, p.Carbohydrates*factor, "g")
	addNutrient(t, NutrientFat, p.Fat*factor, "g")
	addNutrient(t, NutrientFiber, p.Fiber*factor, "g")
	for _, m := range p.Micronutrients {
		addNutrient(t, m.Name, m.Amount*factor, m.Unit)
	}

	t.EntryCount++
	if t.From.IsZero() || e.ConsumedAt.Before(t.From) {
		t.From = e.ConsumedAt
	}
	if t.To.IsZero() || e.ConsumedAt.After(t.To) {
		t.To = e.ConsumedAt
	}
}

func addNutrient(t *Totals, name string, amount float64, unit string) {
	t.Nutrients[name] += amount
	if unit != "" {
		t.Units[name] = unit
	}
}

// ScaleDaily divides accumulated totals by a day count, turning a
// multi-day aggregate into a per-day average for evaluation against
// daily goals. EntryCount is preserved.
func ScaleDaily(t Totals, days int) Totals {
	if days <= 1 {
		return t
	}
	out := newTotals()
	out.Calories = t.Calories / float64(days)
	for k, v := range t.Nutrients {
		out.Nutrients[k] = v / float64(days)
	}
	for k, v := range t.Units {
		out.Units[k] = v
	}
	out.EntryCount = t.EntryCount
	out.From, out.To = t.From, t.To
	return out
}
