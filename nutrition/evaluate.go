package nutrition

import (
	"fmt"
	"math"
	"sort"
)

// Evaluate compares aggregated totals against a goal set and produces a
// scored report. All macro goals must be positive; zero entries yields a
// report of UNKNOWN statuses with a nil overall score rather than a
// misleading 0%.
func Evaluate(totals Totals, goals GoalSet) (*Report, error) {
	if err := validateGoals(goals); err != nil {
		return nil, err
	}

	report := &Report{EntryCount: totals.EntryCount}

	if totals.EntryCount == 0 {
		report.Calories = unknownScore("Calories", "kcal", goals.CalorieGoal)
		report.Macros = []NutrientScore{
			unknownScore(NutrientProtein, "g", goals.ProteinGoal),
			unknownScore(NutrientCarbs, "g", goals.CarbsGoal),
			unknownScore(NutrientFat, "g", goals.FatGoal),
			unknownScore(NutrientFiber, "g", goals.FiberGoal),
		}
		for _, name := range microOrder {
			ref := dailyReference[name]
			report.Micros = append(report.Micros, unknownScore(name, ref.unit, ref.amount))
		}
		return report, nil
	}

	report.Calories = scoreNutrient("Calories", "kcal", totals.Calories, goals.CalorieGoal)

	report.Macros = []NutrientScore{
		scoreNutrient(NutrientProtein, "g", totals.Nutrients[NutrientProtein], goals.ProteinGoal),
		scoreNutrient(NutrientCarbs, "g", totals.Nutrients[NutrientCarbs], goals.CarbsGoal),
		scoreNutrient(NutrientFat, "g", totals.Nutrients[NutrientFat], goals.FatGoal),
		scoreNutrient(NutrientFiber, "g", totals.Nutrients[NutrientFiber], goals.FiberGoal),
	}

	for _, name := range microOrder {
		ref := dailyReference[name]
		report.Micros = append(report.Micros, scoreNutrient(name, ref.unit, totals.Nutrients[name], ref.amount))
	}
	// open-set nutrients outside the reference table: report, don't score
	for _, name := range extraNutrients(totals) {
		report.Micros = append(report.Micros, NutrientScore{
			Name:     name,
			Unit:     totals.Units[name],
			Consumed: totals.Nutrients[name],
			Status:   StatusUnknown,
		})
	}

	score := overallScore(report)
	report.OverallScore = &score
	return report, nil
}

func validateGoals(g GoalSet) error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"calorie", g.CalorieGoal},
		{"protein", g.ProteinGoal},
		{"carbs", g.CarbsGoal},
		{"fat", g.FatGoal},
		{"fiber", g.FiberGoal},
	} {
		if c.value <= 0 {
			return fmt.Errorf("%s goal must be positive, got %g", c.name, c.value)
		}
	}
	return nil
}

func scoreNutrient(name, unit string, consumed, recommended float64) NutrientScore {
	s := NutrientScore{Name: name, Unit: unit, Consumed: consumed, Recommended: recommended}
	if recommended <= 0 {
		s.Status = StatusUnknown
		return s
	}
	s.Percentage = consumed / recommended * 100
	s.Status = statusFor(s.Percentage)
	return s
}

func statusFor(percentage float64) Status {
	switch {
	case percentage >= 100:
		return StatusSufficient
	case percentage >= 80:
		return StatusAdequate
	case percentage >= 50:
		return StatusLow
	default:
		return StatusDeficient
	}
}

func unknownScore(name, unit string, recommended float64) NutrientScore {
	return NutrientScore{Name: name, Unit: unit, Recommended: recommended, Status: StatusUnknown}
}

// overallScore averages the capped-at-100 percentages of every scored
// nutrient except calories, so raw excess never offsets a deficiency.
func overallScore(r *Report) int {
	var sum float64
	var n int
	for _, s := range append(append([]NutrientScore{}, r.Macros...), r.Micros...) {
		if s.Status == StatusUnknown {
			continue
		}
		sum += math.Min(s.Percentage, 100)
		n++
	}
	if n == 0 {
		return 0
	}
	score := int(math.Round(sum / float64(n)))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func extraNutrients(t Totals) []string {
	var extras []string
	for name := range t.Nutrients {
		switch name {
		case NutrientProtein, NutrientCarbs, NutrientFat, NutrientFiber:
			continue
		}
		if _, ok := dailyReference[name]; ok {
			continue
		}
		extras = append(extras, name)
	}
	sort.Strings(extras)
	return extras
}
