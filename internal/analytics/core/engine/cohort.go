package engine

import (
	"math"
	"slices"

	"smebig-warroom/internal/analytics/core/domain"
)

// cohortTable groups customers by first purchase month and reports, for
// month offsets 0..3, the percentage of the cohort that ordered again in
// that month.
func cohortTable(cs customers) []domain.CohortRow {
	type cohort struct {
		size   int
		active [domain.CohortOffsets]int
	}

	cohorts := make(map[int]*cohort)
	var months []int

	for _, c := range cs.ordered {
		co, ok := cohorts[c.firstMonth]
		if !ok {
			co = &cohort{}
			cohorts[c.firstMonth] = co
			months = append(months, c.firstMonth)
		}
		co.size++
		for offset, active := range c.activeMonth {
			if active {
				co.active[offset]++
			}
		}
	}

	slices.Sort(months)

	out := make([]domain.CohortRow, 0, len(months))
	for _, m := range months {
		co := cohorts[m]
		row := domain.CohortRow{CohortMonth: monthKey(m), Size: co.size}
		if co.size > 0 {
			for offset := range row.RetentionByOffset {
				row.RetentionByOffset[offset] = int(math.Round(100 * float64(co.active[offset]) / float64(co.size)))
			}
			// every member bought in the cohort month by definition
			row.RetentionByOffset[0] = 100
		}
		out = append(out, row)
	}
	return out
}
