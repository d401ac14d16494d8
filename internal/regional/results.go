package regional

import (
	"strings"

	"refmap/internal/types"
)

// overseasPrefix marks departments with no mapped region geometry:
// DOM-TOM-COM territories and citizens abroad.
const overseasPrefix = "Z"

// DropStats counts the ballot rows AggregateByRegion removed. Dropping is
// expected behavior, not an error; the counts exist so the caller can log them.
type DropStats struct {
	Overseas  int // department code started with the overseas prefix
	Unmatched int // department code had no geography row after normalization
}

// AggregateByRegion filters and key-normalizes the ballot table, joins it to
// the geography lookup on department code, and sums the tallies per region.
// The result has exactly one row per region code, ordered by region code.
// The name of each region is taken from its first joined row; the geography
// join guarantees all rows of a region agree on it.
func AggregateByRegion(ballots []types.BallotRecord, geography []types.GeographyRow) ([]types.RegionResultRow, DropStats) {
	byDepartment := make(map[string]types.GeographyRow, len(geography))
	for _, g := range geography {
		byDepartment[g.DepartmentCode] = g
	}

	var stats DropStats
	sums := make(map[string]*types.RegionResultRow)
	for _, b := range ballots {
		if strings.HasPrefix(b.DepartmentCode, overseasPrefix) {
			stats.Overseas++
			continue
		}
		geo, ok := byDepartment[padDepartmentCode(b.DepartmentCode)]
		if !ok {
			stats.Unmatched++
			continue
		}

		row := sums[geo.RegionCode]
		if row == nil {
			row = &types.RegionResultRow{RegionCode: geo.RegionCode, RegionName: geo.RegionName}
			sums[geo.RegionCode] = row
		}
		row.Registered += b.Registered
		row.Abstentions += b.Abstentions
		row.Null += b.Null
		row.ChoiceA += b.ChoiceA
		row.ChoiceB += b.ChoiceB
	}

	results := make([]types.RegionResultRow, 0, len(sums))
	for _, row := range sums {
		results = append(results, *row)
	}
	sortByRegionCode(results)
	return results, stats
}

// padDepartmentCode left-zero-pads a department code to width 2 so ballot
// keys like "1" line up with the geography table's "01". Codes already two
// or more characters wide ("2A", "971") pass through unchanged.
func padDepartmentCode(code string) string {
	if len(code) == 1 {
		return "0" + code
	}
	return code
}
