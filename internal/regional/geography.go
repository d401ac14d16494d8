// Package regional implements the join-and-aggregate core: departments are
// resolved to their owning region, ballot tallies are attached to that
// geography, and the tallies are summed per region. Every function takes
// its inputs read-only and returns fresh slices.
package regional

import (
	"sort"

	"refmap/internal/types"
)

// JoinGeography inner-joins departments to regions on region code, producing
// the department→region lookup table. Departments whose region code matches
// no region are dropped; well-formed input has none.
func JoinGeography(regions []types.RegionRecord, departments []types.DepartmentRecord) []types.GeographyRow {
	nameByCode := make(map[string]string, len(regions))
	for _, r := range regions {
		nameByCode[r.Code] = r.Name
	}

	rows := make([]types.GeographyRow, 0, len(departments))
	for _, d := range departments {
		name, ok := nameByCode[d.RegionCode]
		if !ok {
			continue
		}
		rows = append(rows, types.GeographyRow{
			RegionCode:     d.RegionCode,
			RegionName:     name,
			DepartmentCode: d.Code,
			DepartmentName: d.Name,
		})
	}
	return rows
}

// sortByRegionCode orders result rows by their primary key so output is
// deterministic run to run.
func sortByRegionCode(rows []types.RegionResultRow) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].RegionCode < rows[j].RegionCode })
}
