package types

// BallotRecord is one referendum tally as recorded at department granularity.
// We keep only the columns the regional aggregation needs; the source files
// carry more (town-level detail, percentages) that we ignore.
type BallotRecord struct {
	DepartmentCode string
	Registered     int
	Abstentions    int
	Null           int
	ChoiceA        int
	ChoiceB        int
}

// RegionRecord is one top-level administrative division.
type RegionRecord struct {
	Code string
	Name string
}

// DepartmentRecord is one sub-region division. RegionCode references the
// owning RegionRecord.
type DepartmentRecord struct {
	Code       string
	Name       string
	RegionCode string
}

// GeographyRow is the department→region lookup produced by the geography
// join. One row per department.
type GeographyRow struct {
	RegionCode     string
	RegionName     string
	DepartmentCode string
	DepartmentName string
}

// RegionResultRow holds the summed tallies for one region. RegionCode is
// unique across a result set.
type RegionResultRow struct {
	RegionCode  string
	RegionName  string
	Registered  int
	Abstentions int
	Null        int
	ChoiceA     int
	ChoiceB     int
}

// Expressed returns the number of ballots cast for either choice.
func (r RegionResultRow) Expressed() int {
	return r.ChoiceA + r.ChoiceB
}
