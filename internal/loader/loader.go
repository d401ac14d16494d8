// Package loader reads the three flat input files into memory. It does no
// transformation beyond parsing; filtering and key normalization happen in
// the regional package.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"refmap/internal/types"
)

// Datasets bundles the three raw tables a run starts from.
type Datasets struct {
	Referendum  []types.BallotRecord
	Regions     []types.RegionRecord
	Departments []types.DepartmentRecord
}

// LoadAll reads all three inputs. The first failure aborts the load.
func LoadAll(referendumPath, regionsPath, departmentsPath string) (Datasets, error) {
	var ds Datasets
	var err error

	if ds.Referendum, err = LoadReferendum(referendumPath); err != nil {
		return Datasets{}, err
	}
	if ds.Regions, err = LoadRegions(regionsPath); err != nil {
		return Datasets{}, err
	}
	if ds.Departments, err = LoadDepartments(departmentsPath); err != nil {
		return Datasets{}, err
	}
	return ds, nil
}

// LoadReferendum reads the semicolon-delimited referendum tally file.
func LoadReferendum(path string) ([]types.BallotRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open referendum file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true

	cols, err := headerIndex(r, path, "Department code", "Registered", "Abstentions", "Null", "Choice A", "Choice B")
	if err != nil {
		return nil, err
	}

	var records []types.BallotRecord
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		line++

		rec := types.BallotRecord{DepartmentCode: row[cols["Department code"]]}
		for _, c := range []struct {
			name string
			dst  *int
		}{
			{"Registered", &rec.Registered},
			{"Abstentions", &rec.Abstentions},
			{"Null", &rec.Null},
			{"Choice A", &rec.ChoiceA},
			{"Choice B", &rec.ChoiceB},
		} {
			n, err := strconv.Atoi(row[cols[c.name]])
			if err != nil {
				return nil, fmt.Errorf("%s line %d: column %q: %w", path, line, c.name, err)
			}
			*c.dst = n
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadRegions reads the comma-delimited region list.
func LoadRegions(path string) ([]types.RegionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open regions file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	cols, err := headerIndex(r, path, "code", "name")
	if err != nil {
		return nil, err
	}

	var records []types.RegionRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		records = append(records, types.RegionRecord{
			Code: row[cols["code"]],
			Name: row[cols["name"]],
		})
	}
	return records, nil
}

// LoadDepartments reads the comma-delimited department list.
func LoadDepartments(path string) ([]types.DepartmentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open departments file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	cols, err := headerIndex(r, path, "code", "name", "region_code")
	if err != nil {
		return nil, err
	}

	var records []types.DepartmentRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		records = append(records, types.DepartmentRecord{
			Code:       row[cols["code"]],
			Name:       row[cols["name"]],
			RegionCode: row[cols["region_code"]],
		})
	}
	return records, nil
}

// headerIndex reads the header row and maps each required column name to
// its position. Extra columns are ignored; a missing one is fatal.
func headerIndex(r *csv.Reader, path string, required ...string) (map[string]int, error) {
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, name)
		}
	}
	return idx, nil
}
