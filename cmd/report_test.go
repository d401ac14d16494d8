package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"refmap/internal/types"
)

func testResults() []types.RegionResultRow {
	return []types.RegionResultRow{
		{RegionCode: "84", RegionName: "Auvergne-Rhône-Alpes", Registered: 100, Abstentions: 20, Null: 5, ChoiceA: 40, ChoiceB: 35},
		{RegionCode: "93", RegionName: "Provence-Alpes-Côte d'Azur", Registered: 50, Abstentions: 10, Null: 2, ChoiceA: 14, ChoiceB: 24},
	}
}

func TestPrintResults(t *testing.T) {
	logger = zap.NewNop()

	var buf bytes.Buffer
	printResults(&buf, testResults())
	out := buf.String()

	assert.Contains(t, out, "84")
	assert.Contains(t, out, "Auvergne-Rhône-Alpes")
	assert.Contains(t, out, "TOTAL")
	// Totals line sums both regions.
	assert.Contains(t, out, "150")

	// Extremes: 40/75 ≈ 53.3% beats 14/38 ≈ 36.8%.
	assert.Contains(t, out, "Strongest Choice A : Auvergne-Rhône-Alpes (84) at 53.3%")
	assert.Contains(t, out, "Weakest Choice A   : Provence-Alpes-Côte d'Azur (93) at 36.8%")
}

func TestPrintResults_NoExpressedBallots(t *testing.T) {
	logger = zap.NewNop()

	var buf bytes.Buffer
	printResults(&buf, []types.RegionResultRow{
		{RegionCode: "84", RegionName: "Auvergne-Rhône-Alpes", Registered: 10, Abstentions: 10},
	})

	assert.NotContains(t, buf.String(), "Strongest Choice A")
}

func TestRenderRegionDetail(t *testing.T) {
	var buf bytes.Buffer
	renderRegionDetail(&buf, testResults()[0])
	out := buf.String()

	assert.Contains(t, out, "Region            : Auvergne-Rhône-Alpes (84)")
	assert.Contains(t, out, "Registered        : 100")
	assert.Contains(t, out, "Abstentions       : 20 (20.0%)")
	assert.Contains(t, out, "Expressed         : 75")
	assert.Contains(t, out, "Choice A share    : 53.33%")
}

func TestRenderRegionDetail_UndefinedShare(t *testing.T) {
	var buf bytes.Buffer
	renderRegionDetail(&buf, types.RegionResultRow{RegionCode: "11", RegionName: "Île-de-France"})

	assert.Contains(t, buf.String(), "undefined (no expressed ballots)")
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "Ain", truncate("Ain", 10))
	assert.Equal(t, "Auvergne…", truncate("Auvergne-Rhône-Alpes", 9))
}
