package report

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subspaceue/solarconfig/internal/catalog"
	"github.com/subspaceue/solarconfig/pkg/core"
)

const expectedHeader = "PlanetName,SemiMajorAxisUU,Eccentricity,OrbitalPeriodDays,InclinationDeg,LongAscNodeDeg,ArgPeriapsisDeg,MeanAnomalyDeg,DiameterKm,MassEarthMasses,RotationPeriodDays,HasMoons"

func TestFormatCSV_HeaderAndRowCount(t *testing.T) {
	out, err := FormatCSV(catalog.Planets(), core.DefaultScaleFactors())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, expectedHeader, lines[0])
	assert.Len(t, CSVHeader, 12)
}

func TestFormatCSV_Rows(t *testing.T) {
	out, err := FormatCSV(catalog.Planets(), core.DefaultScaleFactors())
	require.NoError(t, err)

	assert.Contains(t, out, "Mercury,57909175.68,0.20563069,87.969,7.00487,48.33167,77.45645,252.25084,4879.4,0.055,58.646,FALSE\n")
	assert.Contains(t, out, "Earth,149597887.16,0.01671022,365.256,0.00005,-11.26064,102.94719,100.46435,12742.0,1.000,1.000,TRUE\n")
	assert.Contains(t, out, "Saturn,1426725412.59,0.05415060,10759.220,2.48446,113.71504,92.43194,49.94432,116460.0,95.200,0.444,TRUE\n")
	assert.Contains(t, out, "Neptune,4498252910.76,0.00858587,60182.000,1.76917,131.72169,44.97135,304.88003,49244.0,17.100,0.671,TRUE\n")
}

func TestFormatCSV_ParsesBack(t *testing.T) {
	planets := catalog.Planets()
	out, err := FormatCSV(planets, core.DefaultScaleFactors())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(planets)+1)

	for i, rec := range records[1:] {
		require.Len(t, rec, 12)
		assert.Equal(t, planets[i].Name, rec[0])
		if planets[i].HasMoons {
			assert.Equal(t, "TRUE", rec[11])
		} else {
			assert.Equal(t, "FALSE", rec[11])
		}
	}
}

func TestFormatCSV_DistanceFollowsScale(t *testing.T) {
	earth, err := catalog.ByName("Earth")
	require.NoError(t, err)

	f := core.DefaultScaleFactors()
	f.DistanceScale = 0.001
	row := CSVRow(earth, f)
	assert.Equal(t, "14959788715.58", row[1])
}

func TestFormatCSV_NoPlanets(t *testing.T) {
	out, err := FormatCSV(nil, core.DefaultScaleFactors())
	require.NoError(t, err)
	assert.Equal(t, expectedHeader+"\n", out)
}
