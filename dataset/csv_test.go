package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airstat-org/airstat/emissions"
)

var pollutionCSV = []byte(`Country,Year,Nitrogen Oxide,Sulphur Dioxide,Carbon Monoxide,Organic Carbon,NMVOCs,Black Carbon,Ammonia
United States,1990,1,2,3,4,5,6,7
United States,2000,2,3,4,5,6,7,8
World,1990,100,100,100,100,100,100,100
`)

func TestParseCSV(t *testing.T) {
	rows, err := ParseCSV(pollutionCSV)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, emissions.Row{
		Country:        "United States",
		Year:           1990,
		NitrogenOxide:  1,
		SulphurDioxide: 2,
		CarbonMonoxide: 3,
		OrganicCarbon:  4,
		NMVOCs:         5,
		BlackCarbon:    6,
		Ammonia:        7,
	}, rows[0])
	assert.Equal(t, "World", rows[2].Country)
	assert.Equal(t, 700.0, rows[2].TotalEmissions())
}

func TestParseCSVExtraColumnsSkipped(t *testing.T) {
	data := []byte(`Country,Code,Year,Nitrogen Oxide,Sulphur Dioxide,Carbon Monoxide,Organic Carbon,NMVOCs,Black Carbon,Ammonia
France,FRA,1995,1,1,1,1,1,1,1
`)
	rows, err := ParseCSV(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "France", rows[0].Country)
	assert.Equal(t, 7.0, rows[0].TotalEmissions())
}

func TestParseCSVMissingColumn(t *testing.T) {
	data := []byte(`Country,Year,Nitrogen Oxide,Sulphur Dioxide,Carbon Monoxide,Organic Carbon,NMVOCs,Black Carbon
France,1995,1,1,1,1,1,1
`)
	_, err := ParseCSV(data)
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Ammonia")
}

func TestParseCSVMalformedCell(t *testing.T) {
	data := []byte(`Country,Year,Nitrogen Oxide,Sulphur Dioxide,Carbon Monoxide,Organic Carbon,NMVOCs,Black Carbon,Ammonia
France,1995,not-a-number,1,1,1,1,1,1
`)
	_, err := ParseCSV(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nitrogen Oxide")

	data = []byte(`Country,Year,Nitrogen Oxide,Sulphur Dioxide,Carbon Monoxide,Organic Carbon,NMVOCs,Black Carbon,Ammonia
France,199X,1,1,1,1,1,1,1
`)
	_, err = ParseCSV(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Year")
}

func TestParseCSVView(t *testing.T) {
	view, err := ParseCSVView(pollutionCSV)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Len())

	// The parsed view feeds the aggregator directly.
	countries, averages := emissions.TopPolluters(view, 10)
	assert.Equal(t, []string{"United States"}, countries)
	assert.Equal(t, []float64{31.5}, averages) // (28 + 35) / 2
}

func TestLoadFromMemorySource(t *testing.T) {
	src := NewMemorySource()
	src.Put("pollution.csv", pollutionCSV)

	view, err := Load(context.Background(), src, "pollution.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, view.Len())

	_, err = Load(context.Background(), src, "missing.csv")
	require.Error(t, err)
}

func TestSourceFromEnv(t *testing.T) {
	t.Run("default is local", func(t *testing.T) {
		src, err := SourceFromEnv(context.Background())
		require.NoError(t, err)
		assert.IsType(t, &LocalSource{}, src)
	})

	t.Run("memory", func(t *testing.T) {
		t.Setenv("AIRSTAT_STORAGE_MODE", "memory")
		src, err := SourceFromEnv(context.Background())
		require.NoError(t, err)
		assert.IsType(t, &MemorySource{}, src)
	})

	t.Run("s3 requires configuration", func(t *testing.T) {
		t.Setenv("AIRSTAT_STORAGE_MODE", "s3")
		t.Setenv("S3_BUCKET_NAME", "")
		_, err := SourceFromEnv(context.Background())
		require.Error(t, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		t.Setenv("AIRSTAT_STORAGE_MODE", "ftp")
		_, err := SourceFromEnv(context.Background())
		require.Error(t, err)
	})
}
