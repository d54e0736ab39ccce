package wizard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	inProcess := Sample{
		Category:       CategoryInProcess,
		Plant:          "HDPE-1",
		SamplingDate:   "2023-01-01",
		SamplingTime:   "08:30",
		SampleIdentity: "Line3",
		PolymerType:    "HDPE",
		Form:           "Powder",
	}
	inProcess.GeneratedName = DeriveName(inProcess, nil)

	samples := []Sample{commercialSample("A"), commercialSample("B"), inProcess}

	text, err := ToCSV(samples)
	require.NoError(t, err)

	restored, err := FromCSV(text)
	require.NoError(t, err)
	assert.Equal(t, samples, restored)
}

func TestToCSVHeaders(t *testing.T) {
	samples := []Sample{commercialSample("A")}
	text, err := ToCSV(samples)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "category,grade,lot,sampleIdentity,type,form,generatedName", lines[0])
}

func TestToCSVQuotesDelimiter(t *testing.T) {
	sample := commercialSample("A")
	sample.SampleIdentity = "With,Comma"
	sample.GeneratedName = DeriveName(sample, nil)

	text, err := ToCSV([]Sample{sample})
	require.NoError(t, err)
	assert.Contains(t, text, `"With,Comma"`)

	restored, err := FromCSV(text)
	require.NoError(t, err)
	require.Len(t, restored, 1)
	assert.Equal(t, "With,Comma", restored[0].SampleIdentity)
}

func TestFromCSVDropsRowsWithoutGeneratedName(t *testing.T) {
	text := strings.Join([]string{
		"category,grade,lot,sampleIdentity,generatedName",
		"CommercialGrade,HD5000S,H23010101,A,HD5000S-H23010101-A",
		"CommercialGrade,HD5000S,H23010101,B,",
		",,,,",
	}, "\n")

	samples, err := FromCSV(text)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "HD5000S-H23010101-A", samples[0].GeneratedName)
}

func TestFromCSVEmptyInput(t *testing.T) {
	samples, err := FromCSV("")
	require.NoError(t, err)
	assert.Empty(t, samples)
}
