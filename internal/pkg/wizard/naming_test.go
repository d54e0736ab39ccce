package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveName(t *testing.T) {
	t.Run("Commercial Grade", func(t *testing.T) {
		sample := Sample{
			Category:       CategoryCommercialGrade,
			Grade:          "HD5000S",
			Lot:            "H23010101",
			SampleIdentity: "Test",
		}

		assert.Equal(t, "HD5000S-H23010101-Test", DeriveName(sample, nil))
	})

	t.Run("Commercial Grade with missing field returns empty", func(t *testing.T) {
		sample := Sample{
			Category:       CategoryCommercialGrade,
			Grade:          "HD5000S",
			SampleIdentity: "Test",
		}

		assert.Equal(t, "", DeriveName(sample, nil))
	})

	t.Run("TDNPD uses short codes", func(t *testing.T) {
		resolver := ShortCodeFunc(func(ref string) (string, bool) {
			codes := map[string]string{
				"64f0c2a1": "PE100",
				"64f0c2a2": "PIPE",
			}
			code, ok := codes[ref]
			return code, ok
		})
		sample := Sample{
			Category:       CategoryTDNPD,
			Tech:           "64f0c2a1",
			Feature:        "64f0c2a2",
			SampleIdentity: "S1",
		}

		assert.Equal(t, "PE100-PIPE-S1", DeriveName(sample, resolver))
	})

	t.Run("Unresolved short code falls back to raw value", func(t *testing.T) {
		resolver := ShortCodeFunc(func(ref string) (string, bool) {
			return "", false
		})
		sample := Sample{
			Category:       CategoryBenchmark,
			Feature:        "rawFeatureId",
			SampleIdentity: "S2",
		}

		assert.Equal(t, "rawFeatureId-S2", DeriveName(sample, resolver))
	})

	t.Run("Nil resolver never panics", func(t *testing.T) {
		sample := Sample{
			Category:       CategoryCapDevelopment,
			Feature:        "F1",
			SampleIdentity: "S3",
		}

		assert.Equal(t, "F1-S3", DeriveName(sample, nil))
	})

	t.Run("In-process template", func(t *testing.T) {
		sample := Sample{
			Category:       CategoryInProcess,
			Plant:          "HDPE-1",
			SamplingDate:   "2023-01-01",
			SamplingTime:   "08:30",
			SampleIdentity: "Line3",
		}

		assert.Equal(t, "HDPE-1-2023-01-01-08:30-Line3", DeriveName(sample, nil))
	})

	t.Run("Chemicals and substances template", func(t *testing.T) {
		sample := Sample{
			Category:       CategoryChemicalsSubstances,
			Plant:          "PP-1",
			SamplingDate:   "2023-02-02",
			SamplingTime:   "14:00",
			SampleIdentity: "Additive",
		}

		assert.Equal(t, "PP-1-2023-02-02-14:00-Additive", DeriveName(sample, nil))
	})

	t.Run("Unknown category returns empty", func(t *testing.T) {
		sample := Sample{Category: "Mystery", SampleIdentity: "S"}

		assert.Equal(t, "", DeriveName(sample, nil))
	})
}

func TestNextRequiredField(t *testing.T) {
	t.Run("First unmet field in declaration order", func(t *testing.T) {
		sample := Sample{Category: CategoryCommercialGrade}
		assert.Equal(t, "grade", NextRequiredField(sample))

		sample.Grade = "HD5000S"
		assert.Equal(t, "lot", NextRequiredField(sample))

		sample.Lot = "H23010101"
		assert.Equal(t, "sampleIdentity", NextRequiredField(sample))

		sample.SampleIdentity = "Test"
		assert.Equal(t, "type", NextRequiredField(sample))

		sample.PolymerType = "HDPE"
		assert.Equal(t, "form", NextRequiredField(sample))
	})

	t.Run("No field highlighted when complete", func(t *testing.T) {
		sample := Sample{
			Category:       CategoryBenchmark,
			Feature:        "F1",
			SampleIdentity: "S1",
			PolymerType:    "PP",
			Form:           "Pellet",
		}

		assert.Equal(t, "", NextRequiredField(sample))
	})
}
