package wizard

import "strings"

// NameSeparator joins the template fields of a generated sample name.
const NameSeparator = "-"

// ShortCodeResolver maps a taxonomy reference (tech, feature) to its short
// display code. Resolution is best effort: when the reference has no known
// short code the raw value is used instead.
type ShortCodeResolver interface {
	ShortCode(ref string) (string, bool)
}

// ShortCodeFunc adapts a plain function to ShortCodeResolver.
type ShortCodeFunc func(ref string) (string, bool)

func (f ShortCodeFunc) ShortCode(ref string) (string, bool) {
	return f(ref)
}

// DeriveName computes the generated name for a sample from its category's
// template. It is pure: no I/O beyond the injected resolver, no error paths.
// The empty string is returned when any template field is missing.
func DeriveName(s Sample, resolver ShortCodeResolver) string {
	var parts []string
	switch s.Category {
	case CategoryCommercialGrade:
		parts = []string{s.Grade, s.Lot, s.SampleIdentity}
	case CategoryTDNPD:
		parts = []string{shortCode(s.Tech, resolver), shortCode(s.Feature, resolver), s.SampleIdentity}
	case CategoryBenchmark, CategoryCapDevelopment:
		parts = []string{shortCode(s.Feature, resolver), s.SampleIdentity}
	case CategoryInProcess, CategoryChemicalsSubstances:
		parts = []string{s.Plant, s.SamplingDate, s.SamplingTime, s.SampleIdentity}
	default:
		return ""
	}

	for _, part := range parts {
		if part == "" {
			return ""
		}
	}
	return strings.Join(parts, NameSeparator)
}

func shortCode(ref string, resolver ShortCodeResolver) string {
	if ref == "" || resolver == nil {
		return ref
	}
	if code, ok := resolver.ShortCode(ref); ok && code != "" {
		return code
	}
	return ref
}

// requiredFieldsByCategory lists, in declaration order, the fields a sample
// must carry before it is considered complete. This drives both the
// guided-entry prompt and the client-side completion checks.
var requiredFieldsByCategory = map[Category][]string{
	CategoryCommercialGrade:     {"grade", "lot", "sampleIdentity", "type", "form"},
	CategoryTDNPD:               {"tech", "feature", "sampleIdentity", "type", "form"},
	CategoryBenchmark:           {"feature", "sampleIdentity", "type", "form"},
	CategoryInProcess:           {"plant", "samplingDate", "samplingTime", "sampleIdentity", "type", "form"},
	CategoryChemicalsSubstances: {"plant", "samplingDate", "samplingTime", "sampleIdentity", "type", "form"},
	CategoryCapDevelopment:      {"feature", "sampleIdentity", "type", "form"},
}

// RequiredFields returns the ordered required-field names for a category,
// or nil for an unknown category.
func RequiredFields(category Category) []string {
	return requiredFieldsByCategory[category]
}

// NextRequiredField returns the first unmet required field for the sample's
// category in declaration order, or the empty string when all are met.
func NextRequiredField(s Sample) string {
	for _, field := range requiredFieldsByCategory[s.Category] {
		if s.attribute(field) == "" {
			return field
		}
	}
	return ""
}
