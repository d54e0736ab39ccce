package wizard

// Category identifies which attribute set a sample carries and which
// derivation template applies to it.
type Category string

const (
	CategoryCommercialGrade     Category = "CommercialGrade"
	CategoryTDNPD               Category = "TDNPD"
	CategoryBenchmark           Category = "Benchmark"
	CategoryInProcess           Category = "InProcess"
	CategoryChemicalsSubstances Category = "ChemicalsSubstances"
	CategoryCapDevelopment      Category = "CapDevelopment"
)

var Categories = []Category{
	CategoryCommercialGrade,
	CategoryTDNPD,
	CategoryBenchmark,
	CategoryInProcess,
	CategoryChemicalsSubstances,
	CategoryCapDevelopment,
}

func (c Category) Valid() bool {
	for _, category := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

var Plants = []string{"HDPE-1", "HDPE-2", "LLDPE-1", "PP-1", "PP-2", "Pilot"}

var PolymerTypes = []string{"HDPE", "LLDPE", "LDPE", "PP", "EVA", "Other"}

var SampleForms = []string{"Pellet", "Powder", "Film", "Sheet", "Liquid", "Other"}

func ValidPlant(plant string) bool {
	return containsString(Plants, plant)
}

func ValidPolymerType(polymerType string) bool {
	return containsString(PolymerTypes, polymerType)
}

func ValidSampleForm(form string) bool {
	return containsString(SampleForms, form)
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// Sample is one specimen attached to a request draft. Only the attributes
// relevant to Category are populated; the rest stay empty.
type Sample struct {
	Category       Category `json:"category"`
	Grade          string   `json:"grade,omitempty"`
	Lot            string   `json:"lot,omitempty"`
	Tech           string   `json:"tech,omitempty"`
	Feature        string   `json:"feature,omitempty"`
	Plant          string   `json:"plant,omitempty"`
	SamplingDate   string   `json:"samplingDate,omitempty"`
	SamplingTime   string   `json:"samplingTime,omitempty"`
	SampleIdentity string   `json:"sampleIdentity,omitempty"`
	PolymerType    string   `json:"type,omitempty"`
	Form           string   `json:"form,omitempty"`
	GeneratedName  string   `json:"generatedName,omitempty"`
}

// sampleAttributeKeys is the canonical attribute order used by the CSV bridge
// and the required-field prompts.
var sampleAttributeKeys = []string{
	"category",
	"grade",
	"lot",
	"tech",
	"feature",
	"plant",
	"samplingDate",
	"samplingTime",
	"sampleIdentity",
	"type",
	"form",
	"generatedName",
}

func (s Sample) attribute(key string) string {
	switch key {
	case "category":
		return string(s.Category)
	case "grade":
		return s.Grade
	case "lot":
		return s.Lot
	case "tech":
		return s.Tech
	case "feature":
		return s.Feature
	case "plant":
		return s.Plant
	case "samplingDate":
		return s.SamplingDate
	case "samplingTime":
		return s.SamplingTime
	case "sampleIdentity":
		return s.SampleIdentity
	case "type":
		return s.PolymerType
	case "form":
		return s.Form
	case "generatedName":
		return s.GeneratedName
	default:
		return ""
	}
}

func (s *Sample) setAttribute(key, value string) {
	switch key {
	case "category":
		s.Category = Category(value)
	case "grade":
		s.Grade = value
	case "lot":
		s.Lot = value
	case "tech":
		s.Tech = value
	case "feature":
		s.Feature = value
	case "plant":
		s.Plant = value
	case "samplingDate":
		s.SamplingDate = value
	case "samplingTime":
		s.SamplingTime = value
	case "sampleIdentity":
		s.SampleIdentity = value
	case "type":
		s.PolymerType = value
	case "form":
		s.Form = value
	case "generatedName":
		s.GeneratedName = value
	}
}
