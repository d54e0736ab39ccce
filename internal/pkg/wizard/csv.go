package wizard

import (
	"encoding/csv"
	"strings"
)

// ToCSV serializes samples to comma-delimited text. The header row is the
// union of attribute keys present across all samples in first-seen order;
// missing attributes serialize as empty strings.
func ToCSV(samples []Sample) (string, error) {
	var headers []string
	seen := make(map[string]bool)
	for _, sample := range samples {
		for _, key := range sampleAttributeKeys {
			if sample.attribute(key) != "" && !seen[key] {
				seen[key] = true
				headers = append(headers, key)
			}
		}
	}

	var builder strings.Builder
	writer := csv.NewWriter(&builder)
	if err := writer.Write(headers); err != nil {
		return "", err
	}
	for _, sample := range samples {
		row := make([]string, len(headers))
		for i, key := range headers {
			row[i] = sample.attribute(key)
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// FromCSV reconstructs samples from comma-delimited text. Line 0 is the
// header row; fields map positionally. Rows whose generatedName comes back
// empty are discarded as blank or invalid.
func FromCSV(text string) ([]Sample, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	headers := records[0]
	var samples []Sample
	for _, record := range records[1:] {
		var sample Sample
		for i, key := range headers {
			if i >= len(record) {
				break
			}
			sample.setAttribute(key, record[i])
		}
		if sample.GeneratedName == "" {
			continue
		}
		samples = append(samples, sample)
	}
	return samples, nil
}
