package wizard

// NoExclusion is passed as excludeIndex when every entry should be checked.
const NoExclusion = -1

// IsDuplicate reports whether candidateName exactly matches the generated
// name of any sample other than the one at excludeIndex. Matching is
// case-sensitive; no trimming or folding is applied.
func IsDuplicate(candidateName string, samples []Sample, excludeIndex int) bool {
	for i, sample := range samples {
		if i == excludeIndex {
			continue
		}
		if sample.GeneratedName == candidateName {
			return true
		}
	}
	return false
}
