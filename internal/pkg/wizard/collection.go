package wizard

import (
	"labrequest-service/internal/pkg/exceptions"
)

// Collection manages the ordered sample list of one request draft together
// with its editing buffer. Order is insertion order and carries no semantics
// beyond display and CSV round-trips.
type Collection struct {
	Items     []Sample `json:"items"`
	Buffer    Sample   `json:"buffer"`
	EditIndex int      `json:"editIndex"`
}

func NewCollection() Collection {
	return Collection{EditIndex: NoExclusion}
}

// Add commits the buffer as a new entry. On success the buffer keeps every
// category-scoped field and clears only the identity-scoped ones
// (sampleIdentity, generatedName) so the next sample in the same category is
// fast to enter.
func (c *Collection) Add(buffer Sample) error {
	if buffer.GeneratedName == "" {
		return exceptions.ErrSampleNameEmpty()
	}
	if IsDuplicate(buffer.GeneratedName, c.Items, NoExclusion) {
		return exceptions.ErrDuplicateSampleName(buffer.GeneratedName)
	}

	c.Items = append(c.Items, buffer)

	next := buffer
	next.SampleIdentity = ""
	next.GeneratedName = ""
	c.Buffer = next
	return nil
}

// Update replaces the entry at index with the buffer. The duplicate check
// excludes index, so committing an unchanged name back to its own slot is
// not an error.
func (c *Collection) Update(index int, buffer Sample) error {
	if index < 0 || index >= len(c.Items) {
		return exceptions.ErrSampleIndexOutOfRange(index)
	}
	if buffer.GeneratedName == "" {
		return exceptions.ErrSampleNameEmpty()
	}
	if IsDuplicate(buffer.GeneratedName, c.Items, index) {
		return exceptions.ErrDuplicateSampleName(buffer.GeneratedName)
	}

	c.Items[index] = buffer
	c.EditIndex = NoExclusion
	c.Buffer = Sample{}
	return nil
}

// Remove deletes the entry at index and returns its generated name for the
// caller's notification.
func (c *Collection) Remove(index int) (string, error) {
	if index < 0 || index >= len(c.Items) {
		return "", exceptions.ErrSampleIndexOutOfRange(index)
	}
	removedName := c.Items[index].GeneratedName
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	if c.EditIndex == index {
		c.EditIndex = NoExclusion
	}
	return removedName, nil
}

// Copy seeds the buffer with the values of the entry at index, clearing the
// generated name so the variant must be re-derived and re-confirmed. The
// committed list is unchanged.
func (c *Collection) Copy(index int) (Sample, error) {
	if index < 0 || index >= len(c.Items) {
		return Sample{}, exceptions.ErrSampleIndexOutOfRange(index)
	}
	buffer := c.Items[index]
	buffer.GeneratedName = ""
	c.Buffer = buffer
	c.EditIndex = NoExclusion
	return buffer, nil
}

// Edit loads the entry at index into the buffer and binds the collection to
// edit mode until Update or CancelEdit.
func (c *Collection) Edit(index int) (Sample, error) {
	if index < 0 || index >= len(c.Items) {
		return Sample{}, exceptions.ErrSampleIndexOutOfRange(index)
	}
	c.Buffer = c.Items[index]
	c.EditIndex = index
	return c.Buffer, nil
}

// CancelEdit discards the buffer without touching committed entries.
func (c *Collection) CancelEdit() {
	c.Buffer = Sample{}
	c.EditIndex = NoExclusion
}
