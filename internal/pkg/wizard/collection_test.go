package wizard

import (
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commercialSample(identity string) Sample {
	sample := Sample{
		Category:       CategoryCommercialGrade,
		Grade:          "HD5000S",
		Lot:            "H23010101",
		SampleIdentity: identity,
		PolymerType:    "HDPE",
		Form:           "Pellet",
	}
	sample.GeneratedName = DeriveName(sample, nil)
	return sample
}

func TestIsDuplicate(t *testing.T) {
	samples := []Sample{commercialSample("A"), commercialSample("B")}

	assert.True(t, IsDuplicate("HD5000S-H23010101-A", samples, NoExclusion))
	assert.False(t, IsDuplicate("HD5000S-H23010101-C", samples, NoExclusion))

	// Matching is case-sensitive.
	assert.False(t, IsDuplicate("hd5000s-h23010101-a", samples, NoExclusion))

	// The excluded index is ignored.
	assert.False(t, IsDuplicate("HD5000S-H23010101-A", samples, 0))
	assert.True(t, IsDuplicate("HD5000S-H23010101-A", samples, 1))
}

func TestCollectionAdd(t *testing.T) {
	t.Run("Add appends and clears identity fields only", func(t *testing.T) {
		collection := NewCollection()
		err := collection.Add(commercialSample("A"))
		require.NoError(t, err)

		require.Len(t, collection.Items, 1)
		assert.Equal(t, "HD5000S-H23010101-A", collection.Items[0].GeneratedName)

		// Category-scoped fields persist into the next buffer.
		assert.Equal(t, CategoryCommercialGrade, collection.Buffer.Category)
		assert.Equal(t, "HD5000S", collection.Buffer.Grade)
		assert.Equal(t, "H23010101", collection.Buffer.Lot)
		assert.Equal(t, "HDPE", collection.Buffer.PolymerType)
		assert.Equal(t, "Pellet", collection.Buffer.Form)
		assert.Equal(t, "", collection.Buffer.SampleIdentity)
		assert.Equal(t, "", collection.Buffer.GeneratedName)
	})

	t.Run("Adding the same name twice is rejected", func(t *testing.T) {
		collection := NewCollection()
		require.NoError(t, collection.Add(commercialSample("A")))

		err := collection.Add(commercialSample("A"))
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusConflict))
		assert.Len(t, collection.Items, 1)
	})

	t.Run("Empty generated name is rejected", func(t *testing.T) {
		collection := NewCollection()
		buffer := commercialSample("A")
		buffer.GeneratedName = ""

		err := collection.Add(buffer)
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
		assert.Empty(t, collection.Items)
	})
}

func TestCollectionUpdate(t *testing.T) {
	t.Run("Self-duplicate is not an error", func(t *testing.T) {
		collection := NewCollection()
		require.NoError(t, collection.Add(commercialSample("A")))

		buffer, err := collection.Edit(0)
		require.NoError(t, err)
		buffer.Form = "Powder"

		require.NoError(t, collection.Update(0, buffer))
		assert.Equal(t, "Powder", collection.Items[0].Form)
		assert.Equal(t, NoExclusion, collection.EditIndex)
	})

	t.Run("Colliding with another entry is rejected", func(t *testing.T) {
		collection := NewCollection()
		require.NoError(t, collection.Add(commercialSample("A")))
		require.NoError(t, collection.Add(commercialSample("B")))

		buffer, err := collection.Edit(1)
		require.NoError(t, err)
		buffer.SampleIdentity = "A"
		buffer.GeneratedName = DeriveName(buffer, nil)

		err = collection.Update(1, buffer)
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusConflict))
		assert.Equal(t, "HD5000S-H23010101-B", collection.Items[1].GeneratedName)
	})

	t.Run("Index out of bounds", func(t *testing.T) {
		collection := NewCollection()
		err := collection.Update(3, commercialSample("A"))
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusNotFound))
	})
}

func TestCollectionRemove(t *testing.T) {
	collection := NewCollection()
	require.NoError(t, collection.Add(commercialSample("A")))
	require.NoError(t, collection.Add(commercialSample("B")))

	removedName, err := collection.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, "HD5000S-H23010101-A", removedName)
	require.Len(t, collection.Items, 1)
	assert.Equal(t, "HD5000S-H23010101-B", collection.Items[0].GeneratedName)

	_, err = collection.Remove(5)
	assert.Error(t, err)
}

func TestCollectionCopy(t *testing.T) {
	collection := NewCollection()
	require.NoError(t, collection.Add(commercialSample("A")))

	buffer, err := collection.Copy(0)
	require.NoError(t, err)

	// Values duplicated, generated name cleared, committed list untouched.
	assert.Equal(t, "", buffer.GeneratedName)
	assert.Equal(t, CategoryCommercialGrade, buffer.Category)
	assert.Equal(t, "A", buffer.SampleIdentity)
	require.Len(t, collection.Items, 1)
	assert.Equal(t, "HD5000S-H23010101-A", collection.Items[0].GeneratedName)
}

func TestCollectionEditCancel(t *testing.T) {
	collection := NewCollection()
	require.NoError(t, collection.Add(commercialSample("A")))

	_, err := collection.Edit(0)
	require.NoError(t, err)
	assert.Equal(t, 0, collection.EditIndex)

	collection.CancelEdit()
	assert.Equal(t, NoExclusion, collection.EditIndex)
	assert.Equal(t, Sample{}, collection.Buffer)
	assert.Len(t, collection.Items, 1)
}
