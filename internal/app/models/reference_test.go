package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeReferenceID(t *testing.T) {
	objectID := primitive.NewObjectID()

	t.Run("Plain string passes through", func(t *testing.T) {
		assert.Equal(t, "abc123", NormalizeReferenceID("abc123"))
	})

	t.Run("ObjectID becomes hex", func(t *testing.T) {
		assert.Equal(t, objectID.Hex(), NormalizeReferenceID(objectID))
	})

	t.Run("Legacy binary holding ObjectID bytes", func(t *testing.T) {
		binary := primitive.Binary{Subtype: 0x00, Data: objectID[:]}
		assert.Equal(t, objectID.Hex(), NormalizeReferenceID(binary))
	})

	t.Run("Other binary blobs are hex encoded", func(t *testing.T) {
		binary := primitive.Binary{Subtype: 0x00, Data: []byte{0xde, 0xad}}
		assert.Equal(t, "dead", NormalizeReferenceID(binary))
	})

	t.Run("Populated sub-document uses its _id", func(t *testing.T) {
		assert.Equal(t, objectID.Hex(), NormalizeReferenceID(primitive.M{"_id": objectID, "name": "HD5000S"}))
		assert.Equal(t, objectID.Hex(), NormalizeReferenceID(primitive.D{{Key: "name", Value: "HD5000S"}, {Key: "_id", Value: objectID}}))
	})

	t.Run("Nil and unknown shapes normalize to empty", func(t *testing.T) {
		assert.Equal(t, "", NormalizeReferenceID(nil))
		assert.Equal(t, "", NormalizeReferenceID(42))
		assert.Equal(t, "", NormalizeReferenceID(primitive.M{"name": "no id"}))
	})
}
