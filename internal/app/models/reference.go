package models

import (
	"encoding/hex"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeReferenceID collapses the historical representations of a foreign
// key into one canonical hex-string ID. Legacy records carry references as a
// plain string, an ObjectID, a binary blob holding the raw ObjectID bytes, or
// a populated sub-document; the rest of the service only ever sees the
// canonical string.
func NormalizeReferenceID(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	case primitive.Binary:
		if len(v.Data) == len(primitive.ObjectID{}) {
			var objectID primitive.ObjectID
			copy(objectID[:], v.Data)
			return objectID.Hex()
		}
		return hex.EncodeToString(v.Data)
	case primitive.M:
		if id, ok := v["_id"]; ok {
			return NormalizeReferenceID(id)
		}
		return ""
	case primitive.D:
		for _, elem := range v {
			if elem.Key == "_id" {
				return NormalizeReferenceID(elem.Value)
			}
		}
		return ""
	default:
		return ""
	}
}

// Ref is a foreign-key field in any of its stored shapes. It decodes from
// whatever the collection holds and normalizes on read, so heterogeneous
// representations never leak past the repository layer.
type Ref struct {
	raw interface{}
}

func NewRef(id string) Ref {
	return Ref{raw: id}
}

func (r *Ref) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rawValue := bson.RawValue{Type: t, Value: data}
	var value interface{}
	if err := rawValue.Unmarshal(&value); err != nil {
		return err
	}
	r.raw = value
	return nil
}

// MarshalBSONValue always writes the canonical string form, so every write
// migrates the field away from its legacy shape.
func (r Ref) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(r.ID())
}

func (r Ref) ID() string {
	return NormalizeReferenceID(r.raw)
}

func (r Ref) IsZero() bool {
	return r.ID() == ""
}
