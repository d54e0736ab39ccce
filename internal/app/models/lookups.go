package models

import "labrequest-service/internal/pkg/dto/responses"

type Location struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
	Site string `json:"site" bson:"site"`
}

func (l Location) ConvertIntoResponse() responses.Location {
	return responses.Location{
		ID:   l.ID,
		Name: l.Name,
		Site: l.Site,
	}
}

type Capability struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Group       string `json:"group" bson:"group,omitempty"`
	Description string `json:"description" bson:"description,omitempty"`
}

func (c Capability) ConvertIntoResponse() responses.Capability {
	return responses.Capability{
		ID:          c.ID,
		Name:        c.Name,
		Group:       c.Group,
		Description: c.Description,
	}
}

type TestMethod struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	Code       string `json:"code" bson:"code"`
	Name       string `json:"name" bson:"name"`
	Capability Ref    `json:"capabilityId" bson:"capabilityId,omitempty"`
	Unit       string `json:"unit" bson:"unit,omitempty"`
}

func (m TestMethod) ConvertIntoResponse() responses.TestMethod {
	return responses.TestMethod{
		ID:           m.ID,
		Code:         m.Code,
		Name:         m.Name,
		CapabilityID: m.Capability.ID(),
		Unit:         m.Unit,
	}
}

type User struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	CostCenter string `json:"costCenter" bson:"costCenter,omitempty"`
	Location   Ref    `json:"locationId" bson:"locationId,omitempty"`
}

func (u User) ConvertIntoResponse() responses.User {
	return responses.User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		CostCenter: u.CostCenter,
		LocationID: u.Location.ID(),
	}
}

type CommercialGrade struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Grade       string `json:"grade" bson:"grade"`
	ProductLine string `json:"productLine" bson:"productLine,omitempty"`
	Plant       string `json:"plant" bson:"plant,omitempty"`
}

func (g CommercialGrade) ConvertIntoResponse() responses.CommercialGrade {
	return responses.CommercialGrade{
		ID:          g.ID,
		Grade:       g.Grade,
		ProductLine: g.ProductLine,
		Plant:       g.Plant,
	}
}

type IONumber struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	Number     string `json:"number" bson:"number"`
	CostCenter string `json:"costCenter" bson:"costCenter"`
	ValidUntil string `json:"validUntil" bson:"validUntil,omitempty"`
}

func (io IONumber) ConvertIntoResponse() responses.IONumber {
	return responses.IONumber{
		ID:         io.ID,
		Number:     io.Number,
		CostCenter: io.CostCenter,
		ValidUntil: io.ValidUntil,
	}
}

type PlantReactor struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	Plant   string `json:"plant" bson:"plant"`
	Reactor string `json:"reactor" bson:"reactor"`
}

func (p PlantReactor) ConvertIntoResponse() responses.PlantReactor {
	return responses.PlantReactor{
		ID:      p.ID,
		Plant:   p.Plant,
		Reactor: p.Reactor,
	}
}

// AppTech is one app-tech taxonomy entry. ShortCode feeds the sample name
// derivation.
type AppTech struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Kind      string `json:"kind" bson:"kind"`
	Name      string `json:"name" bson:"name"`
	ShortCode string `json:"shortCode" bson:"shortCode,omitempty"`
	Parent    Ref    `json:"parentId" bson:"parentId,omitempty"`
}

func (a AppTech) ConvertIntoResponse() responses.AppTech {
	return responses.AppTech{
		ID:        a.ID,
		Kind:      a.Kind,
		Name:      a.Name,
		ShortCode: a.ShortCode,
		ParentID:  a.Parent.ID(),
	}
}
