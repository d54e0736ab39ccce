package requests

type CreateLocation struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Site string `json:"site" validate:"required,min=2,max=100"`
}

type CreateCapability struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Group       string `json:"group" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type CreateTestMethod struct {
	Code         string `json:"code" validate:"required,min=2,max=50"`
	Name         string `json:"name" validate:"required,min=2,max=200"`
	CapabilityID string `json:"capabilityId" validate:"omitempty"`
	Unit         string `json:"unit" validate:"omitempty,max=30"`
}

type CreateUser struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	CostCenter string `json:"costCenter" validate:"omitempty,max=30"`
	LocationID string `json:"locationId" validate:"omitempty"`
}

type CreateCommercialGrade struct {
	Grade       string `json:"grade" validate:"required,min=2,max=50"`
	ProductLine string `json:"productLine" validate:"omitempty,max=100"`
	Plant       string `json:"plant" validate:"omitempty,plant"`
}

type CreateIONumber struct {
	Number     string `json:"number" validate:"required,min=2,max=50"`
	CostCenter string `json:"costCenter" validate:"required,max=30"`
	ValidUntil string `json:"validUntil" validate:"omitempty"`
}

type CreatePlantReactor struct {
	Plant   string `json:"plant" validate:"required,plant"`
	Reactor string `json:"reactor" validate:"required,min=1,max=50"`
}

type CreateAppTech struct {
	Kind      string `json:"kind" validate:"required,oneof=Tech CAT Feature App"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	ShortCode string `json:"shortCode" validate:"omitempty,max=30"`
	ParentID  string `json:"parentId" validate:"omitempty"`
}
