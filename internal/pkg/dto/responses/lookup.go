package responses

type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Site string `json:"site"`
}

type Capability struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group,omitempty"`
	Description string `json:"description,omitempty"`
}

type TestMethod struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	CapabilityID string `json:"capabilityId,omitempty"`
	Unit         string `json:"unit,omitempty"`
}

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CostCenter string `json:"costCenter,omitempty"`
	LocationID string `json:"locationId,omitempty"`
}

type CommercialGrade struct {
	ID          string `json:"id"`
	Grade       string `json:"grade"`
	ProductLine string `json:"productLine,omitempty"`
	Plant       string `json:"plant,omitempty"`
}

type IONumber struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	CostCenter string `json:"costCenter"`
	ValidUntil string `json:"validUntil,omitempty"`
}

type PlantReactor struct {
	ID      string `json:"id"`
	Plant   string `json:"plant"`
	Reactor string `json:"reactor"`
}

type AppTech struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	ShortCode string `json:"shortCode,omitempty"`
	ParentID  string `json:"parentId,omitempty"`
}
