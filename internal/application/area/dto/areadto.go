package dto

// AreaDTO is a named area reference at any level.
type AreaDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ResponsibleAreasDTO is the caller's resolved territorial closure with
// names, sorted by name within each level.
type ResponsibleAreasDTO struct {
	UserType string    `json:"user_type"`
	Communes []AreaDTO `json:"communes"`
	EPCIs    []AreaDTO `json:"epcis"`
	Regions  []AreaDTO `json:"regions"`
}
