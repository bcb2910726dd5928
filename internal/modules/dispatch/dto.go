package dispatch

// PlaceRequest moves an entity. A null or empty projectId sends it back to the pool.
type PlaceRequest struct {
	Kind      string  `json:"kind" validate:"required,oneof=worker workers equipment equip"`
	EntityID  string  `json:"entityId" validate:"required"`
	ProjectID *string `json:"projectId"`
	Reason    string  `json:"reason" validate:"max=200"`
}

func (r PlaceRequest) target() string {
	if r.ProjectID == nil {
		return ""
	}
	return *r.ProjectID
}
