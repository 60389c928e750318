package dto

// RoomRequest es el cuerpo de POST y PUT sobre salas
type RoomRequest struct {
	Name        string `json:"nombre" validate:"required,max=100"`
	Description string `json:"descripcion"`
	Capacity    *int   `json:"capacidad" validate:"omitempty,min=1"`
	Location    string `json:"ubicacion" validate:"max=100"`
	Available   *bool  `json:"disponible"`
	Featured    *bool  `json:"destacada"`
}

// RoomPatch es el cuerpo de PATCH; los campos nil no se tocan
type RoomPatch struct {
	Name        *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Description *string `json:"descripcion"`
	Capacity    *int    `json:"capacidad" validate:"omitempty,min=1"`
	Location    *string `json:"ubicacion" validate:"omitempty,max=100"`
	Available   *bool   `json:"disponible"`
	Featured    *bool   `json:"destacada"`
}

// RoomQuery son los filtros del listado de salas
type RoomQuery struct {
	ListQuery
	Available *bool  `form:"disponible"`
	Featured  *bool  `form:"destacada"`
	Search    string `form:"search"`
}

// AvailabilityQuery consulta si la sala está libre en [inicio, fin)
type AvailabilityQuery struct {
	Start string `form:"inicio"`
	End   string `form:"fin"`
}

type AvailabilityResponse struct {
	RoomID    uint `json:"sala"`
	Available bool `json:"disponible"`
}

// ToPatch convierte un PUT completo en un PATCH con todos los campos
func (r RoomRequest) ToPatch() RoomPatch {
	capacity := 1
	if r.Capacity != nil {
		capacity = *r.Capacity
	}
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	featured := false
	if r.Featured != nil {
		featured = *r.Featured
	}
	return RoomPatch{
		Name:        &r.Name,
		Description: &r.Description,
		Capacity:    &capacity,
		Location:    &r.Location,
		Available:   &available,
		Featured:    &featured,
	}
}
