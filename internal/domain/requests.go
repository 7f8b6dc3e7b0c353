package domain

type NearbyRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
	// RadiusM overrides the configured dedup radius when set. Zero is a
	// legal radius: it still matches a spot at the identical coordinate.
	RadiusM *float64 `json:"radius_m,omitempty" validate:"omitempty,min=0,max=5000"`
}

type CreateSpotRequest struct {
	Lat         float64        `json:"lat" validate:"lat"`
	Lng         float64        `json:"lng" validate:"lng"`
	Title       string         `json:"title" validate:"required,max=100"`
	Address     *string        `json:"address,omitempty" validate:"omitempty,max=200"`
	Category    DangerCategory `json:"category" validate:"required,category"`
	Severity    int            `json:"severity" validate:"required,min=1,max=5"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=500"`
	PhotoURL    *string        `json:"photo_url,omitempty" validate:"omitempty,max=2048"`
}

type AddReportRequest struct {
	Category    DangerCategory `json:"category" validate:"required,category"`
	Severity    int            `json:"severity" validate:"required,min=1,max=5"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=500"`
	PhotoURL    *string        `json:"photo_url,omitempty" validate:"omitempty,max=2048"`
}

type UpdateSpotStatusRequest struct {
	Status SpotStatus `json:"status" validate:"required,oneof=active resolved removed"`
}
