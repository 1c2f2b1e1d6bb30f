package request

import "pandit_booking/internal/usecase"

type PanditApplyRequest struct {
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	PhotoURL string `json:"photo_url"`
	Bio      string `json:"bio"`
}

func (r PanditApplyRequest) ToApplication() usecase.PanditApplication {
	return usecase.PanditApplication{
		City:     r.City,
		State:    r.State,
		PhotoURL: r.PhotoURL,
		Bio:      r.Bio,
	}
}

type ApprovePanditRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
