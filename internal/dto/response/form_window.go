package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type FormWindowResponse struct {
	FormType  entity.FormType `json:"formType"`
	Active    bool            `json:"active"`
	Open      bool            `json:"open"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func FormWindowToResponse(w *entity.FormWindow, now time.Time) FormWindowResponse {
	return FormWindowResponse{
		FormType:  w.FormType,
		Active:    w.Active,
		Open:      w.IsOpen(now),
		StartTime: w.OpensAt,
		EndTime:   w.ClosesAt,
		UpdatedAt: w.UpdatedAt,
	}
}
