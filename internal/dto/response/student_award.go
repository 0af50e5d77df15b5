package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type StudentAwardResponse struct {
	ID              string               `json:"id"`
	Reference       string               `json:"reference"`
	UserID          string               `json:"userId"`
	StudentName     string               `json:"studentName"`
	ParentName      string               `json:"parentName"`
	School          string               `json:"school"`
	Grade           string               `json:"grade"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	AwardCategory   string               `json:"awardCategory"`
	Marksheet       string               `json:"marksheet"`
	Status          entity.BookingStatus `json:"status"`
	RejectionReason *string              `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func StudentAwardToResponse(reg *entity.StudentAwardRegistration) StudentAwardResponse {
	return StudentAwardResponse{
		ID:              reg.ID.String(),
		Reference:       reg.Reference,
		UserID:          reg.UserID.String(),
		StudentName:     reg.StudentName,
		ParentName:      reg.ParentName,
		School:          reg.School,
		Grade:           reg.Grade,
		Email:           reg.Email,
		Phone:           reg.Phone,
		AwardCategory:   reg.AwardCategory,
		Marksheet:       reg.MarksheetRef,
		Status:          reg.Status,
		RejectionReason: reg.RejectionReason,
		CreatedAt:       reg.CreatedAt,
		UpdatedAt:       reg.UpdatedAt,
	}
}
