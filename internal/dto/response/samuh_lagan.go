package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type SamuhLaganResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	UserID    string `json:"userId"`

	BrideName       string  `json:"brideName"`
	BrideFatherName string  `json:"brideFatherName"`
	BrideMotherName string  `json:"brideMotherName"`
	BrideAge        int     `json:"brideAge"`
	BrideMobile     string  `json:"brideMobile"`
	BrideEmail      *string `json:"brideEmail,omitempty"`
	BrideAddress    string  `json:"brideAddress"`
	BrideDocument   string  `json:"brideDocument"`

	GroomName       string  `json:"groomName"`
	GroomFatherName string  `json:"groomFatherName"`
	GroomMotherName string  `json:"groomMotherName"`
	GroomAge        int     `json:"groomAge"`
	GroomMobile     string  `json:"groomMobile"`
	GroomEmail      *string `json:"groomEmail,omitempty"`
	GroomAddress    string  `json:"groomAddress"`
	GroomDocument   string  `json:"groomDocument"`

	Status          entity.BookingStatus `json:"status"`
	RejectionReason *string              `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func SamuhLaganToResponse(reg *entity.SamuhLaganRegistration) SamuhLaganResponse {
	return SamuhLaganResponse{
		ID:              reg.ID.String(),
		Reference:       reg.Reference,
		UserID:          reg.UserID.String(),
		BrideName:       reg.BrideName,
		BrideFatherName: reg.BrideFatherName,
		BrideMotherName: reg.BrideMotherName,
		BrideAge:        reg.BrideAge,
		BrideMobile:     reg.BrideMobile,
		BrideEmail:      reg.BrideEmail,
		BrideAddress:    reg.BrideAddress,
		BrideDocument:   reg.BrideDocRef,
		GroomName:       reg.GroomName,
		GroomFatherName: reg.GroomFatherName,
		GroomMotherName: reg.GroomMotherName,
		GroomAge:        reg.GroomAge,
		GroomMobile:     reg.GroomMobile,
		GroomEmail:      reg.GroomEmail,
		GroomAddress:    reg.GroomAddress,
		GroomDocument:   reg.GroomDocRef,
		Status:          reg.Status,
		RejectionReason: reg.RejectionReason,
		CreatedAt:       reg.CreatedAt,
		UpdatedAt:       reg.UpdatedAt,
	}
}
