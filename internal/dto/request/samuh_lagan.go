package request

// SamuhLaganRequest mirrors the group-wedding registration form: full
// details for both partners, each with a required identity document.
type SamuhLaganRequest struct {
	BrideName       string  `json:"brideName" validate:"required,min=2,max=100"`
	BrideFatherName string  `json:"brideFatherName" validate:"required,min=2,max=100"`
	BrideMotherName string  `json:"brideMotherName" validate:"required,min=2,max=100"`
	BrideAge        int     `json:"brideAge" validate:"required,gte=18"`
	BrideMobile     string  `json:"brideMobile" validate:"required,min=7,max=20"`
	BrideEmail      *string `json:"brideEmail,omitempty" validate:"omitempty,email"`
	BrideAddress    string  `json:"brideAddress" validate:"required,min=5"`
	BrideDocument   string  `json:"brideDocument" validate:"required"`

	GroomName       string  `json:"groomName" validate:"required,min=2,max=100"`
	GroomFatherName string  `json:"groomFatherName" validate:"required,min=2,max=100"`
	GroomMotherName string  `json:"groomMotherName" validate:"required,min=2,max=100"`
	GroomAge        int     `json:"groomAge" validate:"required,gte=21"`
	GroomMobile     string  `json:"groomMobile" validate:"required,min=7,max=20"`
	GroomEmail      *string `json:"groomEmail,omitempty" validate:"omitempty,email"`
	GroomAddress    string  `json:"groomAddress" validate:"required,min=5"`
	GroomDocument   string  `json:"groomDocument" validate:"required"`
}
