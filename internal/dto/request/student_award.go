package request

type StudentAwardRequest struct {
	StudentName   string `json:"studentName" validate:"required,min=2,max=100"`
	ParentName    string `json:"parentName" validate:"required,min=2,max=100"`
	School        string `json:"school" validate:"required,min=2,max=200"`
	Grade         string `json:"grade" validate:"required,max=20"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=7,max=20"`
	AwardCategory string `json:"awardCategory" validate:"required,max=100"`
	Marksheet     string `json:"marksheet" validate:"required"`
}
