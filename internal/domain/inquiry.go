package domain

import "time"

// Estados de gestión de una consulta recibida por el formulario de contacto.
const (
	InquiryStatusNew        = "New"
	InquiryStatusInProgress = "In Progress"
	InquiryStatusResolved   = "Resolved"
)

type ContactInquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
