package email

import (
	"context"
	"errors"
)

// InquiryNotice es el contenido del aviso que se manda al buzón del sitio
// cuando llega una consulta por el formulario de contacto.
type InquiryNotice struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Sender define la interfaz para envio de avisos por correo.
type Sender interface {
	SendInquiryNotice(ctx context.Context, toEmail string, notice InquiryNotice) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendInquiryNotice(_ context.Context, _ string, _ InquiryNotice) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
