package service

import (
	"context"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/pkg/logger"
	"portfolio-chat-be/internal/pkg/mailer"

	"github.com/gofiber/fiber/v2"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) error
}

type contactService struct {
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewContactService(emailService mailer.IEmailService, sysLogger logger.ILogger) IContactService {
	return &contactService{
		emailService: emailService,
		logger:       sysLogger,
	}
}

func (s *contactService) Submit(_ context.Context, req *dto.ContactRequest) error {
	if err := s.emailService.SendContactEmail(req.Name, req.Email, req.Message); err != nil {
		s.logger.Error("Contact", "Failed to send contact email", map[string]interface{}{
			"from":  req.Email,
			"error": err.Error(),
		})
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to send email.")
	}

	s.logger.Info("Contact", "Contact email sent", map[string]interface{}{"from": req.Email})
	return nil
}
