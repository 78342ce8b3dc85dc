package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/dto"
	"orientalgroup/internal/infrastructure/mailer"
)

const contactConfirmation = "Thank you for your message. We will get back to you shortly."

type ContactRepository interface {
	Insert(ctx context.Context, sub domain.ContactSubmission) (uint, error)
	FindByID(ctx context.Context, id uint) (*domain.ContactSubmission, error)
	List(ctx context.Context) ([]domain.ContactSubmission, error)
	SetRead(ctx context.Context, id uint, isRead bool) error
	RecordReply(ctx context.Context, id uint, reply string) error
	Delete(ctx context.Context, id uint) error
	Inbox(ctx context.Context) ([]domain.InboxEntry, error)
}

type ContactUseCase struct {
	contacts ContactRepository
	mail     mailer.Sender
	logger   *zap.Logger
}

func NewContactUseCase(contacts ContactRepository, mail mailer.Sender, logger *zap.Logger) *ContactUseCase {
	return &ContactUseCase{contacts: contacts, mail: mail, logger: logger}
}

func (uc *ContactUseCase) Submit(ctx context.Context, req dto.SubmitContactRequest) (*dto.SubmitContactResponse, error) {
	id, err := uc.contacts.Insert(ctx, domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.ContactStatusPending,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("contact submission received", zap.Uint("contactId", id), zap.String("email", req.Email))
	return &dto.SubmitContactResponse{ID: id, Message: contactConfirmation}, nil
}

func (uc *ContactUseCase) List(ctx context.Context) ([]dto.ContactSubmissionDTO, error) {
	subs, err := uc.contacts.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ContactSubmissionDTO, 0, len(subs))
	for _, sub := range subs {
		out = append(out, toContactDTO(sub))
	}
	return out, nil
}

func (uc *ContactUseCase) Get(ctx context.Context, id uint) (*dto.ContactSubmissionDTO, error) {
	sub, err := uc.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := toContactDTO(*sub)
	return &d, nil
}

func (uc *ContactUseCase) SetRead(ctx context.Context, id uint, isRead bool) error {
	return uc.contacts.SetRead(ctx, id, isRead)
}

func (uc *ContactUseCase) Delete(ctx context.Context, id uint) error {
	return uc.contacts.Delete(ctx, id)
}

// Reply sends the admin's answer to the submitter by mail, then records it.
// The mail goes first: a stored reply that never reached the customer is
// worse than a retried send.
func (uc *ContactUseCase) Reply(ctx context.Context, id uint, req dto.ReplyContactRequest) error {
	sub, err := uc.contacts.FindByID(ctx, id)
	if err != nil {
		return err
	}

	subject := "Re: your inquiry to Oriental Group"
	if sub.Subject != nil && *sub.Subject != "" {
		subject = fmt.Sprintf("Re: %s", *sub.Subject)
	}

	err = uc.mail.Send(mailer.Message{
		To:      sub.Email,
		Subject: subject,
		Body:    mailer.ReplyBody(sub.Name, sub.Message, req.Reply, req.AdminName),
	})
	if err != nil {
		uc.logger.Error("reply mail failed", zap.Uint("contactId", id), zap.Error(err))
		return err
	}

	if err := uc.contacts.RecordReply(ctx, id, req.Reply); err != nil {
		return err
	}

	uc.logger.Info("contact reply sent", zap.Uint("contactId", id), zap.String("to", sub.Email))
	return nil
}

func (uc *ContactUseCase) Inbox(ctx context.Context) ([]dto.InboxEntryDTO, error) {
	entries, err := uc.contacts.Inbox(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.InboxEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.InboxEntryDTO{
			Kind:      e.Kind,
			ID:        e.ID,
			Name:      e.Name,
			Email:     e.Email,
			Subject:   e.Subject,
			Status:    e.Status,
			IsRead:    e.IsRead,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

func toContactDTO(sub domain.ContactSubmission) dto.ContactSubmissionDTO {
	return dto.ContactSubmissionDTO{
		ID:         sub.ID,
		Name:       sub.Name,
		Email:      sub.Email,
		Phone:      sub.Phone,
		Subject:    sub.Subject,
		Message:    sub.Message,
		IsRead:     sub.IsRead,
		Status:     sub.Status,
		AdminReply: sub.AdminReply,
		RepliedAt:  sub.RepliedAt,
		CreatedAt:  sub.CreatedAt,
	}
}
