package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"orientalgroup/internal/domain"
	"orientalgroup/internal/dto"
	apperrors "orientalgroup/internal/errors"
	"orientalgroup/internal/infrastructure/mailer"
)

type mockContactRepository struct {
	InsertFunc      func(ctx context.Context, sub domain.ContactSubmission) (uint, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.ContactSubmission, error)
	ListFunc        func(ctx context.Context) ([]domain.ContactSubmission, error)
	SetReadFunc     func(ctx context.Context, id uint, isRead bool) error
	RecordReplyFunc func(ctx context.Context, id uint, reply string) error
	DeleteFunc      func(ctx context.Context, id uint) error
	InboxFunc       func(ctx context.Context) ([]domain.InboxEntry, error)
}

func (m *mockContactRepository) Insert(ctx context.Context, sub domain.ContactSubmission) (uint, error) {
	return m.InsertFunc(ctx, sub)
}

func (m *mockContactRepository) FindByID(ctx context.Context, id uint) (*domain.ContactSubmission, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockContactRepository) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	return m.ListFunc(ctx)
}

func (m *mockContactRepository) SetRead(ctx context.Context, id uint, isRead bool) error {
	return m.SetReadFunc(ctx, id, isRead)
}

func (m *mockContactRepository) RecordReply(ctx context.Context, id uint, reply string) error {
	return m.RecordReplyFunc(ctx, id, reply)
}

func (m *mockContactRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockContactRepository) Inbox(ctx context.Context) ([]domain.InboxEntry, error) {
	return m.InboxFunc(ctx)
}

type fakeMailer struct {
	sent    []mailer.Message
	sendErr error
}

func (f *fakeMailer) Send(msg mailer.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestContactSubmit_StoresPendingSubmission(t *testing.T) {
	var stored domain.ContactSubmission
	repo := &mockContactRepository{
		InsertFunc: func(ctx context.Context, sub domain.ContactSubmission) (uint, error) {
			stored = sub
			return 7, nil
		},
	}

	uc := NewContactUseCase(repo, &fakeMailer{}, zap.NewNop())

	resp, err := uc.Submit(context.Background(), dto.SubmitContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Do you ship to Malta?",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.ID != 7 {
		t.Errorf("expected id 7, got %d", resp.ID)
	}
	if stored.Status != domain.ContactStatusPending {
		t.Errorf("expected status %q, got %q", domain.ContactStatusPending, stored.Status)
	}
}

func TestContactReply_SendsMailThenRecords(t *testing.T) {
	subject := "Shipping question"
	replied := false
	repo := &mockContactRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.ContactSubmission, error) {
			return &domain.ContactSubmission{
				ID:      id,
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Subject: &subject,
				Message: "Do you ship to Malta?",
			}, nil
		},
		RecordReplyFunc: func(ctx context.Context, id uint, reply string) error {
			replied = true
			return nil
		},
	}
	mail := &fakeMailer{}

	uc := NewContactUseCase(repo, mail, zap.NewNop())

	err := uc.Reply(context.Background(), 7, dto.ReplyContactRequest{
		Reply:     "Yes, we ship worldwide.",
		AdminName: "Sam",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(mail.sent) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(mail.sent))
	}
	msg := mail.sent[0]
	if msg.To != "jane@example.com" {
		t.Errorf("expected mail to submitter, got %q", msg.To)
	}
	if msg.Subject != "Re: Shipping question" {
		t.Errorf("unexpected subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "Yes, we ship worldwide.") {
		t.Errorf("reply text missing from body: %s", msg.Body)
	}
	if !strings.Contains(msg.Body, "Do you ship to Malta?") {
		t.Errorf("original message missing from body: %s", msg.Body)
	}
	if !replied {
		t.Error("expected reply to be recorded")
	}
}

func TestContactReply_MailFailureSkipsRecord(t *testing.T) {
	repo := &mockContactRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.ContactSubmission, error) {
			return &domain.ContactSubmission{ID: id, Name: "Jane", Email: "jane@example.com", Message: "hi"}, nil
		},
		RecordReplyFunc: func(ctx context.Context, id uint, reply string) error {
			t.Fatal("reply must not be recorded when the mail fails")
			return nil
		},
	}
	mail := &fakeMailer{sendErr: errors.New("smtp unreachable")}

	uc := NewContactUseCase(repo, mail, zap.NewNop())

	err := uc.Reply(context.Background(), 7, dto.ReplyContactRequest{Reply: "x", AdminName: "Sam"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestContactReply_NotFound(t *testing.T) {
	repo := &mockContactRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.ContactSubmission, error) {
			return nil, apperrors.NewNotFoundError("contact submission not found")
		},
	}

	uc := NewContactUseCase(repo, &fakeMailer{}, zap.NewNop())

	err := uc.Reply(context.Background(), 99, dto.ReplyContactRequest{Reply: "x", AdminName: "Sam"})
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestInbox_MapsBothKinds(t *testing.T) {
	repo := &mockContactRepository{
		InboxFunc: func(ctx context.Context) ([]domain.InboxEntry, error) {
			return []domain.InboxEntry{
				{Kind: domain.InboxKindQuoteRequest, ID: 42, Subject: "Quote Request #42"},
				{Kind: domain.InboxKindContact, ID: 7, Subject: "Shipping question"},
			}, nil
		},
	}

	uc := NewContactUseCase(repo, &fakeMailer{}, zap.NewNop())

	entries, err := uc.Inbox(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Kind != "quote_request" || entries[1].Kind != "contact" {
		t.Errorf("unexpected kinds: %q, %q", entries[0].Kind, entries[1].Kind)
	}
}
