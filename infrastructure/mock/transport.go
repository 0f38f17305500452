package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"web-messenger/contract"
	"web-messenger/domain"
	"web-messenger/errors"
	"web-messenger/observability"

	"github.com/samber/lo"
)

const profileName = "mock"

// Transport answers the message endpoints with canned data and never touches
// the network for them. Other endpoints go to next, when there is one.
type Transport struct {
	log   *slog.Logger
	next  contract.ITransport
	stats *observability.APIStats
	now   func() time.Time
}

// NewTransport wraps next. stats may be nil.
func NewTransport(log *slog.Logger, next contract.ITransport, stats *observability.APIStats) *Transport {
	if stats == nil {
		stats = observability.NewAPIStats()
	}
	return &Transport{log: log, next: next, stats: stats, now: time.Now}
}

// Messages returns the canned conversation, stamped with the current time.
func (t *Transport) Messages() []domain.Message {
	at := t.now().UTC()
	return []domain.Message{
		{
			ID:         "mock_1",
			SenderID:   "user123",
			ReceiverID: "user456",
			Content:    "Hello! This is a mock message.",
			Status:     domain.StatusSent,
			CreatedAt:  at,
		},
		{
			ID:         "mock_2",
			SenderID:   "user456",
			ReceiverID: "user123",
			Content:    "Hi! How are you doing?",
			Status:     domain.StatusSent,
			CreatedAt:  at,
		},
	}
}

// Do serves the message endpoints locally and counts them in the stats
// under the "mock" profile.
func (t *Transport) Do(ctx context.Context, request contract.Request) (contract.Response, error) {
	if !canned(request.Path) {
		if t.next == nil {
			return contract.Response{}, fmt.Errorf("%w: %s", errors.ErrMockUnsupported, request.Path)
		}
		return t.next.Do(ctx, request)
	}

	t.stats.IncrRequests()
	resp, err := t.serve(request)
	if err != nil {
		t.stats.RecordFailure(err)
		return contract.Response{}, err
	}
	t.stats.RecordSuccess(profileName)
	return resp, nil
}

func canned(path string) bool {
	return strings.Contains(path, contract.EndpointGetMessages) ||
		strings.Contains(path, contract.EndpointSendMessage)
}

func (t *Transport) serve(request contract.Request) (contract.Response, error) {
	switch {
	case strings.Contains(request.Path, contract.EndpointGetMessages):
		t.log.Debug("Using mock API mode", "endpoint", request.Path)
		messages := t.Messages()
		return respond(domain.Envelope[[]domain.Message]{
			Message: "Messages retrieved successfully (mock)",
			Data:    &messages,
			Count:   lo.ToPtr(len(messages)),
		})
	case strings.Contains(request.Path, contract.EndpointSendMessage):
		t.log.Debug("Using mock API mode", "endpoint", request.Path)
		var req domain.SendMessageRequest
		if len(request.Body) > 0 {
			if err := json.Unmarshal(request.Body, &req); err != nil {
				return contract.Response{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
			}
		}
		at := t.now().UTC()
		return respond(domain.Envelope[domain.Message]{
			Message: "Message sent successfully (mock)",
			Data: &domain.Message{
				ID:         fmt.Sprintf("mock_%d", at.UnixMilli()),
				SenderID:   req.SenderID,
				ReceiverID: req.ReceiverID,
				Content:    req.Content,
				Status:     domain.StatusSent,
				CreatedAt:  at,
			},
		})
	default:
		return contract.Response{}, fmt.Errorf("%w: %s", errors.ErrMockUnsupported, request.Path)
	}
}

// Probe always reaches the real backend: health checks are meant to tell
// whether it is up, mock mode or not.
func (t *Transport) Probe(ctx context.Context, path string) (int, error) {
	if t.next == nil {
		return 0, fmt.Errorf("%w: %s", errors.ErrMockUnsupported, path)
	}
	return t.next.Probe(ctx, path)
}

func respond[T any](envelope domain.Envelope[T]) (contract.Response, error) {
	body, err := json.Marshal(envelope)
	if err != nil {
		return contract.Response{}, err
	}
	return contract.Response{Status: http.StatusOK, Profile: profileName, Body: body}, nil
}
