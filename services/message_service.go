package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"web-messenger/contract"
	"web-messenger/domain"
	"web-messenger/errors"

	"github.com/samber/lo"
)

type MessageService struct {
	log              *slog.Logger
	transport        contract.ITransport
	notifier         contract.INotifier
	defaultLimit     int
	maxMessageLength int
}

// NewMessageService wires the service on a transport. notifier may be nil.
func NewMessageService(
	log *slog.Logger,
	transport contract.ITransport,
	notifier contract.INotifier,
	defaultLimit, maxMessageLength int,
) *MessageService {
	return &MessageService{
		log:              log,
		transport:        transport,
		notifier:         notifier,
		defaultLimit:     lo.Ternary(defaultLimit > 0, defaultLimit, contract.DefaultMessagesLimit),
		maxMessageLength: maxMessageLength,
	}
}

// SendMessage validates the request and posts it to the backend.
// A failing push notification is logged and never fails the send.
func (s *MessageService) SendMessage(ctx context.Context, req domain.SendMessageRequest) (domain.Envelope[domain.Message], error) {
	if err := domain.ValidateSendMessage(req, s.maxMessageLength); err != nil {
		return domain.Envelope[domain.Message]{}, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return domain.Envelope[domain.Message]{}, err
	}

	s.log.Debug("Sending message", "sender", req.SenderID, "receiver", req.ReceiverID)
	resp, err := s.transport.Do(ctx, contract.Request{
		Method: http.MethodPost,
		Path:   contract.EndpointSendMessage,
		Body:   body,
	})
	if err != nil {
		s.log.Error("Send message failed", "error", err)
		return domain.Envelope[domain.Message]{}, err
	}

	envelope, err := decode[domain.Message](resp)
	if err != nil {
		return domain.Envelope[domain.Message]{}, err
	}

	if s.notifier != nil && envelope.Data != nil {
		if err = s.notifier.NotifyMessage(ctx, *envelope.Data); err != nil {
			s.log.Warn("Push notification failed", "message_id", envelope.Data.ID, "error", err)
		}
	}
	return envelope, nil
}

// GetMessages fetches the latest messages. A non-positive limit means the default one.
func (s *MessageService) GetMessages(ctx context.Context, limit int) (domain.Envelope[[]domain.Message], error) {
	return s.getMessages(ctx, contract.EndpointGetMessages, limit)
}

// GetConversationMessages returns the messages exchanged between two users,
// oldest first. Errors are logged and yield an empty slice.
func (s *MessageService) GetConversationMessages(ctx context.Context, senderID, receiverID string, limit int) []domain.Message {
	envelope, err := s.GetMessages(ctx, limit)
	if err != nil {
		s.log.Error("Error fetching conversation messages",
			"sender", senderID, "receiver", receiverID, "error", err)
		return []domain.Message{}
	}

	messages := lo.FromPtr(envelope.Data)
	conversation := domain.Conversation(messages, senderID, receiverID)
	s.log.Debug("Conversation messages found",
		"total", len(messages), "conversation", len(conversation))
	return conversation
}

func (s *MessageService) GetMessagesBySender(ctx context.Context, senderID string, limit int) (domain.Envelope[[]domain.Message], error) {
	if senderID == "" {
		return domain.Envelope[[]domain.Message]{}, fmt.Errorf("%w: sender id is required", errors.ErrValidation)
	}
	return s.getMessages(ctx, contract.EndpointMessagesBySender+"/"+url.PathEscape(senderID), limit)
}

func (s *MessageService) GetMessagesByReceiver(ctx context.Context, receiverID string, limit int) (domain.Envelope[[]domain.Message], error) {
	if receiverID == "" {
		return domain.Envelope[[]domain.Message]{}, fmt.Errorf("%w: receiver id is required", errors.ErrValidation)
	}
	return s.getMessages(ctx, contract.EndpointMessagesByReceiver+"/"+url.PathEscape(receiverID), limit)
}

// TestConnection reports whether the backend health endpoint answers with a 2xx.
// Failures are logged at debug level: the health worker polls this and
// reports transitions itself.
func (s *MessageService) TestConnection(ctx context.Context) bool {
	status, err := s.transport.Probe(ctx, contract.EndpointHealth)
	if err != nil {
		s.log.Debug("Backend connection test failed", "error", err)
		return false
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		s.log.Debug("Backend health check failed", "status", status)
		return false
	}
	return true
}

// TestBasicConnectivity reports whether the backend answers at all, whatever the status.
func (s *MessageService) TestBasicConnectivity(ctx context.Context) bool {
	status, err := s.transport.Probe(ctx, contract.EndpointRoot)
	if err != nil {
		s.log.Error("Basic connectivity failed", "error", err)
		return false
	}
	s.log.Debug("Basic connectivity response", "status", status)
	return true
}

func (s *MessageService) getMessages(ctx context.Context, endpoint string, limit int) (domain.Envelope[[]domain.Message], error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	resp, err := s.transport.Do(ctx, contract.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("%s?limit=%d", endpoint, limit),
	})
	if err != nil {
		return domain.Envelope[[]domain.Message]{}, err
	}
	return decode[[]domain.Message](resp)
}

func decode[T any](resp contract.Response) (domain.Envelope[T], error) {
	var envelope domain.Envelope[T]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return domain.Envelope[T]{}, fmt.Errorf("%w: decoding response: %v", errors.ErrBackend, err)
	}
	return envelope, nil
}
