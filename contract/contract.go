//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"net/http"
	"web-messenger/domain"
)

// Backend endpoints.
const (
	EndpointSendMessage          = "/api/sendMessage"
	EndpointGetMessages          = "/api/getMessages"
	EndpointMessagesBySender     = "/api/messages/sender"
	EndpointMessagesByReceiver   = "/api/messages/receiver"
	EndpointHealth               = "/api/health"
	EndpointRoot                 = ""
	DefaultMessagesLimit     int = 50
)

// Request is an outbound API call. Path is relative to the base URL
// and may carry a query string.
type Request struct {
	Method string
	Path   string
	Body   []byte
	Header http.Header
}

// Response carries the raw JSON body of a successful call.
type Response struct {
	Status  int
	Profile string
	Body    []byte
}

// ITransport sends requests to the messaging backend.
type ITransport interface {
	Do(ctx context.Context, request Request) (Response, error)
	// Probe issues a single GET without any fallback and reports the HTTP status.
	Probe(ctx context.Context, path string) (int, error)
}

type INotifier interface {
	NotifyMessage(ctx context.Context, message domain.Message) error
}

type IMessageService interface {
	SendMessage(ctx context.Context, req domain.SendMessageRequest) (domain.Envelope[domain.Message], error)
	GetMessages(ctx context.Context, limit int) (domain.Envelope[[]domain.Message], error)
	GetConversationMessages(ctx context.Context, senderID, receiverID string, limit int) []domain.Message
	GetMessagesBySender(ctx context.Context, senderID string, limit int) (domain.Envelope[[]domain.Message], error)
	GetMessagesByReceiver(ctx context.Context, receiverID string, limit int) (domain.Envelope[[]domain.Message], error)
	TestConnection(ctx context.Context) bool
	TestBasicConnectivity(ctx context.Context) bool
}

// IProber is the slice of the message service the health worker depends on.
type IProber interface {
	TestConnection(ctx context.Context) bool
}
