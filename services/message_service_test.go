package services

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"
	"web-messenger/contract"
	"web-messenger/domain"
	"web-messenger/errors"
	"web-messenger/infrastructure/mock"
	"web-messenger/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func jsonResponse(t *testing.T, v any) contract.Response {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return contract.Response{Status: http.StatusOK, Profile: "cors-omit", Body: body}
}

func newService(t *testing.T) (*MessageService, *mocks.MockITransport, *mocks.MockINotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockITransport(ctrl)
	notifier := mocks.NewMockINotifier(ctrl)
	service := NewMessageService(logs.GetLoggerFromLevel(slog.LevelDebug), transport, notifier, 50, 280)
	return service, transport, notifier
}

func TestMessageService_SendMessage(t *testing.T) {
	ctx := context.Background()
	sent := domain.Message{
		ID: "m-1", SenderID: "alice", ReceiverID: "bob", Content: "hello",
		Status: domain.StatusSent, CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("should post the payload and notify the receiver", func(t *testing.T) {
		req := require.New(t)
		service, transport, notifier := newService(t)

		transport.EXPECT().
			Do(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r contract.Request) (contract.Response, error) {
				req.Equal(http.MethodPost, r.Method)
				req.Equal(contract.EndpointSendMessage, r.Path)
				req.JSONEq(`{"senderId":"alice","receiverId":"bob","message":"hello"}`, string(r.Body))
				return jsonResponse(t, domain.Envelope[domain.Message]{Message: "Message sent successfully", Data: &sent}), nil
			}).
			Times(1)
		notifier.EXPECT().NotifyMessage(ctx, sent).Return(nil).Times(1)

		envelope, err := service.SendMessage(ctx, domain.SendMessageRequest{SenderID: "alice", ReceiverID: "bob", Content: "hello"})

		req.NoError(err)
		req.Equal("Message sent successfully", envelope.Message)
		req.Equal(sent, *envelope.Data)
	})

	t.Run("should not call the backend when validation fails", func(t *testing.T) {
		req := require.New(t)
		service, transport, notifier := newService(t)

		transport.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)
		notifier.EXPECT().NotifyMessage(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.SendMessage(ctx, domain.SendMessageRequest{SenderID: "alice", Content: "hello"})
		req.ErrorIs(err, errors.ErrValidation)

		_, err = service.SendMessage(ctx, domain.SendMessageRequest{SenderID: "alice", ReceiverID: "bob", Content: strings.Repeat("x", 281)})
		req.ErrorIs(err, errors.ErrValidation)
	})

	t.Run("should propagate transport errors", func(t *testing.T) {
		req := require.New(t)
		service, transport, notifier := newService(t)
		failure := &errors.HTTPError{Status: http.StatusInternalServerError, Body: "down"}

		transport.EXPECT().Do(ctx, gomock.Any()).Return(contract.Response{}, failure).Times(1)
		notifier.EXPECT().NotifyMessage(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.SendMessage(ctx, domain.SendMessageRequest{SenderID: "alice", ReceiverID: "bob", Content: "hello"})

		req.ErrorIs(err, errors.ErrBackend)
	})

	t.Run("should succeed even when the notification fails", func(t *testing.T) {
		req := require.New(t)
		service, transport, notifier := newService(t)

		transport.EXPECT().Do(ctx, gomock.Any()).
			Return(jsonResponse(t, domain.Envelope[domain.Message]{Message: "ok", Data: &sent}), nil).
			Times(1)
		notifier.EXPECT().NotifyMessage(ctx, sent).Return(stderrors.New("fcm unavailable")).Times(1)

		envelope, err := service.SendMessage(ctx, domain.SendMessageRequest{SenderID: "alice", ReceiverID: "bob", Content: "hello"})

		req.NoError(err)
		req.Equal("m-1", envelope.Data.ID)
	})

	t.Run("should report an undecodable response as a backend error", func(t *testing.T) {
		req := require.New(t)
		service, transport, _ := newService(t)

		transport.EXPECT().Do(ctx, gomock.Any()).
			Return(contract.Response{Status: http.StatusOK, Body: []byte(`{"data":"not a message"}`)}, nil).
			Times(1)

		_, err := service.SendMessage(ctx, domain.SendMessageRequest{SenderID: "alice", ReceiverID: "bob", Content: "hello"})

		req.ErrorIs(err, errors.ErrBackend)
	})
}

func TestMessageService_GetMessages_Limit(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		description string
		limit       int
		wantPath    string
	}{
		{"Should use the given limit", 10, "/api/getMessages?limit=10"},
		{"Should fall back to the default limit on zero", 0, "/api/getMessages?limit=50"},
		{"Should fall back to the default limit on negative values", -3, "/api/getMessages?limit=50"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			service, transport, _ := newService(t)
			messages := []domain.Message{{ID: "1"}}

			transport.EXPECT().
				Do(ctx, contract.Request{Method: http.MethodGet, Path: tt.wantPath}).
				Return(jsonResponse(t, domain.Envelope[[]domain.Message]{Message: "ok", Data: &messages, Count: &[]int{1}[0]}), nil).
				Times(1)

			envelope, err := service.GetMessages(ctx, tt.limit)

			req.NoError(err)
			req.Equal(1, *envelope.Count)
			req.Len(*envelope.Data, 1)
		})
	}
}

func TestMessageService_GetConversationMessages(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 5, 5, 10, 0, 0, 0, time.UTC)

	t.Run("should filter and sort the conversation", func(t *testing.T) {
		req := require.New(t)
		service, transport, _ := newService(t)
		messages := []domain.Message{
			{ID: "2", SenderID: "alice", ReceiverID: "bob", CreatedAt: at.Add(time.Minute)},
			{ID: "x", SenderID: "carol", ReceiverID: "bob", CreatedAt: at},
			{ID: "1", SenderID: "bob", ReceiverID: "alice", CreatedAt: at},
		}
		transport.EXPECT().Do(ctx, gomock.Any()).
			Return(jsonResponse(t, domain.Envelope[[]domain.Message]{Data: &messages}), nil).
			Times(1)

		conversation := service.GetConversationMessages(ctx, "alice", "bob", 0)

		req.Len(conversation, 2)
		req.Equal("1", conversation[0].ID)
		req.Equal("2", conversation[1].ID)
	})

	t.Run("should return an empty slice when the backend fails", func(t *testing.T) {
		req := require.New(t)
		service, transport, _ := newService(t)
		transport.EXPECT().Do(ctx, gomock.Any()).Return(contract.Response{}, errors.ErrAllProfilesFailed).Times(1)

		conversation := service.GetConversationMessages(ctx, "alice", "bob", 0)

		req.NotNil(conversation)
		req.Empty(conversation)
	})

	t.Run("should return an empty slice when data is missing", func(t *testing.T) {
		req := require.New(t)
		service, transport, _ := newService(t)
		transport.EXPECT().Do(ctx, gomock.Any()).
			Return(jsonResponse(t, domain.Envelope[[]domain.Message]{Message: "no data"}), nil).
			Times(1)

		conversation := service.GetConversationMessages(ctx, "alice", "bob", 0)

		req.NotNil(conversation)
		req.Empty(conversation)
	})
}

func TestMessageService_GetMessagesBySenderAndReceiver(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	service, transport, _ := newService(t)
	empty := []domain.Message{}

	gomock.InOrder(
		transport.EXPECT().
			Do(ctx, contract.Request{Method: http.MethodGet, Path: "/api/messages/sender/user%2F1?limit=5"}).
			Return(jsonResponse(t, domain.Envelope[[]domain.Message]{Data: &empty}), nil),
		transport.EXPECT().
			Do(ctx, contract.Request{Method: http.MethodGet, Path: "/api/messages/receiver/bob?limit=50"}).
			Return(jsonResponse(t, domain.Envelope[[]domain.Message]{Data: &empty}), nil),
	)

	_, err := service.GetMessagesBySender(ctx, "user/1", 5)
	req.NoError(err)
	_, err = service.GetMessagesByReceiver(ctx, "bob", 0)
	req.NoError(err)

	_, err = service.GetMessagesBySender(ctx, "", 5)
	req.ErrorIs(err, errors.ErrValidation)
	_, err = service.GetMessagesByReceiver(ctx, "", 5)
	req.ErrorIs(err, errors.ErrValidation)
}

func TestMessageService_TestConnection(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		description string
		status      int
		err         error
		want        bool
	}{
		{"Should be up on 200", http.StatusOK, nil, true},
		{"Should be up on 204", http.StatusNoContent, nil, true},
		{"Should be down on 503", http.StatusServiceUnavailable, nil, false},
		{"Should be down on 404", http.StatusNotFound, nil, false},
		{"Should be down on network error", 0, errors.ErrNetwork, false},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			service, transport, _ := newService(t)
			transport.EXPECT().Probe(ctx, contract.EndpointHealth).Return(tt.status, tt.err).Times(1)

			req.Equal(tt.want, service.TestConnection(ctx))
		})
	}
}

func TestMessageService_TestConnectionFailuresStayQuiet(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockITransport(ctrl)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	service := NewMessageService(log, transport, nil, 0, 4096)

	// Given a backend that is down, then answering 503
	transport.EXPECT().Probe(ctx, contract.EndpointHealth).Return(0, errors.ErrNetwork)
	transport.EXPECT().Probe(ctx, contract.EndpointHealth).Return(http.StatusServiceUnavailable, nil)

	// When polled repeatedly
	req.False(service.TestConnection(ctx))
	req.False(service.TestConnection(ctx))

	// Then nothing is logged above debug level
	req.Empty(buf.String())
}

func TestMessageService_TestBasicConnectivity(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	service, transport, _ := newService(t)

	gomock.InOrder(
		transport.EXPECT().Probe(ctx, contract.EndpointRoot).Return(http.StatusNotFound, nil),
		transport.EXPECT().Probe(ctx, contract.EndpointRoot).Return(0, errors.ErrNetwork),
	)

	// Any HTTP answer counts, even an error status
	req.True(service.TestBasicConnectivity(ctx))
	req.False(service.TestBasicConnectivity(ctx))
}

func TestMessageService_MockMode(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	service := NewMessageService(log, mock.NewTransport(log, nil, nil), nil, 0, 4096)

	// When sending in mock mode
	envelope, err := service.SendMessage(ctx, domain.SendMessageRequest{SenderID: "user123", ReceiverID: "user456", Content: "hey"})
	req.NoError(err)
	req.Equal("Message sent successfully (mock)", envelope.Message)
	req.True(strings.HasPrefix(envelope.Data.ID, "mock_"))
	req.Equal("hey", envelope.Data.Content)

	// Then the canned conversation is served
	conversation := service.GetConversationMessages(ctx, "user456", "user123", 0)
	req.Len(conversation, 2)

	// And endpoints without a mock answer fail cleanly
	_, err = service.GetMessagesBySender(ctx, "user123", 0)
	req.ErrorIs(err, errors.ErrMockUnsupported)
	req.False(service.TestConnection(ctx))
}
