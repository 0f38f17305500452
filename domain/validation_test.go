package domain

import (
	"strings"
	"testing"
	"web-messenger/errors"

	"github.com/stretchr/testify/require"
)

func TestValidateSendMessage(t *testing.T) {
	base := SendMessageRequest{SenderID: "user123", ReceiverID: "user456", Content: "Hello"}

	tests := []struct {
		description string
		modify      func(r *SendMessageRequest)
		wantErr     bool
	}{
		{"Should succeed with valid data", func(r *SendMessageRequest) {}, false},
		{"Should fail if sender is empty", func(r *SendMessageRequest) { r.SenderID = "" }, true},
		{"Should fail if receiver is empty", func(r *SendMessageRequest) { r.ReceiverID = "" }, true},
		{"Should fail if message is empty", func(r *SendMessageRequest) { r.Content = "" }, true},
		{"Should accept a message at the limit", func(r *SendMessageRequest) { r.Content = strings.Repeat("é", 10) }, false},
		{"Should fail if message exceeds the limit", func(r *SendMessageRequest) { r.Content = strings.Repeat("a", 11) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			tc := base
			tt.modify(&tc)
			err := ValidateSendMessage(tc, 10)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrValidation)
			} else {
				req.NoError(err)
			}
		})
	}
}
