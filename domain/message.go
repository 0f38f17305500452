// Package domain contains core concepts of the messaging client.
// This file defines the Message record exchanged with the backend
// and the request used to create one.
// Messages are created by the backend and read-only on the client.
package domain

import (
	"time"
)

type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

// Message represents a chat message as returned by the backend.
type Message struct {
	ID         string        `json:"id"`
	SenderID   string        `json:"senderId"`
	ReceiverID string        `json:"receiverId"`
	Content    string        `json:"message"`
	Status     MessageStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// SendMessageRequest is the payload posted to the backend.
// Content length is checked separately against the configured maximum.
type SendMessageRequest struct {
	SenderID   string `json:"senderId" validate:"required"`
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"message" validate:"required"`
}

// Envelope is the response wrapper used by every backend endpoint.
type Envelope[T any] struct {
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}
