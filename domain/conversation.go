package domain

import (
	"slices"

	"github.com/samber/lo"
)

// Involves reports whether the message was exchanged between a and b,
// in either direction.
func (m Message) Involves(a, b string) bool {
	return (m.SenderID == a && m.ReceiverID == b) ||
		(m.SenderID == b && m.ReceiverID == a)
}

// Conversation filters messages down to the ones exchanged between a and b
// and sorts them oldest first for chat display.
// Messages sharing a timestamp keep the order the backend returned them in.
// The result is never nil.
func Conversation(messages []Message, a, b string) []Message {
	conversation := lo.Filter(messages, func(m Message, _ int) bool {
		return m.Involves(a, b)
	})
	slices.SortStableFunc(conversation, func(x, y Message) int {
		return x.CreatedAt.Compare(y.CreatedAt)
	})
	return conversation
}

// SentBy keeps the messages whose sender is id.
func SentBy(messages []Message, id string) []Message {
	return lo.Filter(messages, func(m Message, _ int) bool {
		return m.SenderID == id
	})
}

// ReceivedBy keeps the messages whose receiver is id.
func ReceivedBy(messages []Message, id string) []Message {
	return lo.Filter(messages, func(m Message, _ int) bool {
		return m.ReceiverID == id
	})
}
