package repository

import "github.com/emberapp/ember-backend/internal/domain"

// ConversationRepository stores the chat list. Underlying order is insertion
// order; new matches are prepended so the UI shows them first.
type ConversationRepository interface {
	List() []*domain.Conversation
	GetByID(id string) (*domain.Conversation, error)
	Prepend(conv *domain.Conversation) error
	// AppendMessage appends msg to the conversation and updates its preview
	// and last-activity timestamp in one step.
	AppendMessage(conversationID string, msg domain.Message, preview string) error
	// MarkRead clears the unread count and flags all messages as read.
	MarkRead(conversationID string) error
}
