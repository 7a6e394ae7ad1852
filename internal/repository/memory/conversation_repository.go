package memory

import (
	"sync"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository"
)

type conversationRepository struct {
	mu    sync.RWMutex
	convs []*domain.Conversation
	byID  map[string]*domain.Conversation
}

// NewConversationRepository creates an in-memory chat store pre-populated
// with the seeded conversations, kept in the given order.
//
// The store never shares pointers with callers: everything is cloned on the
// way in and on the way out, so a read stays consistent while another request
// appends or marks messages read.
func NewConversationRepository(seeded []*domain.Conversation) repository.ConversationRepository {
	r := &conversationRepository{
		byID: make(map[string]*domain.Conversation, len(seeded)),
	}
	for _, c := range seeded {
		cp := c.Clone()
		r.convs = append(r.convs, cp)
		r.byID[cp.ID] = cp
	}
	return r
}

func (r *conversationRepository) List() []*domain.Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Conversation, 0, len(r.convs))
	for _, c := range r.convs {
		out = append(out, c.Clone())
	}
	return out
}

func (r *conversationRepository) GetByID(id string) (*domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrConversationNotFound
	}
	return c.Clone(), nil
}

func (r *conversationRepository) Prepend(conv *domain.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := conv.Clone()
	r.convs = append([]*domain.Conversation{cp}, r.convs...)
	r.byID[cp.ID] = cp
	return nil
}

func (r *conversationRepository) AppendMessage(conversationID string, msg domain.Message, preview string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[conversationID]
	if !ok {
		return domain.ErrConversationNotFound
	}
	c.Messages = append(c.Messages, msg)
	c.LastMessage = preview
	c.LastActivity = msg.Timestamp
	return nil
}

func (r *conversationRepository) MarkRead(conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[conversationID]
	if !ok {
		return domain.ErrConversationNotFound
	}
	c.UnreadCount = 0
	for i := range c.Messages {
		c.Messages[i].IsRead = true
	}
	return nil
}
