package domain

import "time"

type Conversation struct {
	ID           string    `json:"id"`
	PartnerID    string    `json:"partner_id"`
	LastMessage  string    `json:"last_message"`
	UnreadCount  int       `json:"unread_count"`
	LastActivity time.Time `json:"last_activity"`
	Messages     []Message `json:"messages"`
}

// Message is immutable once appended. Text and GiftID are mutually exclusive
// in practice: SendText sets only Text, SendGift sets only GiftID.
type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text,omitempty"`
	GiftID    string    `json:"gift_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}

func (m *Message) IsGift() bool {
	return m.GiftID != ""
}

// Clone returns a deep copy with its own message slice.
func (c *Conversation) Clone() *Conversation {
	cp := *c
	cp.Messages = append([]Message(nil), c.Messages...)
	return &cp
}

// Gift is a static catalog entry loaded at startup.
type Gift struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Cost int    `json:"cost"`
}
