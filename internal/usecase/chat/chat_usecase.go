package chat

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository"
	"github.com/emberapp/ember-backend/internal/usecase/wallet"
)

const giftPreview = "Sent a gift"

// messagePreview is the chat-list line shown for a conversation's newest
// message. Gift messages carry no text, so they get the fixed preview.
func messagePreview(msg domain.Message) string {
	if msg.IsGift() {
		return giftPreview
	}
	return msg.Text
}

// ChatUseCase owns the conversation list and message sending. Messages are
// append-only; ordering is insertion order, timestamps are display values.
type ChatUseCase struct {
	convRepo    repository.ConversationRepository
	giftRepo    repository.GiftRepository
	profileRepo repository.ProfileRepository
	wallet      *wallet.WalletUseCase
	logger      *zap.Logger
}

func NewChatUseCase(
	convRepo repository.ConversationRepository,
	giftRepo repository.GiftRepository,
	profileRepo repository.ProfileRepository,
	walletUseCase *wallet.WalletUseCase,
	logger *zap.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		convRepo:    convRepo,
		giftRepo:    giftRepo,
		profileRepo: profileRepo,
		wallet:      walletUseCase,
		logger:      logger,
	}
}

// ConversationSummary is one row of the chat list with the partner resolved.
type ConversationSummary struct {
	ID           string          `json:"id"`
	Partner      *domain.Profile `json:"partner"`
	LastMessage  string          `json:"last_message"`
	UnreadCount  int             `json:"unread_count"`
	LastActivity time.Time       `json:"last_activity"`
}

// List returns all conversations, most recently active first.
func (uc *ChatUseCase) List() ([]*ConversationSummary, error) {
	convs := uc.convRepo.List()
	out := make([]*ConversationSummary, 0, len(convs))
	for _, c := range convs {
		partner, err := uc.profileRepo.GetByID(c.PartnerID)
		if err != nil {
			return nil, fmt.Errorf("conversation %s: %w", c.ID, err)
		}
		out = append(out, &ConversationSummary{
			ID:           c.ID,
			Partner:      partner,
			LastMessage:  c.LastMessage,
			UnreadCount:  c.UnreadCount,
			LastActivity: c.LastActivity,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastActivity.After(out[j].LastActivity)
	})
	return out, nil
}

// OpenResponse is a full conversation with the partner resolved.
type OpenResponse struct {
	Conversation *domain.Conversation `json:"conversation"`
	Partner      *domain.Profile      `json:"partner"`
}

// Open clears the conversation's unread count and returns it. The mark-read
// happens first so the returned snapshot already reflects it.
func (uc *ChatUseCase) Open(conversationID string) (*OpenResponse, error) {
	if err := uc.convRepo.MarkRead(conversationID); err != nil {
		return nil, err
	}
	conv, err := uc.convRepo.GetByID(conversationID)
	if err != nil {
		return nil, err
	}
	partner, err := uc.profileRepo.GetByID(conv.PartnerID)
	if err != nil {
		return nil, err
	}
	return &OpenResponse{Conversation: conv, Partner: partner}, nil
}

// SendText appends a text message. Empty or whitespace-only text is a silent
// no-op (nil message, nil error), matching the composer's behavior.
func (uc *ChatUseCase) SendText(conversationID, senderID, text string) (*domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if _, err := uc.convRepo.GetByID(conversationID); err != nil {
		return nil, err
	}

	msg := domain.Message{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: time.Now(),
	}
	if err := uc.convRepo.AppendMessage(conversationID, msg, messagePreview(msg)); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SendGift debits the gift's cost and appends a gift message. On insufficient
// funds nothing is appended and the balance stays put. The conversation is
// checked before the debit so a failed lookup never costs coins.
func (uc *ChatUseCase) SendGift(conversationID, senderID, giftID string) (*domain.Message, error) {
	gift, err := uc.giftRepo.GetByID(giftID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.convRepo.GetByID(conversationID); err != nil {
		return nil, err
	}

	if err := uc.wallet.TryDebit(gift.Cost, fmt.Sprintf("Sent a %s gift", gift.Name)); err != nil {
		return nil, err
	}

	msg := domain.Message{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		GiftID:    gift.ID,
		Timestamp: time.Now(),
	}
	if err := uc.convRepo.AppendMessage(conversationID, msg, messagePreview(msg)); err != nil {
		return nil, err
	}

	uc.logger.Info("gift sent",
		zap.String("conversation_id", conversationID),
		zap.String("gift_id", gift.ID),
		zap.Int("cost", gift.Cost),
	)
	return &msg, nil
}

// Gifts returns the sendable gift catalog.
func (uc *ChatUseCase) Gifts() []domain.Gift {
	return uc.giftRepo.List()
}
