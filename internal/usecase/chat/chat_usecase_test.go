package chat

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/repository"
	"github.com/emberapp/ember-backend/internal/repository/memory"
	"github.com/emberapp/ember-backend/internal/seed"
	"github.com/emberapp/ember-backend/internal/usecase/wallet"
)

func newTestUseCase(t *testing.T, balance int) (*ChatUseCase, *wallet.WalletUseCase, repository.ConversationRepository) {
	t.Helper()
	convRepo := memory.NewConversationRepository(seed.Conversations(time.Now()))
	walletUseCase := wallet.NewWalletUseCase(memory.NewWalletRepository(balance), zap.NewNop())
	uc := NewChatUseCase(
		convRepo,
		memory.NewGiftRepository(seed.Gifts()),
		memory.NewProfileRepository(seed.Profiles()),
		walletUseCase,
		zap.NewNop(),
	)
	return uc, walletUseCase, convRepo
}

func messageCount(t *testing.T, repo repository.ConversationRepository, id string) int {
	t.Helper()
	c, err := repo.GetByID(id)
	require.NoError(t, err)
	return len(c.Messages)
}

func TestListMostRecentlyActiveFirst(t *testing.T) {
	uc, _, _ := newTestUseCase(t, 250)

	summaries, err := uc.List()
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	// c1 is the newer seeded conversation.
	assert.Equal(t, "c1", summaries[0].ID)
	assert.Equal(t, "David", summaries[0].Partner.FirstName)
	assert.Equal(t, "c2", summaries[1].ID)

	// Messaging the older conversation bumps it to the top.
	_, err = uc.SendText("c2", "me", "hello")
	require.NoError(t, err)

	summaries, err = uc.List()
	require.NoError(t, err)
	assert.Equal(t, "c2", summaries[0].ID)
}

func TestOpenClearsUnread(t *testing.T) {
	uc, _, convRepo := newTestUseCase(t, 250)

	resp, err := uc.Open("c1")
	require.NoError(t, err)
	assert.Equal(t, "David", resp.Partner.FirstName)
	assert.Equal(t, 0, resp.Conversation.UnreadCount)

	c, err := convRepo.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, 0, c.UnreadCount)
	for _, m := range c.Messages {
		assert.True(t, m.IsRead)
	}
}

func TestOpenSnapshotSurvivesConcurrentSends(t *testing.T) {
	uc, _, _ := newTestUseCase(t, 250)

	resp, err := uc.Open("c1")
	require.NoError(t, err)
	snapshot := resp.Conversation
	messagesBefore := len(snapshot.Messages)
	previewBefore := snapshot.LastMessage

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := uc.SendText("c1", "me", "ping")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			// Read the snapshot fields the sender updates in the store.
			_ = len(snapshot.Messages)
			_ = snapshot.LastMessage
		}()
	}
	wg.Wait()

	assert.Len(t, snapshot.Messages, messagesBefore)
	assert.Equal(t, previewBefore, snapshot.LastMessage)

	reopened, err := uc.Open("c1")
	require.NoError(t, err)
	assert.Len(t, reopened.Conversation.Messages, messagesBefore+25)
}

func TestOpenNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(t, 250)
	_, err := uc.Open("missing")
	assert.ErrorIs(t, err, domain.ErrConversationNotFound)
}

func TestSendText(t *testing.T) {
	uc, _, convRepo := newTestUseCase(t, 250)

	msg, err := uc.SendText("c1", "me", "hey there")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "hey there", msg.Text)
	assert.Empty(t, msg.GiftID)

	c, err := convRepo.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "hey there", c.LastMessage)
	assert.Equal(t, msg.ID, c.Messages[len(c.Messages)-1].ID)
}

func TestSendTextWhitespaceIsNoOp(t *testing.T) {
	uc, _, convRepo := newTestUseCase(t, 250)
	before := messageCount(t, convRepo, "c1")

	for _, text := range []string{"", "   ", "\n\t "} {
		msg, err := uc.SendText("c1", "me", text)
		assert.NoError(t, err)
		assert.Nil(t, msg)
	}
	assert.Equal(t, before, messageCount(t, convRepo, "c1"))
}

func TestSendTextNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(t, 250)
	_, err := uc.SendText("missing", "me", "hello")
	assert.ErrorIs(t, err, domain.ErrConversationNotFound)
}

func TestSendGift(t *testing.T) {
	uc, w, convRepo := newTestUseCase(t, 250)
	before := messageCount(t, convRepo, "c1")

	msg, err := uc.SendGift("c1", "me", "rose")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "rose", msg.GiftID)
	assert.Empty(t, msg.Text)
	assert.Equal(t, 240, w.Balance())
	assert.Equal(t, before+1, messageCount(t, convRepo, "c1"))

	c, err := convRepo.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Sent a gift", c.LastMessage)
}

func TestSendGiftInsufficientFunds(t *testing.T) {
	uc, w, convRepo := newTestUseCase(t, 9)
	before := messageCount(t, convRepo, "c1")

	_, err := uc.SendGift("c1", "me", "rose")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 9, w.Balance())
	assert.Equal(t, before, messageCount(t, convRepo, "c1"))
}

func TestSendGiftUnknownGift(t *testing.T) {
	uc, w, _ := newTestUseCase(t, 250)

	_, err := uc.SendGift("c1", "me", "unicorn")
	assert.ErrorIs(t, err, domain.ErrGiftNotFound)
	assert.Equal(t, 250, w.Balance())
}

func TestSendGiftUnknownConversationCostsNothing(t *testing.T) {
	uc, w, _ := newTestUseCase(t, 250)

	_, err := uc.SendGift("missing", "me", "diamond")
	assert.ErrorIs(t, err, domain.ErrConversationNotFound)
	assert.Equal(t, 250, w.Balance())
}

func TestGiftsCatalog(t *testing.T) {
	uc, _, _ := newTestUseCase(t, 250)
	gifts := uc.Gifts()
	require.Len(t, gifts, 5)
	assert.Equal(t, "rose", gifts[0].ID)
	assert.Equal(t, 10, gifts[0].Cost)
	assert.Equal(t, "ring", gifts[4].ID)
	assert.Equal(t, 500, gifts[4].Cost)
}
