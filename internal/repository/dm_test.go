package repository

import (
	"testing"
	"time"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectMessageRepository_InboxAndSent(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewDirectMessageRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(testCtx, &models.DirectMessage{
		SenderID: alice.ID, RecipientID: bob.ID, Text: "first", CreatedAt: base,
	}))
	require.NoError(t, repo.Create(testCtx, &models.DirectMessage{
		SenderID: alice.ID, RecipientID: bob.ID, Text: "second", CreatedAt: base.Add(time.Minute),
	}))
	require.NoError(t, repo.Create(testCtx, &models.DirectMessage{
		SenderID: carol.ID, RecipientID: alice.ID, Text: "to alice", CreatedAt: base.Add(2 * time.Minute),
	}))

	inbox, err := repo.Inbox(testCtx, bob.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, "second", inbox[0].Text, "inbox is newest first")
	assert.Equal(t, "first", inbox[1].Text)
	assert.Equal(t, "alice", inbox[0].Sender.Username, "sender should be preloaded")

	sent, err := repo.Sent(testCtx, alice.ID)
	require.NoError(t, err)
	require.Len(t, sent, 2)
	assert.Equal(t, "second", sent[0].Text)
	assert.Equal(t, "bob", sent[0].Recipient.Username, "recipient should be preloaded")

	inbox, err = repo.Inbox(testCtx, carol.ID)
	require.NoError(t, err)
	assert.Empty(t, inbox)
}
