package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateConversationIdempotent(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewConversationService(repos)
	ctx := context.Background()

	first, err := svc.CreateConversation(ctx, "BK-1001", "user_1", "ptr_1")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, first.Id > 0)
	assert.True(t, first.IsActive)

	second, err := svc.CreateConversation(ctx, "BK-1001", "user_1", "ptr_1")
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	other, err := svc.CreateConversation(ctx, "BK-1002", "user_1", "ptr_1")
	require.NoError(t, err)
	assert.NotEqual(t, first.Id, other.Id)
}

func TestListConversationsEnrichment(t *testing.T) {
	repos := newTestRepos(t)
	convSvc := NewConversationService(repos)
	msgSvc := NewMessageService(repos)
	ctx := context.Background()

	conv, err := convSvc.CreateConversation(ctx, "BK-2001", "user_1", "ptr_1")
	require.NoError(t, err)

	_, err = msgSvc.SendMessage(ctx, "ptr_1", "partner", &SendMessageRequest{
		ConversationId: conv.Id,
		Content:        "hello",
	})
	require.NoError(t, err)
	last, err := msgSvc.SendMessage(ctx, "ptr_1", "partner", &SendMessageRequest{
		ConversationId: conv.Id,
		Content:        "are you coming in today?",
	})
	require.NoError(t, err)

	infos, err := convSvc.ListConversations(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, infos, 1)

	info := infos[0]
	assert.Equal(t, conv.Id, info.Id)
	require.NotNil(t, info.LastMessage)
	assert.Equal(t, last.Id, info.LastMessage.Id)
	assert.Equal(t, int64(2), info.UnreadCount)

	// The sender sees no unread messages of their own
	infos, err = convSvc.ListConversations(ctx, "ptr_1")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, int64(0), infos[0].UnreadCount)
}

func TestListConversationsNewestActivityFirst(t *testing.T) {
	repos := newTestRepos(t)
	convSvc := NewConversationService(repos)
	msgSvc := NewMessageService(repos)
	ctx := context.Background()

	older, err := convSvc.CreateConversation(ctx, "BK-3001", "user_1", "ptr_1")
	require.NoError(t, err)
	newer, err := convSvc.CreateConversation(ctx, "BK-3002", "user_1", "ptr_2")
	require.NoError(t, err)

	// Push the older conversation into the past, then bump it with a message
	err = repos.Conversation.TouchActivity(ctx, nil, older.Id, older.LastActivity-60_000)
	require.NoError(t, err)
	err = repos.Conversation.TouchActivity(ctx, nil, newer.Id, newer.LastActivity-30_000)
	require.NoError(t, err)

	_, err = msgSvc.SendMessage(ctx, "user_1", "user", &SendMessageRequest{
		ConversationId: older.Id,
		Content:        "bumping this thread",
	})
	require.NoError(t, err)

	infos, err := convSvc.ListConversations(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, older.Id, infos[0].Id)
	assert.Equal(t, newer.Id, infos[1].Id)
}

func TestListConversationsExcludesOutsiders(t *testing.T) {
	repos := newTestRepos(t)
	convSvc := NewConversationService(repos)
	ctx := context.Background()

	_, err := convSvc.CreateConversation(ctx, "BK-4001", "user_1", "ptr_1")
	require.NoError(t, err)

	infos, err := convSvc.ListConversations(ctx, "user_2")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestTotalUnreadAcrossConversations(t *testing.T) {
	repos := newTestRepos(t)
	convSvc := NewConversationService(repos)
	msgSvc := NewMessageService(repos)
	ctx := context.Background()

	convA, err := convSvc.CreateConversation(ctx, "BK-5001", "user_1", "ptr_1")
	require.NoError(t, err)
	convB, err := convSvc.CreateConversation(ctx, "BK-5002", "user_1", "ptr_2")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = msgSvc.SendMessage(ctx, "ptr_1", "partner", &SendMessageRequest{
			ConversationId: convA.Id,
			Content:        "ping",
		})
		require.NoError(t, err)
	}
	msg, err := msgSvc.SendMessage(ctx, "ptr_2", "partner", &SendMessageRequest{
		ConversationId: convB.Id,
		Content:        "pong",
	})
	require.NoError(t, err)

	total, err := convSvc.TotalUnread(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	// Reading one message drops the badge by one
	_, err = msgSvc.MarkMessageRead(ctx, "user_1", msg.Id)
	require.NoError(t, err)

	total, err = convSvc.TotalUnread(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// The partners only count messages addressed to them
	total, err = convSvc.TotalUnread(ctx, "ptr_1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
