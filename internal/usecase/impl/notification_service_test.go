package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirana/internal/domain/entity"
)

func TestNotificationService_ListAndMarkAllRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.notifRepo.Push(ctx, entity.QueueOwner, "first", "")
	require.NoError(t, err)
	_, err = f.notifRepo.Push(ctx, entity.QueueOwner, "second", "o1")
	require.NoError(t, err)

	svc := NewNotificationService(f.notifRepo)

	view, err := svc.List(ctx, entity.QueueOwner)
	require.NoError(t, err)
	require.Len(t, view.Notifications, 2)
	assert.Equal(t, "second", view.Notifications[0].Message)
	assert.Equal(t, 2, view.UnreadCount)

	require.NoError(t, svc.MarkAllRead(ctx, entity.QueueOwner))
	count, err := svc.UnreadCount(ctx, entity.QueueOwner)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Marking an already-read queue again stays at zero.
	require.NoError(t, svc.MarkAllRead(ctx, entity.QueueOwner))
	count, err = svc.UnreadCount(ctx, entity.QueueOwner)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
