package service

import (
	"Socials/internal/pkg/consts"
	"Socials/internal/pkg/mongo"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memSysBox struct {
	msgs []*mongo.SysBoxModel
}

func (m *memSysBox) CreateNotification(_ context.Context, msg *mongo.SysBoxModel) error {
	msg.ID = primitive.NewObjectID()
	m.msgs = append(m.msgs, msg)
	return nil
}

func (m *memSysBox) GetNotificationList(_ context.Context, userID uint64, limit, offset int64) ([]*mongo.SysBoxModel, error) {
	res := make([]*mongo.SysBoxModel, 0)
	for i := len(m.msgs) - 1; i >= 0; i-- {
		if m.msgs[i].ReceiverID == userID {
			res = append(res, m.msgs[i])
		}
	}
	if offset >= int64(len(res)) {
		return []*mongo.SysBoxModel{}, nil
	}
	end := offset + limit
	if end > int64(len(res)) {
		end = int64(len(res))
	}
	return res[offset:end], nil
}

func (m *memSysBox) MarkAsRead(_ context.Context, userID uint64, id primitive.ObjectID) error {
	for _, msg := range m.msgs {
		if msg.ID == id && msg.ReceiverID == userID {
			msg.IsRead = true
			return nil
		}
	}
	return mongo.ErrNotFound
}

func (m *memSysBox) MarkAllAsRead(_ context.Context, userID uint64) error {
	for _, msg := range m.msgs {
		if msg.ReceiverID == userID {
			msg.IsRead = true
		}
	}
	return nil
}

func (m *memSysBox) GetUnreadCount(_ context.Context, userID uint64) (int64, error) {
	var n int64
	for _, msg := range m.msgs {
		if msg.ReceiverID == userID && !msg.IsRead {
			n++
		}
	}
	return n, nil
}

func (m *memSysBox) GetByID(_ context.Context, id primitive.ObjectID) (*mongo.SysBoxModel, error) {
	for _, msg := range m.msgs {
		if msg.ID == id {
			return msg, nil
		}
	}
	return nil, mongo.ErrNotFound
}

func TestSysBoxService(t *testing.T) {
	env := newTestEnv(t)
	box := &memSysBox{}
	svc := NewSysBoxService(box, env.userRepo)
	ctx := context.Background()

	alice, _ := env.seedUser(t, "alice")
	bob, _ := env.seedUser(t, "bob")

	require.NoError(t, box.CreateNotification(ctx, &mongo.SysBoxModel{
		ReceiverID: alice.ID, SenderID: bob.ID, Type: consts.SysBoxTypeLike, TargetID: 1, CreatedAt: time.Now(),
	}))
	require.NoError(t, box.CreateNotification(ctx, &mongo.SysBoxModel{
		ReceiverID: alice.ID, SenderID: bob.ID, Type: consts.SysBoxTypeFollow, TargetID: 2, CreatedAt: time.Now(),
	}))

	list, err := svc.GetNotificationList(ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bob", list[0].SenderName)
	assert.Equal(t, consts.SysBoxTypeFollow, list[0].Type)
	assert.Contains(t, list[0].Content, "bob")

	unread, err := svc.GetUnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread.UnreadCount)

	assert.ErrorIs(t, svc.MarkRead(ctx, bob.ID, list[0].ID), UnauthorizedError)
	assert.ErrorIs(t, svc.MarkRead(ctx, alice.ID, "zzz"), ErrParamInvalid)
	assert.ErrorIs(t, svc.MarkRead(ctx, alice.ID, primitive.NewObjectID().Hex()), ErrSysBoxNotFound)

	require.NoError(t, svc.MarkRead(ctx, alice.ID, list[0].ID))
	unread, err = svc.GetUnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread.UnreadCount)

	require.NoError(t, svc.MarkAllRead(ctx, alice.ID))
	unread, err = svc.GetUnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, unread.UnreadCount)
}

func TestNormalizePage_CapsPage(t *testing.T) {
	page, size := normalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, consts.DefaultPageSize, size)

	page, size = normalizePage(1<<62, 1<<62)
	assert.Equal(t, consts.MaxPage, page)
	assert.Equal(t, consts.MaxPageSize, size)
}
