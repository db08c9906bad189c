package draft

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Save(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCache(client, 30*time.Minute)
	key := domain.DraftKey{Session: "s1", Form: domain.FormPayment, EntityID: "inv-1"}

	mock.ExpectSet("draft:s1:payment:inv-1", `{"amount":"40"}`, 30*time.Minute).SetVal("OK")
	mock.ExpectSAdd("draft:s1:index", "draft:s1:payment:inv-1").SetVal(1)
	mock.ExpectExpire("draft:s1:index", 30*time.Minute).SetVal(true)

	err := c.Save(context.Background(), key, json.RawMessage(`{"amount":"40"}`))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Load(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCache(client, time.Minute)
	key := domain.DraftKey{Session: "s1", Form: domain.FormEvent}

	mock.ExpectGet("draft:s1:event:new").SetVal(`{"name":"Wedding"}`)
	payload, found, err := c.Load(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"name":"Wedding"}`, string(payload))

	mock.ExpectGet("draft:s1:event:new").RedisNil()
	_, found, err = c.Load(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, found)

	mock.ExpectGet("draft:s1:event:new").SetErr(errors.New("connection reset"))
	_, _, err = c.Load(context.Background(), key)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Clear(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCache(client, time.Minute)
	key := domain.DraftKey{Session: "s1", Form: domain.FormInvoice}

	mock.ExpectDel("draft:s1:invoice:new").SetVal(1)
	mock.ExpectSRem("draft:s1:index", "draft:s1:invoice:new").SetVal(1)

	require.NoError(t, c.Clear(context.Background(), key))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_EndSession(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCache(client, time.Minute)

	mock.ExpectSMembers("draft:s1:index").SetVal([]string{"draft:s1:event:new", "draft:s1:payout:m-1"})
	mock.ExpectDel("draft:s1:event:new", "draft:s1:payout:m-1", "draft:s1:index").SetVal(3)

	require.NoError(t, c.EndSession(context.Background(), "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_RejectsInvalidKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCache(client, time.Minute)

	err := c.Save(context.Background(), domain.DraftKey{Form: domain.FormEvent}, json.RawMessage(`{}`))

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
