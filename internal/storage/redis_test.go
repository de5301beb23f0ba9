package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func TestRedisStoreSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	in := testRecord{Email: "user@example.com"}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	mock.ExpectSet("pathan-newsletter", data, 0).SetVal("OK")

	s := newTestRedisStore(db)
	require.NoError(t, s.Set(ctx, "pathan-newsletter", in))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectGet("pathan-newsletter").SetVal(`{"email":"user@example.com","subscribedAt":""}`)

	s := newTestRedisStore(db)

	var out testRecord
	require.NoError(t, s.Get(ctx, "pathan-newsletter", &out))
	assert.Equal(t, "user@example.com", out.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreGetMissing(t *testing.T) {
	db, mock := redismock.NewClientMock()

	mock.ExpectGet("pathan-missing").RedisNil()

	s := newTestRedisStore(db)

	var out testRecord
	err := s.Get(context.Background(), "pathan-missing", &out)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()

	mock.ExpectDel("pathan-trial-booking").SetVal(1)

	s := newTestRedisStore(db)
	require.NoError(t, s.Delete(context.Background(), "pathan-trial-booking"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
