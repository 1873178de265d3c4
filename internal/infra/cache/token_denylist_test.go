package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"outside/config"
	"outside/internal/infra/clock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestTokenDenylist_Revoke(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectSet("outside:revoked:jti-1", "1", 2*time.Hour).SetVal("OK")

	denylist := NewTokenDenylist(rdb, "outside", clock.NewFixed(now))
	require.NoError(t, denylist.Revoke(context.Background(), "jti-1", now.Add(2*time.Hour)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenDenylist_RevokeExpiredTokenIsNoop(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	denylist := NewTokenDenylist(rdb, "outside", clock.NewFixed(now))
	require.NoError(t, denylist.Revoke(context.Background(), "jti-1", now.Add(-time.Minute)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenDenylist_RevokeError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectSet("outside:revoked:jti-1", "1", time.Hour).SetErr(errors.New("connection refused"))

	denylist := NewTokenDenylist(rdb, "outside", clock.NewFixed(now))
	assert.Error(t, denylist.Revoke(context.Background(), "jti-1", now.Add(time.Hour)))
}

func TestTokenDenylist_IsRevoked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(mock redismock.ClientMock)
		want    bool
		wantErr bool
	}{
		{
			name:  "revoked",
			setup: func(mock redismock.ClientMock) { mock.ExpectExists("outside:revoked:jti-1").SetVal(1) },
			want:  true,
		},
		{
			name:  "not revoked",
			setup: func(mock redismock.ClientMock) { mock.ExpectExists("outside:revoked:jti-1").SetVal(0) },
			want:  false,
		},
		{
			name:    "redis failure",
			setup:   func(mock redismock.ClientMock) { mock.ExpectExists("outside:revoked:jti-1").SetErr(errors.New("timeout")) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rdb, mock := redismock.NewClientMock()
			defer func() { _ = rdb.Close() }()
			tt.setup(mock)

			got, err := NewTokenDenylist(rdb, "outside", clock.NewFixed(now)).IsRevoked(context.Background(), "jti-1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNewTokenRevocationStore_NoClient(t *testing.T) {
	store := NewTokenRevocationStore(nil, &config.Config{}, clock.NewFixed(now))

	require.NoError(t, store.Revoke(context.Background(), "jti-1", now.Add(time.Hour)))
	revoked, err := store.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestNewTokenRevocationStore_UsesConfiguredPrefix(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectExists("custom:revoked:jti-1").SetVal(1)

	store := NewTokenRevocationStore(rdb, &config.Config{Redis: &config.RedisConfig{KeyPrefix: "custom"}}, clock.NewFixed(now))
	revoked, err := store.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
