package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedReport struct {
	Periods []string `json:"periods"`
}

func TestRedisReportCache_GetMissWithoutVersion(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisReportCache(db, time.Minute)

	mock.ExpectGet("finacc:report:5:version").RedisNil()
	mock.ExpectGet("finacc:report:5:v0:pnl:month:2024-01-01:2024-01-31").RedisNil()

	var dest cachedReport
	found, err := c.Get(context.Background(), 5, "pnl:month:2024-01-01:2024-01-31", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisReportCache_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisReportCache(db, time.Minute)

	mock.ExpectGet("finacc:report:5:version").SetVal("3")
	mock.ExpectGet("finacc:report:5:v3:cashflow").SetVal(`{"periods":["2024-01"]}`)

	var dest cachedReport
	found, err := c.Get(context.Background(), 5, "cashflow", &dest)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"2024-01"}, dest.Periods)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisReportCache_SetUsesCurrentVersion(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisReportCache(db, 2*time.Minute)

	mock.ExpectGet("finacc:report:5:version").SetVal("7")
	mock.ExpectSet("finacc:report:5:v7:pnl", []byte(`{"periods":["2024-Q1"]}`), 2*time.Minute).SetVal("OK")

	err := c.Set(context.Background(), 5, "pnl", cachedReport{Periods: []string{"2024-Q1"}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisReportCache_InvalidateBumpsVersion(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisReportCache(db, 0)
	assert.Equal(t, DefaultTTL, c.ttl)

	mock.ExpectIncr("finacc:report:9:version").SetVal(1)

	require.NoError(t, c.Invalidate(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisReportCache_VersionReadError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisReportCache(db, time.Minute)

	mock.ExpectGet("finacc:report:5:version").SetErr(errors.New("connection refused"))

	var dest cachedReport
	found, err := c.Get(context.Background(), 5, "pnl", &dest)
	assert.Error(t, err)
	assert.False(t, found)
}
