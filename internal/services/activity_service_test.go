package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityListNewestFirstCapped(t *testing.T) {
	ctx := context.Background()
	store := &memActivityStore{}
	svc := NewActivityService(store)
	owner := uuid.New()

	for i := 0; i < 60; i++ {
		svc.Record(ctx, owner, "automation_created", fmt.Sprintf("entry %d", i))
	}
	svc.Record(ctx, uuid.New(), "automation_created", "someone else")

	entries, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	assert.Equal(t, "entry 59", entries[0].Detail)
	for _, e := range entries {
		assert.Equal(t, owner, e.UserID)
	}
}

func TestActivityRecordSwallowsErrors(t *testing.T) {
	svc := NewActivityService(&memActivityStore{err: errStoreDown})
	assert.NotPanics(t, func() {
		svc.Record(context.Background(), uuid.New(), "automation_deleted", "x")
	})
}

func TestActivityRecordIgnoresCancelledRequest(t *testing.T) {
	store := &memActivityStore{}
	svc := NewActivityService(store)
	owner := uuid.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.Record(ctx, owner, "automation_created", "late")

	assert.Len(t, store.actions(owner), 1)
}

func TestActivityListEmpty(t *testing.T) {
	entries, err := NewActivityService(&memActivityStore{}).List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
