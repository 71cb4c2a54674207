//go:build unit

package notify_test

import (
	"testing"
	"time"

	"shopfront/internal/usecase/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFeedDrainsExactlyOnce(t *testing.T) {
	f := notify.NewFeed()

	f.Push(notify.Notification{ID: uuid.New(), Kind: notify.KindOrderApproved, Message: "first", CreatedAt: time.Now()})
	f.Push(notify.Notification{ID: uuid.New(), Kind: notify.KindOrderApproved, Message: "second", CreatedAt: time.Now()})
	assert.Equal(t, 2, f.Len())

	drained := f.Drain()
	assert.Len(t, drained, 2)
	assert.Equal(t, "first", drained[0].Message)
	assert.Equal(t, "second", drained[1].Message)

	// A second drain, e.g. from another mounted view, gets nothing.
	assert.Empty(t, f.Drain())
	assert.Equal(t, 0, f.Len())
}

func TestFeedEmptyDrainIsNotNil(t *testing.T) {
	f := notify.NewFeed()
	assert.NotNil(t, f.Drain())
}
