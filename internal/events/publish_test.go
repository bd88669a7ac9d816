package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyPublisher fails the first failFirst sends
type flakyPublisher struct {
	failFirst int
	attempts  int
	sent      []Event
}

func (p *flakyPublisher) SendEvent(event Event) error {
	p.attempts++
	if p.attempts <= p.failFirst {
		return errors.New("queue full")
	}
	p.sent = append(p.sent, event)
	return nil
}

func (p *flakyPublisher) Connect(ctx context.Context) error                { return nil }
func (p *flakyPublisher) Listen(ctx context.Context) (<-chan Event, error) { return nil, nil }
func (p *flakyPublisher) Subscribe(board string) error                     { return nil }
func (p *flakyPublisher) SetNotifyFunc(fn NotifyFunc)                      {}
func (p *flakyPublisher) Close() error                                     { return nil }

func boardChanged(cardID string) Event {
	return Event{Type: EventBoardChanged, Board: "pipeline", CardID: cardID}
}

func TestPublishWithRetry(t *testing.T) {
	tests := []struct {
		name         string
		failFirst    int
		maxRetries   int
		wantErr      bool
		wantAttempts int
		wantSent     int
	}{
		{"first attempt succeeds", 0, 3, false, 1, 1},
		{"succeeds on last attempt", 2, 3, false, 3, 1},
		{"every attempt fails", 5, 3, true, 3, 0},
		{"zero attempts sends nothing", 5, 0, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &flakyPublisher{failFirst: tt.failFirst}

			err := PublishWithRetry(p, boardChanged("3"), tt.maxRetries)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAttempts, p.attempts)
			require.Len(t, p.sent, tt.wantSent)
			if tt.wantSent > 0 {
				assert.Equal(t, "3", p.sent[0].CardID)
			}
		})
	}
}

func TestPublishWithRetry_NilClient(t *testing.T) {
	assert.NoError(t, PublishWithRetry(nil, boardChanged("1"), 3))
}

func TestPublishWithRetry_BacksOffExponentially(t *testing.T) {
	assert.Equal(t, 50*time.Millisecond, retryDelay(1))
	assert.Equal(t, 100*time.Millisecond, retryDelay(2))
	assert.Equal(t, 200*time.Millisecond, retryDelay(3))

	p := &flakyPublisher{failFirst: 2}
	start := time.Now()
	require.NoError(t, PublishWithRetry(p, boardChanged("2"), 3))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 150*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}
