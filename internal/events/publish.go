package events

import (
	"log/slog"
	"time"
)

// publishBaseDelay is the wait after the first failed send; it doubles per attempt
const publishBaseDelay = 50 * time.Millisecond

// PublishWithRetry sends event, retrying up to maxRetries attempts in total
// with exponential backoff. A nil client means no daemon and is not an error.
// The error of the last attempt is returned when every attempt fails.
func PublishWithRetry(client EventPublisher, event Event, maxRetries int) error {
	if client == nil {
		return nil
	}

	var err error
	for attempt := range maxRetries {
		if attempt > 0 {
			time.Sleep(retryDelay(attempt))
		}
		if err = client.SendEvent(event); err == nil {
			if attempt > 0 {
				slog.Debug("board change published after retry", "board", event.Board, "card_id", event.CardID, "attempt", attempt+1)
			}
			return nil
		}
		slog.Debug("board change send failed", "board", event.Board, "attempt", attempt+1, "error", err)
	}

	if err != nil {
		slog.Warn("board change dropped", "board", event.Board, "card_id", event.CardID, "attempts", maxRetries, "error", err)
	}
	return err
}

// retryDelay returns the backoff before the given attempt (1-based retries)
func retryDelay(attempt int) time.Duration {
	return publishBaseDelay << (attempt - 1)
}
