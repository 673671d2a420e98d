package holidayapi

import (
	"context"
	"time"
)

// Backoff — задержка перед повтором после попытки attempt (с нуля): min(base·2^attempt, max).
func Backoff(attempt int, base, maxDelay time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	d := base
	for i := 0; i < attempt; i++ {
		d = nextBackoff(d, maxDelay)
		if d == maxDelay {
			break
		}
	}
	return minDuration(d, maxDelay)
}

// nextBackoff — следующая задержка: удвоение с потолком maxDelay.
func nextBackoff(current, maxDelay time.Duration) time.Duration {
	current *= 2
	if current > maxDelay {
		return maxDelay
	}
	return current
}

// sleepWithBackoff — ждёт d по часам клиента или останавливается по контексту.
func (c *Client) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-c.clock.After(d):
		return true
	}
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

// RetryBudget — наихудшая длительность FetchHolidays: все попытки по Timeout
// плюс паузы между ними. Ожидание лимитера сюда не входит.
func (c Config) RetryBudget() time.Duration {
	c = c.withDefaults()
	budget := time.Duration(c.MaxRetries+1) * c.Timeout
	for attempt := range c.MaxRetries {
		budget += Backoff(attempt, c.BaseDelay, c.MaxDelay)
	}
	return budget
}
