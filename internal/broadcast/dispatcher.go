package broadcast

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"predictbot/pkg/telegoapi"

	tu "github.com/mymmrac/telego/telegoutil"
	"go.uber.org/ratelimit"
)

const (
	// defaultWorkers bounds concurrent sends; ordering across recipients does
	// not matter.
	defaultWorkers = 4
	// defaultSendsPerSecond stays below the platform's ~30 msg/s bulk limit.
	defaultSendsPerSecond = 25
)

// Dispatcher fans a text message out to many recipients. A failed send
// (blocked bot, deactivated account) is logged and counted but never aborts
// the rest of the batch.
type Dispatcher struct {
	bot     telegoapi.BotAPI
	limiter ratelimit.Limiter
	workers int
}

// NewDispatcher creates a Dispatcher with default concurrency and pacing.
func NewDispatcher(bot telegoapi.BotAPI) *Dispatcher {
	return &Dispatcher{
		bot:     bot,
		limiter: ratelimit.New(defaultSendsPerSecond),
		workers: defaultWorkers,
	}
}

// Send delivers text to every recipient and returns the number of successful
// and failed sends. Recipients remaining when ctx is cancelled count as failed.
func (d *Dispatcher) Send(ctx context.Context, recipients []int64, text string) (sent int, failed int) {
	if len(recipients) == 0 {
		return 0, 0
	}

	var sentCount, failedCount int64
	jobs := make(chan int64)
	var wg sync.WaitGroup

	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for userID := range jobs {
				d.limiter.Take()
				_, err := d.bot.SendMessage(ctx, tu.Message(tu.ID(userID), text))
				if err != nil {
					log.Printf("[Broadcast User:%d] Delivery failed: %v", userID, err)
					atomic.AddInt64(&failedCount, 1)
					continue
				}
				atomic.AddInt64(&sentCount, 1)
			}
		}()
	}

feed:
	for _, userID := range recipients {
		select {
		case <-ctx.Done():
			log.Printf("[Broadcast] Context cancelled, %d recipient(s) skipped", len(recipients)-int(atomic.LoadInt64(&sentCount))-int(atomic.LoadInt64(&failedCount)))
			break feed
		case jobs <- userID:
		}
	}
	close(jobs)
	wg.Wait()

	sent = int(atomic.LoadInt64(&sentCount))
	failed = len(recipients) - sent
	return sent, failed
}
