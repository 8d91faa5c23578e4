package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"keyboards-api/internal/model"
	"keyboards-api/internal/platform/rabbitmq"
)

var errUnknownEvent = errors.New("unknown record event")

type UserLoader interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
}

type UserCacheWriter interface {
	SetUser(ctx context.Context, user model.UserView) error
	IsDirty(ctx context.Context, userID uint) (bool, error)
}

// CacheWarmWorker consumes record events and refills the user cache with the
// committed state of the affected user.
type CacheWarmWorker struct {
	conn      *amqp.Connection
	users     UserLoader
	cache     UserCacheWriter
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewCacheWarmWorker(conn *amqp.Connection, users UserLoader, cache UserCacheWriter, queueName string) *CacheWarmWorker {
	return &CacheWarmWorker{
		conn:      conn,
		users:     users,
		cache:     cache,
		queueName: queueName,
	}
}

func (w *CacheWarmWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	if err := rabbitmq.DeclareRecordEventQueue(ch, w.queueName); err != nil {
		_ = ch.Close()
		cancel()
		return err
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				if err := w.handle(workerCtx, d.Body); err != nil {
					log.Printf("worker warm user cache failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}
				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *CacheWarmWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *CacheWarmWorker) handle(ctx context.Context, body []byte) error {
	var event model.RecordEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode record event failed: %w", err)
	}
	switch event.Type {
	case model.EventUserCreated, model.EventKeyboardCreated:
	default:
		return fmt.Errorf("%w: %q", errUnknownEvent, event.Type)
	}

	user, err := w.users.GetByID(ctx, event.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		// Nothing to warm; the event is still consumed.
		return nil
	}

	dirty, err := w.cache.IsDirty(ctx, user.ID)
	if err != nil {
		return err
	}
	if dirty {
		return nil
	}
	return w.cache.SetUser(ctx, user.Serialize())
}
