package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const queueKey = "brandpanel:notifications"

// QueueSender pushes notifications onto a Redis list so the producing
// request never waits on delivery.
type QueueSender struct {
	client *redis.Client
}

func NewQueueSender(addr string) *QueueSender {
	return &QueueSender{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// NotifyCustomer enqueues the notification. An empty NotificationID is
// filled in here so retries by the worker stay traceable in logs.
func (q *QueueSender) NotifyCustomer(ctx context.Context, n CustomerNotification) error {
	if n.NotificationID == "" {
		n.NotificationID = uuid.NewString()
	}

	data, err := json.Marshal(n)
	if err != nil {
		return err
	}

	return q.client.LPush(ctx, queueKey, data).Err()
}

// RunWorker drains the queue and hands each job to delivery until ctx is
// cancelled. Undeliverable jobs are logged and dropped; the queue carries
// no rollback semantics for the status write that produced them.
func (q *QueueSender) RunWorker(ctx context.Context, delivery Sender) {
	log.Println("[NOTIFY] [INFO] worker started")
	for {
		result, err := q.client.BRPop(ctx, 5*time.Second, queueKey).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[NOTIFY] [INFO] worker stopped")
				return
			}
			log.Println("[NOTIFY] [ERROR] queue pop failed:", err)
			time.Sleep(time.Second)
			continue
		}
		if len(result) != 2 {
			continue
		}

		var n CustomerNotification
		if err := json.Unmarshal([]byte(result[1]), &n); err != nil {
			log.Println("[NOTIFY] [ERROR] dropping malformed job:", err)
			continue
		}

		if err := delivery.NotifyCustomer(ctx, n); err != nil {
			log.Printf("[NOTIFY] [ERROR] delivery failed for %s: %v", n.NotificationID, err)
			continue
		}
		log.Printf("[NOTIFY] [INFO] delivered %s (order %s, %s -> %s)",
			n.NotificationID, n.OrderID, n.OldStatus, n.NewStatus)
	}
}
