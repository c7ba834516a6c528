package kafka

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const InventoryTopic = "inventory"

type Config struct {
	Addrs          []string `envconfig:"KAFKA_ADDRS"`
	InventoryTopic string   `envconfig:"KAFKA_INVENTORY_TOPIC" default:"inventory"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	BookCreated  EventType = "BOOK_CREATED"
	BookUpdated  EventType = "BOOK_UPDATED"
	BookRemoved  EventType = "BOOK_REMOVED"
	BookRestored EventType = "BOOK_RESTORED"
)

type EventInventory struct {
	EventID     string    `json:"eventId"`
	Type        EventType `json:"type"`
	BookID      int       `json:"bookId"`
	Title       string    `json:"title"`
	InInventory bool      `json:"inInventory"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewEventInventory(typ EventType, bookID int, title string, inInventory bool) EventInventory {
	return EventInventory{
		EventID:     uuid.NewString(),
		Type:        typ,
		BookID:      bookID,
		Title:       title,
		InInventory: inInventory,
		Timestamp:   time.Now().UTC(),
	}
}
