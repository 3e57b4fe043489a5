// Package redis caches the contact book in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/core/ports"

	goredis "github.com/go-redis/redis/v8"
)

const (
	// ContactsKey holds the whole contact book as one JSON document.
	ContactsKey = "flowerdelivery:contacts"

	// GenerationKey counts invalidations. A list is only stored when the
	// counter did not move since the miss that triggered the fill.
	GenerationKey = "flowerdelivery:contacts:generation"

	// DefaultTTL bounds the staleness of the cached contact book.
	DefaultTTL = 10 * time.Minute
)

var _ ports.ContactCache = &ContactCache{}

type contactEntry struct {
	ID           string   `json:"id"`
	BusinessName string   `json:"businessName"`
	Phones       []string `json:"phones"`
	Address      string   `json:"address"`
	Note         string   `json:"note"`
}

// ContactCache keeps the contact list used by the business name autocomplete.
type ContactCache struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

func NewContactCache(client goredis.UniversalClient, ttl time.Duration) *ContactCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ContactCache{client: client, ttl: ttl}
}

// Connect opens a client and checks it with PING.
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (c *ContactCache) Get(ctx context.Context) ([]*contact.Contact, int64, bool, error) {
	values, err := c.client.MGet(ctx, ContactsKey, GenerationKey).Result()
	if err != nil {
		return nil, 0, false, err
	}

	generation, err := parseGeneration(values[1])
	if err != nil {
		return nil, 0, false, err
	}
	data, ok := values[0].(string)
	if !ok {
		return nil, generation, false, nil
	}

	var entries []contactEntry
	if err = json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, 0, false, err
	}

	contacts := make([]*contact.Contact, 0, len(entries))
	for _, e := range entries {
		id, err := kernel.UUIDFromString(e.ID)
		if err != nil {
			return nil, 0, false, err
		}
		restored, err := contact.RestoreContact(id, e.BusinessName, e.Phones, e.Address, e.Note)
		if err != nil {
			return nil, 0, false, err
		}
		contacts = append(contacts, restored)
	}
	return contacts, generation, true, nil
}

// Set stores the list read after a miss at generation. When an invalidation
// happened in between, the list is dropped and Set returns nil.
func (c *ContactCache) Set(ctx context.Context, generation int64, contacts []*contact.Contact) error {
	entries := make([]contactEntry, 0, len(contacts))
	for _, ct := range contacts {
		entries = append(entries, contactEntry{
			ID:           ct.ID().String(),
			BusinessName: ct.BusinessName(),
			Phones:       ct.Phones(),
			Address:      ct.Address(),
			Note:         ct.Note(),
		})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, GenerationKey).Int64()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		if current != generation {
			return errGenerationMoved
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, ContactsKey, data, c.ttl)
			return nil
		})
		return err
	}, GenerationKey)
	if errors.Is(err, errGenerationMoved) || errors.Is(err, goredis.TxFailedErr) {
		return nil
	}
	return err
}

// Invalidate drops the list and moves the generation, so that fills started
// before the call are discarded.
func (c *ContactCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey)
		pipe.Del(ctx, ContactsKey)
		return nil
	})
	return err
}

var errGenerationMoved = errors.New("contact cache generation moved")

func parseGeneration(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
