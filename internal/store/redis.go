package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dsyorkd/cert-agent/internal/config"
	"github.com/dsyorkd/cert-agent/internal/errors"
	"github.com/dsyorkd/cert-agent/internal/logger"
	"github.com/dsyorkd/cert-agent/internal/models"
)

const (
	certKeyPrefix = "cert:"
	indexKey      = "certs:all"

	// EventChannel is the pub/sub channel carrying lifecycle events
	EventChannel = "cert_events"

	// recordTTL is a safety net against forgotten records. It is
	// refreshed on every put and status update; records that skip a
	// renewal for a full year silently age out.
	recordTTL = 365 * 24 * time.Hour
)

// RedisStore implements Interface on a Redis backend
type RedisStore struct {
	client *redis.Client
	logger logger.Interface
}

// New connects to Redis and verifies the connection
func New(cfg *config.RedisConfig, log logger.Interface) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "invalid redis url '%s': %v", cfg.URL, err)
	}

	opts.PoolSize = cfg.MaxConnections
	opts.DialTimeout = cfg.ConnectionTimeoutDuration()
	opts.ReadTimeout = cfg.CommandTimeoutDuration()
	opts.WriteTimeout = cfg.CommandTimeoutDuration()

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewStoreError("ping", err)
	}

	return &RedisStore{
		client: client,
		logger: log.WithField("component", "store"),
	}, nil
}

// NewWithClient wraps an existing client. Used by tests.
func NewWithClient(client *redis.Client, log logger.Interface) *RedisStore {
	return &RedisStore{
		client: client,
		logger: log.WithField("component", "store"),
	}
}

// Put stores a record under cert:<id> and adds the id to certs:all
func (s *RedisStore) Put(ctx context.Context, record *models.CertificateRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return errors.NewSerializationError("encode", err)
	}

	key := certKeyPrefix + record.ID
	if err := s.client.Set(ctx, key, value, recordTTL).Err(); err != nil {
		return errors.NewStoreError("set", err)
	}

	if err := s.client.SAdd(ctx, indexKey, record.ID).Err(); err != nil {
		return errors.NewStoreError("sadd", err)
	}

	return nil
}

// Get returns the record for id
func (s *RedisStore) Get(ctx context.Context, id string) (*models.CertificateRecord, error) {
	value, err := s.client.Get(ctx, certKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "certificate %s", id)
	}
	if err != nil {
		return nil, errors.NewStoreError("get", err)
	}

	var record models.CertificateRecord
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return nil, errors.NewSerializationError("decode", err)
	}

	return &record, nil
}

// UpdateStatus performs a read-modify-write of the record's status.
// A missing id is a silent no-op and a same-status update just
// refreshes the record TTL. Transitions are one-directional; a flip
// the record does not allow returns ErrStatusConflict.
func (s *RedisStore) UpdateStatus(ctx context.Context, id string, status models.CertificateStatus) error {
	record, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil
		}
		return err
	}

	if record.Status == status {
		return s.Put(ctx, record)
	}
	if !record.CanTransitionTo(status) {
		if record.IsRevoked() {
			return errors.Wrapf(errors.ErrStatusConflict, "certificate %s is revoked", id)
		}
		return errors.Wrapf(errors.ErrStatusConflict,
			"cannot move certificate %s from %s to %s", id, record.Status, status)
	}

	record.Status = status
	return s.Put(ctx, record)
}

// List enumerates certs:all and fetches each record, filtering by
// status when non-empty. Records that aged out of their TTL are skipped.
func (s *RedisStore) List(ctx context.Context, status models.CertificateStatus) ([]*models.CertificateRecord, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.NewStoreError("smembers", err)
	}

	records := make([]*models.CertificateRecord, 0, len(ids))
	for _, id := range ids {
		record, err := s.Get(ctx, id)
		if err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if status != "" && record.Status != status {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Delete removes the record and its index entry
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, certKeyPrefix+id).Err(); err != nil {
		return errors.NewStoreError("del", err)
	}
	if err := s.client.SRem(ctx, indexKey, id).Err(); err != nil {
		return errors.NewStoreError("srem", err)
	}
	return nil
}

// Publish sends "<event>:<data>" to the cert_events channel
func (s *RedisStore) Publish(ctx context.Context, event, data string) error {
	if err := s.client.Publish(ctx, EventChannel, event+":"+data).Err(); err != nil {
		return errors.NewStoreError("publish", err)
	}
	return nil
}

// Ping verifies connectivity
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.NewStoreError("ping", err)
	}
	return nil
}

// Close releases the connection pool
func (s *RedisStore) Close() error {
	return s.client.Close()
}
