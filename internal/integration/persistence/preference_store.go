// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// CurrencyKeyPrefix is the fixed key under which the display currency is stored.
const CurrencyKeyPrefix = "budget-tracker-currency"

// preferenceStore implements the adapter.PreferenceStore interface on Redis.
type preferenceStore struct {
	client *redis.Client
}

// NewPreferenceStore creates a new Redis-backed preference store.
func NewPreferenceStore(client *redis.Client) adapter.PreferenceStore {
	return &preferenceStore{
		client: client,
	}
}

// CurrencyKey returns the Redis key holding a user's currency.
func CurrencyKey(userID uuid.UUID) string {
	return CurrencyKeyPrefix + ":" + userID.String()
}

// GetCurrency reads the stored currency. Missing, garbled or unknown values read
// as the default currency with found=false.
func (s *preferenceStore) GetCurrency(ctx context.Context, userID uuid.UUID) (valueobject.Currency, bool, error) {
	raw, err := s.client.Get(ctx, CurrencyKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return valueobject.DefaultCurrency, false, nil
	}
	if err != nil {
		return valueobject.DefaultCurrency, false, fmt.Errorf("failed to read currency preference: %w", err)
	}

	var stored valueobject.Currency
	if err := json.Unmarshal(raw, &stored); err != nil {
		slog.Warn("Discarding unreadable currency preference", "userID", userID, "error", err)
		return valueobject.DefaultCurrency, false, nil
	}

	// The catalog is authoritative; only the code of the stored value is trusted.
	currency, ok := valueobject.LookupCurrency(stored.Code)
	if !ok {
		slog.Warn("Discarding unknown currency preference", "userID", userID, "code", stored.Code)
		return valueobject.DefaultCurrency, false, nil
	}
	return currency, true, nil
}

// SetCurrency overwrites the stored currency.
func (s *preferenceStore) SetCurrency(ctx context.Context, userID uuid.UUID, currency valueobject.Currency) error {
	raw, err := json.Marshal(currency)
	if err != nil {
		return fmt.Errorf("failed to encode currency preference: %w", err)
	}
	if err := s.client.Set(ctx, CurrencyKey(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write currency preference: %w", err)
	}
	return nil
}

// Ping checks connectivity with Redis.
func (s *preferenceStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
