package shape

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyKeys    = errors.New("keys must not be empty")
	ErrEmptyEntries = errors.New("key_values must not be empty")
	ErrEmptyAcks    = errors.New("acks must not be empty")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// KVEntry is one element of a bulk KV write.
type KVEntry struct {
	Key           string         `json:"key" validate:"required"`
	Value         string         `json:"value" validate:"required"`
	Expiration    *int64         `json:"expiration,omitempty"`
	ExpirationTTL *int64         `json:"expiration_ttl,omitempty"`
	Base64        *bool          `json:"base64,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Ack releases one queue message lease.
type Ack struct {
	LeaseID string `json:"lease_id" validate:"required"`
}

// Retry puts one leased queue message back, optionally after a delay.
type Retry struct {
	LeaseID      string `json:"lease_id" validate:"required"`
	DelaySeconds *int64 `json:"delay_seconds,omitempty"`
}

// ValidateKeys rejects a bulk delete before dispatch when the key list is
// empty or contains an empty key. No partial acceptance: the first bad
// element fails the whole call.
func ValidateKeys(keys []string) error {
	if len(keys) == 0 {
		return ErrEmptyKeys
	}
	for i, k := range keys {
		if k == "" {
			return fmt.Errorf("keys[%d]: key must not be empty", i)
		}
	}
	return nil
}

// ValidateKVEntries checks each bulk-write element for its required keys.
func ValidateKVEntries(entries []KVEntry) error {
	if len(entries) == 0 {
		return ErrEmptyEntries
	}
	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return fmt.Errorf("key_values[%d]: %w", i, err)
		}
	}
	return nil
}

// ValidateAcks checks acknowledgement and retry descriptors. At least one
// ack is required; retries may be absent, and when present every element
// needs a lease id.
func ValidateAcks(acks []Ack, retries []Retry) error {
	if len(acks) == 0 {
		return ErrEmptyAcks
	}
	for i, a := range acks {
		if err := validate.Struct(a); err != nil {
			return fmt.Errorf("acks[%d]: %w", i, err)
		}
	}
	for i, r := range retries {
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("retries[%d]: %w", i, err)
		}
	}
	return nil
}
