package cart

import (
	"encoding/json"
	"log"

	"doceencanto/internal/models"
	"doceencanto/internal/storage"
)

// storageRepository persists carts as JSON under the fixed cart key.
type storageRepository struct {
	store *storage.Store
}

// NewStorageRepository wraps the durable store as a cart repository.
func NewStorageRepository(store *storage.Store) Repository {
	return &storageRepository{store: store}
}

// Load reads the persisted line list for the session. Missing or corrupt
// payloads yield an empty cart.
func (r *storageRepository) Load(sessionID string) []models.CartItem {
	payload, ok := r.store.Get(sessionID, storage.CartKey)
	if !ok || payload == "" {
		return nil
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		log.Printf("cart: discarding corrupt payload for session %s: %v", sessionID, err)
		return nil
	}
	return items
}

// Save serializes the full line list for the session.
func (r *storageRepository) Save(sessionID string, items []models.CartItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Put(sessionID, storage.CartKey, string(payload))
}
