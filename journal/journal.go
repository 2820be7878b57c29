// Package journal records broadcast attempts so an interrupted run can
// be detected before the same transfer is silently resent.
package journal

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/oruchain/sendtx/jsonx"
)

const (
	// Key prefixes
	prefixBroadcast = "broadcast:"

	// Entry statuses
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
)

// Entry is one recorded broadcast attempt. Entries are keyed by the
// transfer fingerprint, so a repeated identical transfer replaces the
// previous record once that record left the pending state.
type Entry struct {
	ID        string `json:"id"`
	Network   string `json:"network"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Denom     string `json:"denom"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
	Code      uint32 `json:"code"`
	Height    int64  `json:"height,omitempty"`
	TxHash    string `json:"tx_hash,omitempty"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// Journal is a LevelDB-backed record of broadcast attempts.
type Journal struct {
	dir string
	db  *leveldb.DB
}

// Open opens (or creates) the journal database at dir.
func Open(dir string) (*Journal, error) {
	if dir == "" {
		return nil, fmt.Errorf("journal path cannot be empty")
	}
	db, err := leveldb.OpenFile(filepath.Clean(dir), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal at %s: %w", dir, err)
	}
	return &Journal{dir: dir, db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Fingerprint identifies a transfer by its observable parameters.
func Fingerprint(network, sender, recipient, denom, amount string) string {
	sum := sha256.Sum256([]byte(network + "|" + sender + "|" + recipient + "|" + denom + "|" + amount))
	return base58.Encode(sum[:])
}

func broadcastKey(fingerprint string) []byte {
	return []byte(prefixBroadcast + fingerprint)
}

// Pending returns the pending entry for fingerprint, nil when the last
// attempt completed or no attempt was recorded.
func (j *Journal) Pending(fingerprint string) (*Entry, error) {
	data, err := j.db.Get(broadcastKey(fingerprint), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	var e Entry
	if err := jsonx.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("corrupt journal entry for %s: %w", fingerprint, err)
	}
	if e.Status != StatusPending {
		return nil, nil
	}
	return &e, nil
}

// Begin records a pending attempt. It must be called before the
// transaction is handed to the network.
func (j *Journal) Begin(fingerprint string, e Entry) (*Entry, error) {
	e.ID = uuid.NewString()
	e.Status = StatusPending
	now := time.Now().Unix()
	e.CreatedAt = now
	e.UpdatedAt = now

	data, err := jsonx.Marshal(e)
	if err != nil {
		return nil, err
	}
	if err := j.db.Put(broadcastKey(fingerprint), data, nil); err != nil {
		return nil, err
	}
	return &e, nil
}

// Abort removes the pending attempt. It is only correct to call when
// the transaction provably never reached the network, otherwise the
// on-chain outcome would be forgotten.
func (j *Journal) Abort(fingerprint string) error {
	return j.db.Delete(broadcastKey(fingerprint), nil)
}

// Complete settles the pending attempt with the receipt outcome.
func (j *Journal) Complete(fingerprint string, code uint32, height int64, txHash string) error {
	data, err := j.db.Get(broadcastKey(fingerprint), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return fmt.Errorf("no journal entry for fingerprint %s", fingerprint)
		}
		return err
	}
	var e Entry
	if err := jsonx.Unmarshal(data, &e); err != nil {
		return fmt.Errorf("corrupt journal entry for %s: %w", fingerprint, err)
	}

	e.Code = code
	e.Height = height
	e.TxHash = txHash
	e.Status = StatusConfirmed
	if code != 0 {
		e.Status = StatusRejected
	}
	e.UpdatedAt = time.Now().Unix()

	data, err = jsonx.Marshal(e)
	if err != nil {
		return err
	}
	return j.db.Put(broadcastKey(fingerprint), data, nil)
}
