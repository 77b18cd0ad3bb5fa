package events

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketEvents         = []byte("events")
	bucketPropertyEvents = []byte("property_events")
)

// ErrClosed is returned by a journal after Close.
var ErrClosed = errors.New("events: journal closed")

// BoltJournal is a Journal backed by a bbolt file.
type BoltJournal struct {
	db  *bbolt.DB
	now func() time.Time
}

// Compile-time interface check.
var _ Journal = (*BoltJournal)(nil)

// OpenBoltJournal opens or creates the journal at path. The parent directory
// is created if it does not exist.
func OpenBoltJournal(path string) (*BoltJournal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("events: create directory: %w", err)
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("events: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketEvents, bucketPropertyEvents} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("events: create buckets: %w", err)
	}

	return &BoltJournal{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (j *BoltJournal) Close() error { return j.db.Close() }

// Publish appends evt, assigning its sequence number and timestamp.
func (j *BoltJournal) Publish(ctx context.Context, evt Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if evt.At.IsZero() {
		evt.At = j.now().UTC()
	}

	err := j.db.Update(func(tx *bbolt.Tx) error {
		eb := tx.Bucket(bucketEvents)
		seq, err := eb.NextSequence()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		evt.Seq = seq

		data, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("encode event: %w", err)
		}
		if err := eb.Put(seqKey(seq), data); err != nil {
			return fmt.Errorf("put event: %w", err)
		}
		return tx.Bucket(bucketPropertyEvents).Put(propertyKey(evt.PropertyID, seq), nil)
	})
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return ErrClosed
	}
	if err != nil {
		return fmt.Errorf("events: publish: %w", err)
	}
	return nil
}

// ListByProperty returns the most recent events of a property, oldest first.
// A non-positive limit returns all of them.
func (j *BoltJournal) ListByProperty(ctx context.Context, propertyID uint, limit int) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := propertyPrefix(propertyID)
	var out []Event
	err := j.db.View(func(tx *bbolt.Tx) error {
		eb := tx.Bucket(bucketEvents)
		c := tx.Bucket(bucketPropertyEvents).Cursor()

		// Walk backwards from the end of this property's key range.
		k, _ := c.Seek(propertyPrefix(propertyID + 1))
		if k == nil {
			k, _ = c.Last()
		} else {
			k, _ = c.Prev()
		}
		for ; k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Prev() {
			if limit > 0 && len(out) == limit {
				break
			}
			data := eb.Get(k[len(prefix):])
			if data == nil {
				continue
			}
			var evt Event
			if err := json.Unmarshal(data, &evt); err != nil {
				return fmt.Errorf("decode event: %w", err)
			}
			out = append(out, evt)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("events: list: %w", err)
	}

	for i, k := 0, len(out)-1; i < k; i, k = i+1, k-1 {
		out[i], out[k] = out[k], out[i]
	}
	return out, nil
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

func propertyPrefix(id uint) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(id))
	return k
}

func propertyKey(id uint, seq uint64) []byte {
	return append(propertyPrefix(id), seqKey(seq)...)
}
