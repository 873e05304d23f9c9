// Package store implements a document store over BadgerDB. Each collection is
// a key prefix in the underlying key-value store; records are JSON documents
// keyed by a single identifier attribute. The operations mirror a managed
// document database: unconditional upsert, point get with a found flag,
// attribute-merge update, idempotent delete, equality query, and full scan.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger"
)

// ErrNotFound is returned by Update when the target document does not exist.
var ErrNotFound = errors.New("store: document not found")

// Store wraps a Badger database shared by all collections.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the key-value store rooted at dataDir.
func Open(dataDir string) (*Store, error) {
	opts := badger.DefaultOptions(dataDir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger store at %s: %w", dataDir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Collection returns a handle to the named collection. keyField is the
// document attribute used as the primary key.
func (s *Store) Collection(name, keyField string) *Collection {
	return &Collection{db: s.db, name: name, keyField: keyField}
}

// Collection is a named, independently keyed set of JSON documents.
type Collection struct {
	db       *badger.DB
	name     string
	keyField string
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

func (c *Collection) key(id string) []byte {
	return []byte(c.name + "/" + id)
}

func (c *Collection) prefix() []byte {
	return []byte(c.name + "/")
}

// Create inserts or overwrites the document under its key attribute. There is
// no check for an existing key; Create acts as an upsert.
func (c *Collection) Create(ctx context.Context, item interface{}) error {
	doc, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encoding document for %s: %w", c.name, err)
	}
	var attrs map[string]interface{}
	if err := json.Unmarshal(doc, &attrs); err != nil {
		return fmt.Errorf("decoding document attributes for %s: %w", c.name, err)
	}
	id, _ := attrs[c.keyField].(string)
	if id == "" {
		return fmt.Errorf("document for %s is missing key attribute %q", c.name, c.keyField)
	}
	return c.put(ctx, id, doc)
}

// Put writes the document under an explicit key, regardless of the configured
// key attribute. Used by writers whose documents carry no canonical key.
func (c *Collection) Put(ctx context.Context, id string, item interface{}) error {
	doc, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encoding document for %s: %w", c.name, err)
	}
	return c.put(ctx, id, doc)
}

func (c *Collection) put(ctx context.Context, id string, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(c.key(id), doc)
	})
}

// Get loads the document with the given id into out. Absence is reported via
// the found flag, never as an error.
func (c *Collection) Get(ctx context.Context, id string, out interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var doc []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(c.key(id))
		if err != nil {
			return err
		}
		doc, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s/%s: %w", c.name, id, err)
	}
	if out != nil {
		if err := json.Unmarshal(doc, out); err != nil {
			return false, fmt.Errorf("decoding %s/%s: %w", c.name, id, err)
		}
	}
	return true, nil
}

// Update merges only the supplied attribute names into the stored document
// and writes the result back. Attributes not listed in updates are left
// untouched. Returns ErrNotFound if no document exists under id. The merged
// document is decoded into out when out is non-nil.
func (c *Collection) Update(ctx context.Context, id string, updates map[string]interface{}, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var merged []byte
	err := c.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(c.key(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		doc, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		var attrs map[string]interface{}
		if err := json.Unmarshal(doc, &attrs); err != nil {
			return fmt.Errorf("decoding %s/%s: %w", c.name, id, err)
		}
		for name, value := range updates {
			attrs[name] = value
		}
		merged, err = json.Marshal(attrs)
		if err != nil {
			return err
		}
		return txn.Set(c.key(id), merged)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("updating %s/%s: %w", c.name, id, err)
	}
	if out != nil {
		return json.Unmarshal(merged, out)
	}
	return nil
}

// Delete removes the document under id. Deleting an absent document is not an
// error.
func (c *Collection) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(c.key(id))
	})
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", c.name, id, err)
	}
	return nil
}

// Query returns every document whose string attribute field equals value.
// Results are unordered; callers are responsible for sorting.
func (c *Collection) Query(ctx context.Context, field, value string, out interface{}) error {
	return c.collect(ctx, map[string]string{field: value}, out)
}

// Scan returns every document in the collection that matches all equality
// filters. With no filters it returns the whole collection.
func (c *Collection) Scan(ctx context.Context, filters map[string]string, out interface{}) error {
	return c.collect(ctx, filters, out)
}

func (c *Collection) collect(ctx context.Context, filters map[string]string, out interface{}) error {
	var docs []json.RawMessage
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := c.prefix()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			match, err := c.matches(doc, filters)
			if err != nil {
				return err
			}
			if match {
				docs = append(docs, json.RawMessage(doc))
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", c.name, err)
	}
	if docs == nil {
		docs = []json.RawMessage{}
	}
	list, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return json.Unmarshal(list, out)
}

func (c *Collection) matches(doc []byte, filters map[string]string) (bool, error) {
	if len(filters) == 0 {
		return true, nil
	}
	var attrs map[string]interface{}
	if err := json.Unmarshal(doc, &attrs); err != nil {
		return false, fmt.Errorf("decoding document in %s: %w", c.name, err)
	}
	for field, want := range filters {
		got, ok := attrs[field].(string)
		if !ok || got != want {
			return false, nil
		}
	}
	return true, nil
}
