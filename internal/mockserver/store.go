package mockserver

import (
	"bytes"
	"encoding/json"
	"os"
	"sort"
	"strconv"

	"github.com/orgball2608/story-fixtures/pkg/errors"
)

type Record = map[string]any

// Store is a read-only, in-memory copy of a fixture document. Any top-level
// array in the document becomes a collection.
type Store struct {
	collections map[string][]Record
}

func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return Decode(raw)
}

func Decode(raw []byte) (*Store, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc map[string]json.RawMessage
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "fixture document is not a JSON object: %v", err)
	}

	s := &Store{collections: make(map[string][]Record, len(doc))}
	for name, body := range doc {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()

		var records []Record
		if err := dec.Decode(&records); err != nil {
			// Non-array members are not collections.
			continue
		}
		s.collections[name] = records
	}
	return s, nil
}

func (s *Store) Collections() []string {
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the records of a collection whose fields equal one of the
// values given for that field.
func (s *Store) List(collection string, filters map[string][]string) ([]Record, error) {
	records, ok := s.collections[collection]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "collection %s", collection)
	}

	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, filters) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *Store) Get(collection, id string) (Record, error) {
	records, ok := s.collections[collection]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "collection %s", collection)
	}
	for _, rec := range records {
		if fieldString(rec["id"]) == id {
			return rec, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "%s %s", collection, id)
}

func matches(rec Record, filters map[string][]string) bool {
	for field, wanted := range filters {
		got := fieldString(rec[field])
		found := false
		for _, w := range wanted {
			if got == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func fieldString(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}
