package cryptofolio

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store persists a portfolio as a single human-readable JSON document
// {"holdings": [...], "transactions": [...]}.
//
// The document is rewritten wholesale after every mutation; there is no
// locking, concurrent external writers are not supported.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store { return &Store{path: path} }

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the portfolio document. An absent file is not an error: it
// yields an empty portfolio, ready to be saved on the first mutation.
func (s *Store) Load() (Portfolio, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return NewPortfolio(), nil
	}
	if err != nil {
		return Portfolio{}, fmt.Errorf("cannot open portfolio file %q: %w", s.path, err)
	}

	var p Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		return Portfolio{}, fmt.Errorf("format error in portfolio file %q: %w", s.path, err)
	}
	// Normalize so that an empty document and a fresh portfolio compare equal.
	if p.Holdings == nil {
		p.Holdings = make([]Holding, 0)
	}
	if p.Transactions == nil {
		p.Transactions = make([]Transaction, 0)
	}
	return p, nil
}

// Save rewrites the whole portfolio document.
func (s *Store) Save(p Portfolio) error {
	if p.Holdings == nil {
		p.Holdings = make([]Holding, 0)
	}
	if p.Transactions == nil {
		p.Transactions = make([]Transaction, 0)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode portfolio: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write portfolio file %q: %w", s.path, err)
	}
	return nil
}
