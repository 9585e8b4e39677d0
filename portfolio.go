package cryptofolio

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrIndexOutOfRange is returned when a holding index does not designate an
// existing holding.
var ErrIndexOutOfRange = errors.New("holding index out of range")

// Portfolio is the aggregate root: the ordered holding list and the
// append-only transaction trail.
//
// Portfolio has value semantics: mutating operations return a new Portfolio
// and leave the receiver untouched, so the caller decides when to persist.
type Portfolio struct {
	Holdings     []Holding     `json:"holdings"`
	Transactions []Transaction `json:"transactions"`
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() Portfolio {
	return Portfolio{
		Holdings:     make([]Holding, 0),
		Transactions: make([]Transaction, 0),
	}
}

// Add appends the holding and its matching buy transaction, both stamped with
// the same now. It returns the updated portfolio.
func (p Portfolio) Add(h Holding, now time.Time) Portfolio {
	h.DateAdded = now
	p.Holdings = append(slices.Clone(p.Holdings), h)
	p.Transactions = append(slices.Clone(p.Transactions), NewBuy(h.CoinID, h.Amount, h.BuyPrice, now))
	return p
}

// RemoveAt removes the holding at index (0-based) and returns the updated
// portfolio. Indices of subsequent holdings shift down by one; a stale index
// must not be reused after a removal.
//
// The transaction trail is deliberately untouched: it is an audit log, not a
// reflection of the current holdings.
func (p Portfolio) RemoveAt(index int) (Portfolio, error) {
	if index < 0 || index >= len(p.Holdings) {
		return p, fmt.Errorf("%w: %d (portfolio has %d holdings)", ErrIndexOutOfRange, index, len(p.Holdings))
	}
	p.Holdings = slices.Delete(slices.Clone(p.Holdings), index, index+1)
	return p, nil
}

// Equal reports whether two portfolios have the same content.
func (p Portfolio) Equal(o Portfolio) bool {
	return slices.EqualFunc(p.Holdings, o.Holdings, Holding.Equal) &&
		slices.EqualFunc(p.Transactions, o.Transactions, Transaction.Equal)
}
