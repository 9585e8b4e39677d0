package cryptofolio

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Holding represents a position in a single coin: how much was bought and at
// what price. A portfolio may hold several holdings of the same coin; they are
// tracked as distinct rows and never merged.
//
// A holding has no identity of its own, it is addressed by its position in the
// portfolio's holding list.
type Holding struct {
	CoinID    string    `json:"coin_id"`   // CoinGecko identifier, e.g. "bitcoin".
	CoinName  string    `json:"coin_name"` // Human readable name, e.g. "Bitcoin".
	Symbol    string    `json:"symbol"`    // Ticker symbol, always uppercase.
	Amount    Quantity  `json:"amount"`
	BuyPrice  Money     `json:"buy_price"` // Unit price paid, in USD.
	DateAdded time.Time `json:"date_added"`
}

// NewHolding creates a validated Holding. The amount must be strictly
// positive and the buy price non-negative; a zero buy price is legal
// (airdrops, rewards) and is zero-guarded in the valuation math.
//
// DateAdded is left zero: it is stamped by Portfolio.Add so that the holding
// and its transaction record share the same timestamp.
func NewHolding(coinID, coinName, symbol string, amount Quantity, buyPrice Money) (Holding, error) {
	if coinID == "" {
		return Holding{}, errors.New("coin id is missing")
	}
	if !amount.IsPositive() {
		return Holding{}, fmt.Errorf("amount must be positive, got %s", amount)
	}
	if buyPrice.IsNegative() {
		return Holding{}, fmt.Errorf("buy price cannot be negative, got %s", buyPrice)
	}
	return Holding{
		CoinID:   coinID,
		CoinName: coinName,
		Symbol:   strings.ToUpper(symbol),
		Amount:   amount,
		BuyPrice: buyPrice,
	}, nil
}

// Invested returns the total amount paid for this holding.
func (h Holding) Invested() Money { return h.BuyPrice.Mul(h.Amount) }

// Equal reports whether two holdings have the same content.
func (h Holding) Equal(o Holding) bool {
	return h.CoinID == o.CoinID &&
		h.CoinName == o.CoinName &&
		h.Symbol == o.Symbol &&
		h.Amount.Equal(o.Amount) &&
		h.BuyPrice.Equal(o.BuyPrice) &&
		h.DateAdded.Equal(o.DateAdded)
}
