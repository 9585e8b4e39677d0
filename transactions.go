package cryptofolio

import "time"

// TransactionType is a typed string identifying the kind of transaction.
type TransactionType string

// Transaction types recorded in the audit trail.
const (
	TxBuy TransactionType = "buy"
)

// Transaction is one record of the append-only audit trail. Exactly one buy
// transaction is recorded per holding added. Removing a holding does not
// remove or adjust its transaction: the trail is independent of the current
// holding list.
type Transaction struct {
	Type   TransactionType `json:"type"`
	CoinID string          `json:"coin_id"`
	Amount Quantity        `json:"amount"`
	Price  Money           `json:"price"` // Unit price in USD at the time of the transaction.
	Date   time.Time       `json:"date"`
}

// NewBuy creates a buy transaction record.
func NewBuy(coinID string, amount Quantity, price Money, date time.Time) Transaction {
	return Transaction{
		Type:   TxBuy,
		CoinID: coinID,
		Amount: amount,
		Price:  price,
		Date:   date,
	}
}

// Equal reports whether two transactions have the same content.
func (t Transaction) Equal(o Transaction) bool {
	return t.Type == o.Type &&
		t.CoinID == o.CoinID &&
		t.Amount.Equal(o.Amount) &&
		t.Price.Equal(o.Price) &&
		t.Date.Equal(o.Date)
}
