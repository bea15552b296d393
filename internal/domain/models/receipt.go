package models

import "time"

// Receipt is the confirmation artifact for a mutating ledger call. It is
// only produced after the transaction has been mined; no mutation is assumed
// to have taken effect until its receipt reports success.
type Receipt struct {
	TxHash      string    `json:"txHash"`
	BlockNumber uint64    `json:"blockNumber"`
	GasUsed     uint64    `json:"gasUsed"`
	Success     bool      `json:"success"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}
