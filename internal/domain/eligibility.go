package domain

import (
	"time"
)

// EligibilityRecord é o resultado de uma verificação de elegibilidade de anúncio
// para um item em um instante. Um item pode ter várias verificações ao longo do tempo.
type EligibilityRecord struct {
	ID                  int64     `json:"id"`
	ItemID              int       `json:"item_id"`
	EligibilityDateTime time.Time `json:"eligibility_datetime"`
	Eligible            bool      `json:"eligibility"`
	Message             *string   `json:"message"`
	CreatedAt           time.Time `json:"created_at"`
}
