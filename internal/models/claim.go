package models

import "time"

type ClaimStatus string

const (
	ClaimStatusPending   ClaimStatus = "Pending"
	ClaimStatusCompleted ClaimStatus = "Completed"
	ClaimStatusCancelled ClaimStatus = "Cancelled"
)

func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusCompleted, ClaimStatusCancelled:
		return true
	}
	return false
}

// Claim: a receiver's request against a listing. FoodID and ReceiverID are
// advisory references like FoodListing.ProviderID. Timestamp is an ISO-8601
// string, filled with "now" when the caller leaves it blank.
type Claim struct {
	ID         uint        `gorm:"primaryKey"`
	FoodID     *uint       `gorm:"index"`
	ReceiverID *uint       `gorm:"index"`
	Status     ClaimStatus `gorm:"size:20;not null;check:chk_claims_status,status IN ('Pending','Completed','Cancelled')"`
	Timestamp  string      `gorm:"size:30;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
