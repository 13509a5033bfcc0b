package utils

import (
	"github.com/google/uuid"
)

// Entity kinds used to namespace generated identifiers. Each collection in
// the document gets its own prefix so an id is traceable to its kind.
const (
	KindUser    = "user"
	KindBox     = "box"
	KindPart    = "part"
	KindAuction = "auction"
	KindBid     = "bid"
	KindLedger  = "ledger"
)

// GenerateID returns a new unique identifier string tagged with the entity kind.
func GenerateID(kind string) string {
	return kind + "-" + uuid.New().String()
}
