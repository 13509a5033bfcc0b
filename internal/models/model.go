package models

import "time"

// Role identifies what a user may do in the workflow.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// BoxStatus is the lifecycle state of a box. Transitions only move forward:
// WIP -> FINISHED -> IN_AUCTION -> SOLD.
type BoxStatus string

const (
	BoxWIP       BoxStatus = "WIP"
	BoxFinished  BoxStatus = "FINISHED"
	BoxInAuction BoxStatus = "IN_AUCTION"
	BoxSold      BoxStatus = "SOLD"
)

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	AuctionOpen AuctionStatus = "IN_AUCTION"
	AuctionSold AuctionStatus = "SOLD"
)

// BidStatus is the lifecycle state of a bid. The flow is linear:
// SUBMITTED -> SELLER_ACCEPTED -> ADMIN_APPROVED, with SELLER_REJECTED and
// ADMIN_REJECTED as terminal branches.
type BidStatus string

const (
	BidSubmitted      BidStatus = "SUBMITTED"
	BidSellerAccepted BidStatus = "SELLER_ACCEPTED"
	BidSellerRejected BidStatus = "SELLER_REJECTED"
	BidAdminApproved  BidStatus = "ADMIN_APPROVED"
	BidAdminRejected  BidStatus = "ADMIN_REJECTED"
)

// SaleUnit says whether a box is sold by weight or by piece count.
type SaleUnit string

const (
	SaleByWeight SaleUnit = "weight"
	SaleByCount  SaleUnit = "count"
)

// User represents a participant in the workflow.
type User struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	ParentID   string `json:"parent_id,omitempty"`
	TrustLevel int    `json:"trust_level"`
}

// Part is a single line item inside a box. Its name must match the owning
// box's material (case-insensitively) once that material is set.
type Part struct {
	PartID     string   `json:"part_id"`
	Name       string   `json:"name"`
	Photos     []string `json:"photos,omitempty"`
	FillLevel  int      `json:"fill_level"`
	VIN        string   `json:"vin,omitempty"`
	Year       string   `json:"year,omitempty"`
	Make       string   `json:"make,omitempty"`
	Model      string   `json:"model,omitempty"`
	Trim       string   `json:"trim,omitempty"`
	PartNumber string   `json:"part_number,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// Box is a physical lot of scrap owned by one seller. Photos are opaque
// blobs (data URLs in practice) the engine never interprets.
type Box struct {
	BoxID       string    `json:"box_id"`
	SellerID    string    `json:"seller_id"`
	PackageName string    `json:"package_name"`
	Material    string    `json:"material"`
	SaleUnit    SaleUnit  `json:"sale_unit"`
	Count       int       `json:"count"`
	GrossWeight float64   `json:"gross_weight"`
	TareWeight  float64   `json:"tare_weight"`
	NetWeight   float64   `json:"net_weight"`
	Photos      []string  `json:"photos,omitempty"`
	Status      BoxStatus `json:"status"`
	Parts       []*Part   `json:"parts"`
}

// Auction lists a fixed set of finished boxes from one seller. The box list
// is frozen at creation.
type Auction struct {
	AuctionID      string        `json:"auction_id"`
	SellerID       string        `json:"seller_id"`
	Title          string        `json:"title"`
	Shipping       []string      `json:"shipping,omitempty"`
	ForkliftOnSite bool          `json:"forklift_on_site"`
	PaymentTerms   []string      `json:"payment_terms,omitempty"`
	BoxIDs         []string      `json:"box_ids"`
	Status         AuctionStatus `json:"status"`
	BidIDs         []string      `json:"bid_ids"`
}

// OfferLine is one per-part offer inside a bid.
type OfferLine struct {
	PartID string  `json:"part_id"`
	Amount float64 `json:"amount"`
}

// Bid is a buyer's per-part offer set against one auction.
type Bid struct {
	BidID          string      `json:"bid_id"`
	AuctionID      string      `json:"auction_id"`
	BuyerID        string      `json:"buyer_id"`
	Lines          []OfferLine `json:"lines"`
	Total          float64     `json:"total"`
	Status         BidStatus   `json:"status"`
	SellerApproved bool        `json:"seller_approved"`
	AdminApproved  bool        `json:"admin_approved"`
	CreatedAt      time.Time   `json:"created_at"`
}

// LedgerEntry is an immutable settlement record, appended exactly once when
// a bid is admin-approved. Never mutated or deleted.
type LedgerEntry struct {
	EntryID   string    `json:"entry_id"`
	SellerID  string    `json:"seller_id"`
	BuyerID   string    `json:"buyer_id"`
	AuctionID string    `json:"auction_id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// Document aggregates all workflow state. It is the sole unit of
// persistence: every mutating operation saves the whole document.
type Document struct {
	Users    []*User        `json:"users"`
	Boxes    []*Box         `json:"boxes"`
	Auctions []*Auction     `json:"auctions"`
	Bids     []*Bid         `json:"bids"`
	Ledger   []*LedgerEntry `json:"ledger"`
}

// NewDocument returns an empty document with non-nil collections.
func NewDocument() *Document {
	return &Document{
		Users:    []*User{},
		Boxes:    []*Box{},
		Auctions: []*Auction{},
		Bids:     []*Bid{},
		Ledger:   []*LedgerEntry{},
	}
}
