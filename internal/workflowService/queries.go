package workflow

import (
	model "scrap-auction/internal/models"
	"scrap-auction/utils"
)

// Read-side accessors for callers that render workflow state. Returned
// slices are fresh; the entities themselves are the live document records
// and must not be mutated by callers.

// UserByID returns the user with the given id, or nil.
func (s *WorkflowService) UserByID(id string) *model.User {
	for _, u := range s.doc.Users {
		if u.UserID == id {
			return u
		}
	}
	return nil
}

// Authenticate resolves a user by username and opaque credential. Passwords
// are compared by plain equality.
func (s *WorkflowService) Authenticate(username, password string) *model.User {
	for _, u := range s.doc.Users {
		if u.Username == username && u.Password == password {
			return u
		}
	}
	return nil
}

// BoxByID returns the box with the given id, or nil.
func (s *WorkflowService) BoxByID(id string) *model.Box {
	return s.findBox(id)
}

// BoxesBySeller returns all boxes owned by the given seller, in creation order.
func (s *WorkflowService) BoxesBySeller(sellerID string) []*model.Box {
	boxes := []*model.Box{}
	for _, b := range s.doc.Boxes {
		if b.SellerID == sellerID {
			boxes = append(boxes, b)
		}
	}
	return boxes
}

// AuctionByID returns the auction with the given id, or nil.
func (s *WorkflowService) AuctionByID(id string) *model.Auction {
	return s.findAuction(id)
}

// OpenAuctions returns all auctions still accepting bids.
func (s *WorkflowService) OpenAuctions() []*model.Auction {
	auctions := []*model.Auction{}
	for _, a := range s.doc.Auctions {
		if a.Status == model.AuctionOpen {
			auctions = append(auctions, a)
		}
	}
	return auctions
}

// BidsForAuction returns all bids received by an auction, in submission order.
func (s *WorkflowService) BidsForAuction(auctionID string) []*model.Bid {
	bids := []*model.Bid{}
	for _, b := range s.doc.Bids {
		if b.AuctionID == auctionID {
			bids = append(bids, b)
		}
	}
	return bids
}

// LedgerEntries returns every settlement record, oldest first.
func (s *WorkflowService) LedgerEntries() []*model.LedgerEntry {
	return append([]*model.LedgerEntry{}, s.doc.Ledger...)
}

// Bootstrap seeds an empty document with the minimal user chain: an admin,
// a seller sponsored by the admin, and a buyer sponsored by the seller.
// A document that already has users is left untouched.
func (s *WorkflowService) Bootstrap() error {
	if len(s.doc.Users) > 0 {
		return nil
	}

	admin, err := s.CreateUser("admin", "admin", "Administrator", model.RoleAdmin, "")
	if err != nil {
		return err
	}
	seller, err := s.CreateUser("seller", "seller", "Demo Seller", model.RoleSeller, admin.UserID)
	if err != nil {
		return err
	}
	buyer, err := s.CreateUser("buyer", "buyer", "Demo Buyer", model.RoleBuyer, seller.UserID)
	if err != nil {
		return err
	}

	utils.Info("bootstrapped demo users", map[string]any{
		"admin_id":  admin.UserID,
		"seller_id": seller.UserID,
		"buyer_id":  buyer.UserID,
	})
	return nil
}
