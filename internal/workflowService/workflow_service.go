package workflow

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	model "scrap-auction/internal/models"
	"scrap-auction/internal/repository"
	"scrap-auction/internal/workflowerrors"
	"scrap-auction/utils"
)

// WorkflowService owns the workflow document and implements every operation
// of the auction workflow. All operations validate their preconditions before
// mutating anything, then persist the whole document best-effort.
type WorkflowService struct {
	store repository.DocumentStore
	doc   *model.Document
}

// NewWorkflowService loads the document from the store (or starts from an
// empty default) and returns a ready engine.
func NewWorkflowService(store repository.DocumentStore) (*WorkflowService, error) {
	doc, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("service: failed to load document: %w", err)
	}
	if doc == nil {
		doc = model.NewDocument()
	}
	return &WorkflowService{store: store, doc: doc}, nil
}

// CreateBoxInput carries the seller-supplied fields for a new box.
// NetWeight overrides the gross-minus-tare derivation when set.
type CreateBoxInput struct {
	PackageName string
	Material    string
	SaleUnit    model.SaleUnit
	Count       int
	GrossWeight float64
	TareWeight  float64
	NetWeight   *float64
	Photos      []string
}

// PartInput carries the fields for a new part inside a box.
type PartInput struct {
	Name       string
	Photos     []string
	FillLevel  int
	VIN        string
	Year       string
	Make       string
	Model      string
	Trim       string
	PartNumber string
	Notes      string
}

// CreateAuctionInput carries the fields for a new auction listing.
type CreateAuctionInput struct {
	Title          string
	Shipping       []string
	ForkliftOnSite bool
	PaymentTerms   []string
	BoxIDs         []string
}

// OfferInput is one raw per-part offer as submitted by a buyer. Amount is the
// untyped form value; non-numeric amounts coerce to zero rather than failing.
type OfferInput struct {
	PartID string
	Amount string
}

// CreateUser creates a new user with trust level zero. Usernames are unique
// by case-sensitive exact match.
func (s *WorkflowService) CreateUser(username, password, name string, role model.Role, parentID string) (*model.User, error) {
	for _, u := range s.doc.Users {
		if u.Username == username {
			return nil, fmt.Errorf("service: create user %q: %w", username, workflowerrors.ErrDuplicateUsername)
		}
	}

	user := &model.User{
		UserID:     utils.GenerateID(utils.KindUser),
		Username:   username,
		Password:   password,
		Name:       name,
		Role:       role,
		ParentID:   parentID,
		TrustLevel: 0,
	}
	s.doc.Users = append(s.doc.Users, user)
	s.persist()
	return user, nil
}

// CreateBox creates a new box in WIP status with an empty part list. The net
// weight is taken as supplied, or derived as gross minus tare when absent.
func (s *WorkflowService) CreateBox(sellerID string, in CreateBoxInput) *model.Box {
	net := in.GrossWeight - in.TareWeight
	if in.NetWeight != nil {
		net = *in.NetWeight
	}

	box := &model.Box{
		BoxID:       utils.GenerateID(utils.KindBox),
		SellerID:    sellerID,
		PackageName: in.PackageName,
		Material:    in.Material,
		SaleUnit:    in.SaleUnit,
		Count:       in.Count,
		GrossWeight: in.GrossWeight,
		TareWeight:  in.TareWeight,
		NetWeight:   net,
		Photos:      in.Photos,
		Status:      model.BoxWIP,
		Parts:       []*model.Part{},
	}
	s.doc.Boxes = append(s.doc.Boxes, box)
	s.persist()
	return box
}

// AddPart appends a part to a box in WIP or FINISHED status. If the box has
// no material yet, the part's name is adopted as the box material; otherwise
// the name must match the material case-insensitively. Adding a part to a
// FINISHED box does not revert its status.
func (s *WorkflowService) AddPart(boxID string, in PartInput) (*model.Part, error) {
	box := s.findBox(boxID)
	if box == nil {
		return nil, fmt.Errorf("service: add part to box %s: %w", boxID, workflowerrors.ErrBoxNotFound)
	}
	if box.Status != model.BoxWIP && box.Status != model.BoxFinished {
		return nil, fmt.Errorf("service: add part to box %s in status %s: %w", boxID, box.Status, workflowerrors.ErrInvalidBoxState)
	}

	// If the box material is unset, the first named part establishes it.
	material := box.Material
	if material == "" && in.Name != "" {
		material = in.Name
	}
	if material != "" && !strings.EqualFold(material, in.Name) {
		return nil, fmt.Errorf("service: part %q vs material %q: %w", in.Name, material, workflowerrors.ErrMaterialMismatch)
	}

	part := &model.Part{
		PartID:     utils.GenerateID(utils.KindPart),
		Name:       in.Name,
		Photos:     in.Photos,
		FillLevel:  in.FillLevel,
		VIN:        in.VIN,
		Year:       in.Year,
		Make:       in.Make,
		Model:      in.Model,
		Trim:       in.Trim,
		PartNumber: in.PartNumber,
		Notes:      in.Notes,
	}
	box.Material = material
	box.Parts = append(box.Parts, part)
	s.persist()
	return part, nil
}

// FinalizeBox transitions a WIP box with at least one part to FINISHED.
func (s *WorkflowService) FinalizeBox(boxID string) error {
	box := s.findBox(boxID)
	if box == nil {
		return fmt.Errorf("service: finalize box %s: %w", boxID, workflowerrors.ErrBoxNotFound)
	}
	if len(box.Parts) == 0 {
		return fmt.Errorf("service: finalize box %s: %w", boxID, workflowerrors.ErrEmptyBox)
	}
	if box.Status != model.BoxWIP {
		return fmt.Errorf("service: finalize box %s in status %s: %w", boxID, box.Status, workflowerrors.ErrInvalidBoxState)
	}

	box.Status = model.BoxFinished
	s.persist()
	return nil
}

// CreateAuction lists a set of FINISHED boxes as one auction. Validation is
// all-or-nothing: every box is resolved and checked before any box changes
// status. On success each listed box flips to IN_AUCTION and the auction
// keeps a frozen copy of the box id list.
func (s *WorkflowService) CreateAuction(sellerID string, in CreateAuctionInput) (*model.Auction, error) {
	boxes := make([]*model.Box, 0, len(in.BoxIDs))
	for _, id := range in.BoxIDs {
		box := s.findBox(id)
		if box == nil {
			return nil, fmt.Errorf("service: create auction with box %s: %w", id, workflowerrors.ErrBoxNotFound)
		}
		if box.Status != model.BoxFinished {
			return nil, fmt.Errorf("service: create auction with box %s in status %s: %w", id, box.Status, workflowerrors.ErrBoxNotReady)
		}
		boxes = append(boxes, box)
	}

	auction := &model.Auction{
		AuctionID:      utils.GenerateID(utils.KindAuction),
		SellerID:       sellerID,
		Title:          in.Title,
		Shipping:       append([]string(nil), in.Shipping...),
		ForkliftOnSite: in.ForkliftOnSite,
		PaymentTerms:   append([]string(nil), in.PaymentTerms...),
		BoxIDs:         append([]string(nil), in.BoxIDs...),
		Status:         model.AuctionOpen,
		BidIDs:         []string{},
	}
	if auction.Title == "" {
		auction.Title = auction.AuctionID
	}

	for _, box := range boxes {
		box.Status = model.BoxInAuction
	}
	s.doc.Auctions = append(s.doc.Auctions, auction)
	s.persist()
	return auction, nil
}

// SubmitBid records a buyer's per-part offers against an auction. Offer
// amounts that fail to parse count as zero; a bid whose total is not positive
// is rejected. Resubmitting creates a second bid, never a duplicate error.
func (s *WorkflowService) SubmitBid(buyerID, auctionID string, offers []OfferInput) (*model.Bid, error) {
	auction := s.findAuction(auctionID)
	if auction == nil {
		return nil, fmt.Errorf("service: submit bid on auction %s: %w", auctionID, workflowerrors.ErrAuctionNotFound)
	}

	lines := make([]model.OfferLine, 0, len(offers))
	total := 0.0
	for _, offer := range offers {
		amount, err := strconv.ParseFloat(strings.TrimSpace(offer.Amount), 64)
		if err != nil {
			amount = 0
		}
		lines = append(lines, model.OfferLine{PartID: offer.PartID, Amount: amount})
		total += amount
	}
	if total <= 0 {
		return nil, fmt.Errorf("service: submit bid on auction %s: %w", auctionID, workflowerrors.ErrEmptyBid)
	}

	bid := &model.Bid{
		BidID:     utils.GenerateID(utils.KindBid),
		AuctionID: auctionID,
		BuyerID:   buyerID,
		Lines:     lines,
		Total:     total,
		Status:    model.BidSubmitted,
		CreatedAt: time.Now().UTC(),
	}
	s.doc.Bids = append(s.doc.Bids, bid)
	auction.BidIDs = append(auction.BidIDs, bid.BidID)
	s.persist()
	return bid, nil
}

// SetBidSellerStatus records the seller's decision on a bid. There is no
// state precondition: a redundant decision simply overwrites the status.
// Accepting one bid never rejects sibling bids on the same auction.
func (s *WorkflowService) SetBidSellerStatus(bidID string, approve bool) error {
	bid := s.findBid(bidID)
	if bid == nil {
		return fmt.Errorf("service: seller decision on bid %s: %w", bidID, workflowerrors.ErrBidNotFound)
	}

	if approve {
		bid.Status = model.BidSellerAccepted
		bid.SellerApproved = true
	} else {
		bid.Status = model.BidSellerRejected
	}
	s.persist()
	return nil
}

// SetBidAdminStatus records the admin's decision on a seller-accepted bid.
// Approval settles the bid: the auction and every box in its list become
// SOLD and exactly one ledger entry is appended. All entities are resolved
// and checked before any mutation, so a failed lookup changes nothing.
func (s *WorkflowService) SetBidAdminStatus(bidID string, approve bool) error {
	bid := s.findBid(bidID)
	if bid == nil {
		return fmt.Errorf("service: admin decision on bid %s: %w", bidID, workflowerrors.ErrBidNotFound)
	}
	if bid.Status != model.BidSellerAccepted {
		return fmt.Errorf("service: admin decision on bid %s in status %s: %w", bidID, bid.Status, workflowerrors.ErrBidNotActionable)
	}
	auction := s.findAuction(bid.AuctionID)
	if auction == nil {
		return fmt.Errorf("service: admin decision on bid %s: auction %s: %w", bidID, bid.AuctionID, workflowerrors.ErrAuctionNotFound)
	}

	if !approve {
		bid.Status = model.BidAdminRejected
		s.persist()
		return nil
	}

	boxes := make([]*model.Box, 0, len(auction.BoxIDs))
	for _, id := range auction.BoxIDs {
		box := s.findBox(id)
		if box == nil {
			return fmt.Errorf("service: admin decision on bid %s: box %s: %w", bidID, id, workflowerrors.ErrBoxNotFound)
		}
		boxes = append(boxes, box)
	}

	bid.Status = model.BidAdminApproved
	bid.AdminApproved = true
	auction.Status = model.AuctionSold
	for _, box := range boxes {
		box.Status = model.BoxSold
	}
	entry := &model.LedgerEntry{
		EntryID:   utils.GenerateID(utils.KindLedger),
		SellerID:  auction.SellerID,
		BuyerID:   bid.BuyerID,
		AuctionID: auction.AuctionID,
		Total:     bid.Total,
		CreatedAt: time.Now().UTC(),
	}
	s.doc.Ledger = append(s.doc.Ledger, entry)

	utils.Info("bid settled", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auction.AuctionID,
		"seller_id":  auction.SellerID,
		"buyer_id":   bid.BuyerID,
		"total":      bid.Total,
	})
	s.persist()
	return nil
}

// persist writes the whole document back to the store. Failures are logged
// and swallowed: a completed operation never fails because of the store.
func (s *WorkflowService) persist() {
	if err := s.store.Save(s.doc); err != nil {
		utils.Warn("failed to persist document", map[string]any{"error": err.Error()})
	}
}

func (s *WorkflowService) findBox(id string) *model.Box {
	for _, b := range s.doc.Boxes {
		if b.BoxID == id {
			return b
		}
	}
	return nil
}

func (s *WorkflowService) findAuction(id string) *model.Auction {
	for _, a := range s.doc.Auctions {
		if a.AuctionID == id {
			return a
		}
	}
	return nil
}

func (s *WorkflowService) findBid(id string) *model.Bid {
	for _, b := range s.doc.Bids {
		if b.BidID == id {
			return b
		}
	}
	return nil
}
