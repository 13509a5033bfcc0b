package console

import (
	"errors"
	"fmt"
	"strings"

	model "scrap-auction/internal/models"
	"scrap-auction/internal/workflowerrors"
	"scrap-auction/utils"
)

// MapErrorToMessage maps workflow errors to the message shown to the operator.
func MapErrorToMessage(err error) string {
	switch {
	case errors.Is(err, workflowerrors.ErrBoxNotFound):
		return "box not found"
	case errors.Is(err, workflowerrors.ErrAuctionNotFound):
		return "auction not found"
	case errors.Is(err, workflowerrors.ErrBidNotFound):
		return "bid not found"
	case errors.Is(err, workflowerrors.ErrInvalidBoxState):
		return "box is not in the right state for that"
	case errors.Is(err, workflowerrors.ErrBoxNotReady):
		return "only finished boxes can be auctioned"
	case errors.Is(err, workflowerrors.ErrBidNotActionable):
		return "bid must be accepted by the seller first"
	case errors.Is(err, workflowerrors.ErrDuplicateUsername):
		return "that username is taken"
	case errors.Is(err, workflowerrors.ErrMaterialMismatch):
		return "part material must match the box material"
	case errors.Is(err, workflowerrors.ErrEmptyBox):
		return "box needs at least one part"
	case errors.Is(err, workflowerrors.ErrEmptyBid):
		return "bid must offer more than zero"
	default:
		return "operation failed"
	}
}

// FormatBox renders a one-line box summary.
func FormatBox(b *model.Box) string {
	return fmt.Sprintf("%s %q material=%s net=%.1f parts=%d status=%s",
		b.BoxID, b.PackageName, b.Material, b.NetWeight, len(b.Parts), b.Status)
}

// FormatAuction renders a one-line auction summary.
func FormatAuction(a *model.Auction) string {
	return fmt.Sprintf("%s %q boxes=[%s] bids=%d status=%s",
		a.AuctionID, a.Title, strings.Join(a.BoxIDs, ", "), len(a.BidIDs), a.Status)
}

// FormatBid renders a one-line bid summary.
func FormatBid(b *model.Bid) string {
	return fmt.Sprintf("%s auction=%s buyer=%s total=%.2f status=%s",
		b.BidID, b.AuctionID, b.BuyerID, b.Total, b.Status)
}

// FormatLedgerEntry renders a one-line settlement summary.
func FormatLedgerEntry(e *model.LedgerEntry) string {
	return fmt.Sprintf("%s auction=%s seller=%s buyer=%s total=%.2f at=%s",
		e.EntryID, e.AuctionID, e.SellerID, e.BuyerID, e.Total,
		e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"))
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(operation, message string, ctx map[string]any) {
	utils.Info(operation+": "+message, ctx)
}
