package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/require"

	model "scrap-auction/internal/models"
	"scrap-auction/internal/session"
	workflow "scrap-auction/internal/workflowService"
)

// TestFullWorkflow walks the whole seller -> buyer -> admin flow against a
// real SQLite store: package scrap, itemize, finalize, auction, bid, accept,
// approve, settle.
func TestFullWorkflow(t *testing.T) {
	svc, _ := newTestEngine(t)
	sess := session.New()

	seller := svc.Authenticate("seller", "seller")
	require.NotNil(t, seller)
	sess.Set(seller)

	box := svc.CreateBox(seller.UserID, workflow.CreateBoxInput{
		PackageName: "Copper pallet",
		SaleUnit:    model.SaleByWeight,
		Count:       1,
		GrossWeight: 100,
		TareWeight:  10,
	})
	require.Equal(t, 90.0, box.NetWeight)
	require.Equal(t, model.BoxWIP, box.Status)

	part, err := svc.AddPart(box.BoxID, workflow.PartInput{Name: "Copper #1", FillLevel: 80})
	require.NoError(t, err)
	require.Equal(t, "Copper #1", box.Material)

	require.NoError(t, svc.FinalizeBox(box.BoxID))
	require.Equal(t, model.BoxFinished, box.Status)

	auction, err := svc.CreateAuction(seller.UserID, workflow.CreateAuctionInput{
		Title:  "Copper lot",
		BoxIDs: []string{box.BoxID},
	})
	require.NoError(t, err)
	require.Equal(t, model.BoxInAuction, box.Status)

	buyer := svc.Authenticate("buyer", "buyer")
	require.NotNil(t, buyer)
	sess.Set(buyer)

	bid, err := svc.SubmitBid(buyer.UserID, auction.AuctionID, []workflow.OfferInput{
		{PartID: part.PartID, Amount: "50"},
	})
	require.NoError(t, err)
	require.Equal(t, 50.0, bid.Total)
	require.Equal(t, model.BidSubmitted, bid.Status)

	sess.Set(seller)
	require.NoError(t, svc.SetBidSellerStatus(bid.BidID, true))
	require.Equal(t, model.BidSellerAccepted, bid.Status)

	admin := svc.Authenticate("admin", "admin")
	require.NotNil(t, admin)
	sess.Set(admin)
	require.NoError(t, svc.SetBidAdminStatus(bid.BidID, true))

	require.Equal(t, model.BidAdminApproved, bid.Status)
	require.Equal(t, model.AuctionSold, auction.Status)
	require.Equal(t, model.BoxSold, box.Status)

	entries := svc.LedgerEntries()
	require.Len(t, entries, 1)
	require.Equal(t, 50.0, entries[0].Total)
	require.Equal(t, seller.UserID, entries[0].SellerID)
	require.Equal(t, buyer.UserID, entries[0].BuyerID)
}

// TestWorkflowSurvivesRestart settles a bid, then reloads the document from
// disk through a fresh engine and checks every cascaded status stuck.
func TestWorkflowSurvivesRestart(t *testing.T) {
	svc, path := newTestEngine(t)

	seller := svc.Authenticate("seller", "seller")
	buyer := svc.Authenticate("buyer", "buyer")
	require.NotNil(t, seller)
	require.NotNil(t, buyer)

	box := svc.CreateBox(seller.UserID, workflow.CreateBoxInput{GrossWeight: 20, TareWeight: 5})
	part, err := svc.AddPart(box.BoxID, workflow.PartInput{Name: "Brass"})
	require.NoError(t, err)
	require.NoError(t, svc.FinalizeBox(box.BoxID))

	auction, err := svc.CreateAuction(seller.UserID, workflow.CreateAuctionInput{BoxIDs: []string{box.BoxID}})
	require.NoError(t, err)
	bid, err := svc.SubmitBid(buyer.UserID, auction.AuctionID, []workflow.OfferInput{
		{PartID: part.PartID, Amount: "12.5"},
	})
	require.NoError(t, err)
	require.NoError(t, svc.SetBidSellerStatus(bid.BidID, true))
	require.NoError(t, svc.SetBidAdminStatus(bid.BidID, true))

	// Fresh store handle and engine, same database file.
	reopened, err := workflow.NewWorkflowService(openTestStore(t, path))
	require.NoError(t, err)

	loadedBox := reopened.BoxByID(box.BoxID)
	require.NotNil(t, loadedBox)
	require.Equal(t, model.BoxSold, loadedBox.Status)
	require.Equal(t, "Brass", loadedBox.Material)
	require.Equal(t, 15.0, loadedBox.NetWeight)

	loadedAuction := reopened.AuctionByID(auction.AuctionID)
	require.NotNil(t, loadedAuction)
	require.Equal(t, model.AuctionSold, loadedAuction.Status)
	require.Equal(t, []string{bid.BidID}, loadedAuction.BidIDs)

	entries := reopened.LedgerEntries()
	require.Len(t, entries, 1)
	require.Equal(t, 12.5, entries[0].Total)

	// Bootstrap is idempotent over the persisted document.
	require.NoError(t, reopened.Bootstrap())
	bids := reopened.BidsForAuction(auction.AuctionID)
	require.Len(t, bids, 1)
	require.Equal(t, model.BidAdminApproved, bids[0].Status)
}

// TestFailedOperationsLeaveDocumentUnchanged checks validation happens before
// any mutation reaches the persisted document.
func TestFailedOperationsLeaveDocumentUnchanged(t *testing.T) {
	svc, path := newTestEngine(t)

	seller := svc.Authenticate("seller", "seller")
	require.NotNil(t, seller)

	box := svc.CreateBox(seller.UserID, workflow.CreateBoxInput{Material: "Copper #1"})
	_, err := svc.AddPart(box.BoxID, workflow.PartInput{Name: "Steel"})
	require.Error(t, err)

	_, err = svc.CreateAuction(seller.UserID, workflow.CreateAuctionInput{BoxIDs: []string{box.BoxID}})
	require.Error(t, err)

	reopened, err := workflow.NewWorkflowService(openTestStore(t, path))
	require.NoError(t, err)

	loaded := reopened.BoxByID(box.BoxID)
	require.NotNil(t, loaded)
	require.Empty(t, loaded.Parts)
	require.Equal(t, model.BoxWIP, loaded.Status)
	require.Empty(t, reopened.OpenAuctions())
}
