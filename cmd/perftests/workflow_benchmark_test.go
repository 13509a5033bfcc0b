package perftests

import (
	"testing"

	model "scrap-auction/internal/models"
	"scrap-auction/internal/repository"
	workflow "scrap-auction/internal/workflowService"
)

// newBenchEngine builds an engine over the in-memory store with one open auction.
func newBenchEngine(b *testing.B) (*workflow.WorkflowService, *model.Auction, *model.Part) {
	b.Helper()

	svc, err := workflow.NewWorkflowService(repository.NewMemoryStore())
	if err != nil {
		b.Fatalf("creating engine: %v", err)
	}

	box := svc.CreateBox("seller-bench", workflow.CreateBoxInput{GrossWeight: 100, TareWeight: 10})
	part, err := svc.AddPart(box.BoxID, workflow.PartInput{Name: "Copper #1"})
	if err != nil {
		b.Fatalf("adding part: %v", err)
	}
	if err := svc.FinalizeBox(box.BoxID); err != nil {
		b.Fatalf("finalizing box: %v", err)
	}
	auction, err := svc.CreateAuction("seller-bench", workflow.CreateAuctionInput{BoxIDs: []string{box.BoxID}})
	if err != nil {
		b.Fatalf("creating auction: %v", err)
	}
	return svc, auction, part
}

// BenchmarkSubmitBid measures bid submission plus the whole-document persist.
func BenchmarkSubmitBid(b *testing.B) {
	svc, auction, part := newBenchEngine(b)
	offers := []workflow.OfferInput{{PartID: part.PartID, Amount: "50"}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.SubmitBid("buyer-bench", auction.AuctionID, offers); err != nil {
			b.Fatalf("submitting bid: %v", err)
		}
	}
}

// BenchmarkSellerDecision measures the seller acceptance path on a growing
// document.
func BenchmarkSellerDecision(b *testing.B) {
	svc, auction, part := newBenchEngine(b)
	offers := []workflow.OfferInput{{PartID: part.PartID, Amount: "50"}}

	bids := make([]*model.Bid, b.N)
	for i := 0; i < b.N; i++ {
		bid, err := svc.SubmitBid("buyer-bench", auction.AuctionID, offers)
		if err != nil {
			b.Fatalf("submitting bid: %v", err)
		}
		bids[i] = bid
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := svc.SetBidSellerStatus(bids[i].BidID, true); err != nil {
			b.Fatalf("seller decision: %v", err)
		}
	}
}

// BenchmarkApprovalCascade measures the full settlement cascade, one fresh
// auction per iteration so every approval actually settles.
func BenchmarkApprovalCascade(b *testing.B) {
	svc, err := workflow.NewWorkflowService(repository.NewMemoryStore())
	if err != nil {
		b.Fatalf("creating engine: %v", err)
	}

	bidIDs := make([]string, b.N)
	for i := 0; i < b.N; i++ {
		box := svc.CreateBox("seller-bench", workflow.CreateBoxInput{GrossWeight: 100, TareWeight: 10})
		part, err := svc.AddPart(box.BoxID, workflow.PartInput{Name: "Copper #1"})
		if err != nil {
			b.Fatalf("adding part: %v", err)
		}
		if err := svc.FinalizeBox(box.BoxID); err != nil {
			b.Fatalf("finalizing box: %v", err)
		}
		auction, err := svc.CreateAuction("seller-bench", workflow.CreateAuctionInput{BoxIDs: []string{box.BoxID}})
		if err != nil {
			b.Fatalf("creating auction: %v", err)
		}
		bid, err := svc.SubmitBid("buyer-bench", auction.AuctionID, []workflow.OfferInput{
			{PartID: part.PartID, Amount: "50"},
		})
		if err != nil {
			b.Fatalf("submitting bid: %v", err)
		}
		if err := svc.SetBidSellerStatus(bid.BidID, true); err != nil {
			b.Fatalf("seller decision: %v", err)
		}
		bidIDs[i] = bid.BidID
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := svc.SetBidAdminStatus(bidIDs[i], true); err != nil {
			b.Fatalf("admin decision: %v", err)
		}
	}
}
