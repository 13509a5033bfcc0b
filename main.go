package main

import (
	"fmt"
	"os"

	"scrap-auction/internal/config"
	model "scrap-auction/internal/models"
	"scrap-auction/internal/repository"
	"scrap-auction/internal/session"
	workflow "scrap-auction/internal/workflowService"
	"scrap-auction/services/console"
	"scrap-auction/utils"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	store, err := repository.OpenSQLiteStore(cfg.DatabasePath, cfg.DocumentKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	svc, err := workflow.NewWorkflowService(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load workflow document: %v\n", err)
		os.Exit(1)
	}
	if err := svc.Bootstrap(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed demo users: %v\n", err)
		os.Exit(1)
	}

	switch command() {
	case "demo":
		if err := runDemo(svc); err != nil {
			fmt.Fprintf(os.Stderr, "Demo failed: %s (%v)\n", console.MapErrorToMessage(err), err)
			os.Exit(1)
		}
	case "summary":
		printSummary(svc)
	default:
		fmt.Fprintln(os.Stderr, "Usage: scrap-auction [demo|summary]")
		os.Exit(2)
	}
}

// runDemo walks the whole workflow once: seller packages and lists a box,
// buyer bids, seller accepts, admin approves and settles.
func runDemo(svc *workflow.WorkflowService) error {
	sess := session.New()

	seller := svc.Authenticate("seller", "seller")
	if seller == nil {
		return fmt.Errorf("demo seller login failed")
	}
	sess.Set(seller)

	box := svc.CreateBox(seller.UserID, workflow.CreateBoxInput{
		PackageName: "Copper pallet",
		SaleUnit:    model.SaleByWeight,
		Count:       1,
		GrossWeight: 100,
		TareWeight:  10,
	})
	if _, err := svc.AddPart(box.BoxID, workflow.PartInput{Name: "Copper #1", FillLevel: 80}); err != nil {
		return err
	}
	if err := svc.FinalizeBox(box.BoxID); err != nil {
		return err
	}
	auction, err := svc.CreateAuction(seller.UserID, workflow.CreateAuctionInput{
		Title:        "Copper lot",
		Shipping:     []string{"pickup"},
		PaymentTerms: []string{"wire"},
		BoxIDs:       []string{box.BoxID},
	})
	if err != nil {
		return err
	}

	buyer := svc.Authenticate("buyer", "buyer")
	if buyer == nil {
		return fmt.Errorf("demo buyer login failed")
	}
	sess.Set(buyer)

	bid, err := svc.SubmitBid(buyer.UserID, auction.AuctionID, []workflow.OfferInput{
		{PartID: box.Parts[0].PartID, Amount: "50"},
	})
	if err != nil {
		return err
	}

	sess.Set(seller)
	if err := svc.SetBidSellerStatus(bid.BidID, true); err != nil {
		return err
	}

	admin := svc.Authenticate("admin", "admin")
	if admin == nil {
		return fmt.Errorf("demo admin login failed")
	}
	sess.Set(admin)
	if err := svc.SetBidAdminStatus(bid.BidID, true); err != nil {
		return err
	}

	console.LogSuccess("demo", "workflow completed", map[string]any{
		"box_id":     box.BoxID,
		"auction_id": auction.AuctionID,
		"bid_id":     bid.BidID,
	})
	printSummary(svc)
	return nil
}

// printSummary dumps the current document state to stdout.
func printSummary(svc *workflow.WorkflowService) {
	fmt.Println("Open auctions:")
	for _, a := range svc.OpenAuctions() {
		fmt.Println("  " + console.FormatAuction(a))
	}
	fmt.Println("Ledger:")
	for _, e := range svc.LedgerEntries() {
		fmt.Println("  " + console.FormatLedgerEntry(e))
	}
}

// configPath returns the config file path from env or the default.
func configPath() string {
	if p := os.Getenv("SCRAP_AUCTION_CONFIG"); p != "" {
		return p
	}
	return "scrap-auction.yaml"
}

// command returns the requested subcommand, defaulting to the summary view.
func command() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "summary"
}
