package workflowerrors

import "errors"

// Lookup errors
var (
	ErrBoxNotFound     = errors.New("box not found")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidNotFound     = errors.New("bid not found")
)

// Status/state errors
var (
	ErrInvalidBoxState  = errors.New("box is not in a state that allows this operation")
	ErrBoxNotReady      = errors.New("box is not finished and cannot be auctioned")
	ErrBidNotActionable = errors.New("bid must be seller-accepted first")
)

// business rule errors
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrMaterialMismatch  = errors.New("part name does not match box material")
	ErrEmptyBox          = errors.New("box has no parts")
	ErrEmptyBid          = errors.New("bid total must be greater than zero")
)
