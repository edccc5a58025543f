package game

import "errors"

// Rule and lookup failures. The messages are the user-facing contract and
// are surfaced verbatim; none of them are fatal to the process.
var (
	ErrRoomNotFound     = errors.New("room does not exist")
	ErrWrongPlayerCount = errors.New("there must be 2 or 4 players")
	ErrRoomInactive     = errors.New("room isn't active")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNotSeated        = errors.New("you are not seated in this room")
	ErrInvalidAction    = errors.New("invalid action")
	ErrAlreadyThrew     = errors.New("you already threw a card")
	ErrHaventThrown     = errors.New("you haven't thrown a card")
	ErrValueMismatch    = errors.New("those cards don't add up")
	ErrNothingToClaim   = errors.New("there is nothing to claim")
	ErrInvalidClaim     = errors.New("you can't claim those cards")
	ErrInsufficientDeck = errors.New("not enough cards left to deal")
)
