package service

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// Player is a game participant able to pick the next cell for its mark.
// Implementations either ask a human for input or compute the move.
type Player interface {
	Mark() string
	IsBot() bool
	ChooseMove(game *entity.Game) (int, error)
}
