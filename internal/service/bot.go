package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// botPlayer picks moves with an exhaustive minimax search over the full game
// tree. The 3x3 board is small enough to walk entirely, so the bot plays
// perfectly without pruning, memoization or evaluation heuristics.
type botPlayer struct {
	mark string
}

func NewBotPlayer(mark string) Player {
	return &botPlayer{mark: mark}
}

func (that *botPlayer) Mark() string {
	return that.mark
}

func (that *botPlayer) IsBot() bool {
	return true
}

// ChooseMove - returns the optimal cell for the bot's mark under perfect
// play. Calling it on a terminal board is an engine bug and fails with
// ErrNoAvailableMoves or ErrGameAlreadyDecided.
func (that *botPlayer) ChooseMove(game *entity.Game) (int, error) {
	moves := game.LegalMoves()
	if len(moves) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	if result := game.DetermineGameResult(); result != "" {
		return 0, fmt.Errorf("%w: winner %s", apperror.ErrGameAlreadyDecided, result)
	}

	board := game.Board

	bestMove := moves[0]
	bestScore := -2 // all scores are in [-1, 1]

	// Ties are broken toward the lowest cell index: moves are scanned in
	// ascending order and only a strictly better score replaces the current
	// best, which keeps the bot fully deterministic.
	for _, move := range moves {
		board[move] = that.mark
		score := minimax(board, entity.OpponentMark(that.mark), that.mark)
		board[move] = entity.EmptyCell

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, nil
}

// minimax - scores a position from the point of view of maximizingMark:
// +1 for a won position, -1 for a lost one, 0 for a draw. turn is the mark
// about to move. The board is an array, so each call works on its own copy
// and cells are reset after every recursion step.
func minimax(board [9]string, turn, maximizingMark string) int {
	switch result := entity.DetermineResult(board); result {
	case maximizingMark:
		return 1
	case entity.PlayerTie:
		return 0
	case "": // still in progress, search deeper
	default:
		return -1
	}

	best := -2
	if turn != maximizingMark {
		best = 2
	}

	for cell, mark := range board {
		if mark != entity.EmptyCell {
			continue
		}

		board[cell] = turn
		score := minimax(board, entity.OpponentMark(turn), maximizingMark)
		board[cell] = entity.EmptyCell

		if turn == maximizingMark && score > best {
			best = score
		}

		if turn != maximizingMark && score < best {
			best = score
		}
	}

	return best
}
