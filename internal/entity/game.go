package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game represents the state of a single match: the board, whose turn it is,
// the status and, once finished, the winner. Moves records the played cells
// in order.
type Game struct {
	ID     string    `json:"id"`
	Board  [9]string `json:"board"`
	Turn   string    `json:"turn"`
	Winner string    `json:"winner"`
	Status string    `json:"status"`
	Moves  []int     `json:"moves,omitempty"`
}

// NewGame - creates an empty board with player X to move.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// MakeTurn - places the mark on the given cell. The board is left untouched
// on any validation failure.
func (that *Game) MakeTurn(mark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark
	that.Moves = append(that.Moves, cell)
	that.updateGameState()

	return nil
}

// updateGameState - checks the game status after a move.
func (that *Game) updateGameState() {
	switch winner := DetermineResult(that.Board); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Turn = OpponentMark(that.Turn)
	}
}

// LegalMoves - returns the empty cell indices in ascending order. An empty
// slice means the board is full.
func (that *Game) LegalMoves() []int {
	moves := make([]int, 0, len(that.Board))
	for cell, mark := range that.Board {
		if mark == EmptyCell {
			moves = append(moves, cell)
		}
	}

	return moves
}

func (that *Game) DetermineGameResult() string {
	return DetermineResult(that.Board)
}

func (that *Game) IsFull() bool {
	return len(that.LegalMoves()) == 0
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func OpponentMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// DetermineResult - classifies a board: the winning mark, PlayerTie for a
// full board without a winner, or an empty string while the game continues.
func DetermineResult(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell == EmptyCell {
			return ""
		}
	}

	return PlayerTie
}
