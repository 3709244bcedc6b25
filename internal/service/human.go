package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MoveReader supplies move indices for a human player's turn.
type MoveReader interface {
	PromptMove(mark string) (int, error)
}

type humanPlayer struct {
	mark   string
	reader MoveReader
}

// NewHumanPlayer - creates a player that reads its moves from the given
// reader. Legality of the chosen cell is enforced by the game itself.
func NewHumanPlayer(mark string, reader MoveReader) Player {
	return &humanPlayer{mark: mark, reader: reader}
}

func (that *humanPlayer) Mark() string {
	return that.mark
}

func (that *humanPlayer) IsBot() bool {
	return false
}

func (that *humanPlayer) ChooseMove(_ *entity.Game) (int, error) {
	cell, err := that.reader.PromptMove(that.mark)
	if err != nil {
		return 0, fmt.Errorf("failed to read move: %w", err)
	}

	return cell, nil
}
