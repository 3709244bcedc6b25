package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrUnknownMark = errors.New("no player owns the current mark")

// Renderer receives board snapshots and the final result for display.
// It has no write access to the game state.
type Renderer interface {
	RenderBoard(board [9]string)
	ShowResult(result string)
}

type GamePlayService interface {
	Play(game *entity.Game, playerX, playerO Player) (string, error)
}

type gamePlayService struct {
	logger   *slog.Logger
	renderer Renderer
}

func NewGamePlayService(logger *slog.Logger, renderer Renderer) GamePlayService {
	return &gamePlayService{
		logger:   logger,
		renderer: renderer,
	}
}

// Play - runs one game to completion, alternating turns between the two
// players, and returns the final result: X, O, or - for a tie.
func (that *gamePlayService) Play(game *entity.Game, playerX, playerO Player) (string, error) {
	log := that.logger.With("component", "gameplay", "game_id", game.ID)

	for game.IsOngoing() {
		that.renderer.RenderBoard(game.Board)

		player, err := that.currentPlayer(game, playerX, playerO)
		if err != nil {
			return "", err
		}

		cell, err := player.ChooseMove(game)
		if err != nil {
			return "", fmt.Errorf("player %s failed to choose a move: %w", player.Mark(), err)
		}

		if err = game.MakeTurn(player.Mark(), cell); err != nil {
			// A human may type an occupied or out-of-range cell; the board is
			// untouched, so the same player is simply asked again. The bot
			// only ever selects legal moves, so for it this is fatal.
			if !player.IsBot() && isInvalidMove(err) {
				log.Warn("rejected move", "mark", player.Mark(), "cell", cell, "error", err)
				continue
			}

			return "", fmt.Errorf("failed to make turn: %w", err)
		}

		if player.IsBot() {
			log.Info("computer move", "mark", player.Mark(), "cell", cell)
		}
	}

	that.renderer.RenderBoard(game.Board)
	that.renderer.ShowResult(game.Winner)

	log.Info("game finished", "winner", game.Winner, "moves", game.Moves)

	return game.Winner, nil
}

func (that *gamePlayService) currentPlayer(game *entity.Game, playerX, playerO Player) (Player, error) {
	switch game.Turn {
	case playerX.Mark():
		return playerX, nil
	case playerO.Mark():
		return playerO, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMark, game.Turn)
	}
}

func isInvalidMove(err error) bool {
	return errors.Is(err, apperror.ErrInvalidCell) || errors.Is(err, apperror.ErrCellOccupied)
}
