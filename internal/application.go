package application

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
)

var ErrUnknownPlayerKind = errors.New("unknown player kind")

// RunApp - runs the application: builds both players from the configuration
// and plays games on the terminal until the user declines another round.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	cons := console.New(os.Stdin, os.Stdout)

	playerX, err := buildPlayer(conf.PlayerX, entity.PlayerX, cons)
	if err != nil {
		return fmt.Errorf("could not create player %s: %w", entity.PlayerX, err)
	}

	playerO, err := buildPlayer(conf.PlayerO, entity.PlayerO, cons)
	if err != nil {
		return fmt.Errorf("could not create player %s: %w", entity.PlayerO, err)
	}

	gameplay := service.NewGamePlayService(logger, cons)

	for {
		game := entity.NewGame(uuid.New().String())
		log.Info("starting game", "game_id", game.ID, "player_x", conf.PlayerX, "player_o", conf.PlayerO)

		if _, err = gameplay.Play(game, playerX, playerO); err != nil {
			return fmt.Errorf("game %s failed: %w", game.ID, err)
		}

		if !cons.PromptPlayAgain() {
			break
		}
	}

	log.Info("goodbye")

	return nil
}

// buildPlayer - creates a player of the configured kind for the given mark.
func buildPlayer(kind, mark string, cons *console.Console) (service.Player, error) {
	switch kind {
	case config.PlayerKindHuman:
		return service.NewHumanPlayer(mark, cons), nil
	case config.PlayerKindComputer:
		return service.NewBotPlayer(mark), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayerKind, kind)
	}
}
