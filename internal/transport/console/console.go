package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const emptyCellSymbol = "."

// Console is the terminal transport: it renders board snapshots for the
// players and reads move indices typed by a human. It never mutates the
// game state itself.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// PromptMove - asks for a cell index in [0,8] and re-prompts until the input
// parses as an integer. Legality against the board is the engine's job.
func (that *Console) PromptMove(mark string) (int, error) {
	for {
		fmt.Fprintf(that.out, "Player %s, enter your move (0-8): ", mark)

		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		cell, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(that.out, "Invalid move! Try again.")
			continue
		}

		return cell, nil
	}
}

// RenderBoard - prints the board as three rows, with dots for empty cells.
func (that *Console) RenderBoard(board [9]string) {
	fmt.Fprintln(that.out)

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			mark := board[3*row+col]
			if mark == entity.EmptyCell {
				mark = emptyCellSymbol
			}
			cells = append(cells, mark)
		}
		fmt.Fprintln(that.out, strings.Join(cells, " "))
	}

	fmt.Fprintln(that.out)
}

// ShowResult - announces the winner, or the draw.
func (that *Console) ShowResult(result string) {
	if result == entity.PlayerTie {
		fmt.Fprintln(that.out, "Draw game!")
		return
	}

	fmt.Fprintf(that.out, "Player %s wins!\n", result)
}

// PromptPlayAgain - asks whether to start another game. Anything but an
// explicit yes, including a closed input stream, counts as no.
func (that *Console) PromptPlayAgain() bool {
	fmt.Fprint(that.out, "Play again? ")

	line, err := that.readLine()
	if err != nil {
		return false
	}

	switch strings.TrimSpace(line) {
	case "y", "Y", "yes", "Yes", "YES":
		return true
	default:
		return false
	}
}

func (that *Console) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return that.in.Text(), nil
}
