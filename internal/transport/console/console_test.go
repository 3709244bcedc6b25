package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestConsole_PromptMove(t *testing.T) {
	t.Run("Parses a move", func(t *testing.T) {
		// Given: a console fed a single valid answer
		out := &bytes.Buffer{}
		cons := New(strings.NewReader("4\n"), out)

		// When: a move is prompted
		cell, err := cons.PromptMove(entity.PlayerX)

		// Then: the typed index is returned and the prompt names the player
		require.NoError(t, err)
		require.Equal(t, 4, cell)
		assert.Contains(t, out.String(), "Player X, enter your move (0-8):")
	})

	t.Run("Re-prompts on unparseable input", func(t *testing.T) {
		// Given: garbage before the real answer
		out := &bytes.Buffer{}
		cons := New(strings.NewReader("abc\n\n7\n"), out)

		// When: a move is prompted
		cell, err := cons.PromptMove(entity.PlayerO)

		// Then: the console retried until it got a number
		require.NoError(t, err)
		require.Equal(t, 7, cell)
		assert.Contains(t, out.String(), "Invalid move! Try again.")
	})

	t.Run("EOF is reported", func(t *testing.T) {
		// Given: an already exhausted input stream
		cons := New(strings.NewReader(""), &bytes.Buffer{})

		// When: a move is prompted
		_, err := cons.PromptMove(entity.PlayerX)

		// Then: the caller learns the input is gone
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestConsole_RenderBoard(t *testing.T) {
	// Given: a board with a few marks placed
	out := &bytes.Buffer{}
	cons := New(strings.NewReader(""), out)

	board := [9]string{
		entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
		entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
		entity.EmptyCell, entity.EmptyCell, entity.PlayerX,
	}

	// When: the board is rendered
	cons.RenderBoard(board)

	// Then: rows come out top to bottom with dots for empty cells
	require.Equal(t, "\nX . .\n. O .\n. . X\n\n", out.String())
}

func TestConsole_ShowResult(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		out := &bytes.Buffer{}
		cons := New(strings.NewReader(""), out)

		cons.ShowResult(entity.PlayerO)

		assert.Equal(t, "Player O wins!\n", out.String())
	})

	t.Run("Draw", func(t *testing.T) {
		out := &bytes.Buffer{}
		cons := New(strings.NewReader(""), out)

		cons.ShowResult(entity.PlayerTie)

		assert.Equal(t, "Draw game!\n", out.String())
	})
}

func TestConsole_PromptPlayAgain(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		answer bool
	}{
		{name: "yes", input: "yes\n", answer: true},
		{name: "short yes", input: "y\n", answer: true},
		{name: "no", input: "n\n", answer: false},
		{name: "anything else", input: "sure\n", answer: false},
		{name: "closed input", input: "", answer: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cons := New(strings.NewReader(tt.input), &bytes.Buffer{})

			assert.Equal(t, tt.answer, cons.PromptPlayAgain())
		})
	}
}
