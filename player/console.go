package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"othello/experiments/metrics"
	"othello/game"
	"strings"
)

var ErrQuit = errors.New("player quit")

// Console is a human player reading moves from in and writing prompts to out.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	hints bool
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// FindMove prompts until a legal move is entered. Malformed or illegal input
// is reported and asked again.
func (c *Console) FindMove(b game.Board, tile game.Tile) (game.Position, metrics.SearchMetric, error) {
	moves, _, _ := b.ValidMoves(tile)
	c.show(&b, tile, moves)

	for {
		fmt.Fprintf(c.out, "%s to move (e.g. %s, hint, quit): ", tile, moves[0])
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return game.Position{}, metrics.SearchMetric{}, ErrQuit
		}

		input := strings.ToLower(strings.TrimSpace(c.in.Text()))
		switch input {
		case "":
			continue
		case "quit", "exit":
			return game.Position{}, metrics.SearchMetric{}, ErrQuit
		case "hint":
			c.hints = !c.hints
			c.show(&b, tile, moves)
			continue
		}

		pos, err := game.ParsePosition(input)
		if err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		}
		if _, ok := b.IsValidMove(tile, pos.X, pos.Y); !ok {
			fmt.Fprintf(c.out, "%s is not a legal move, legal moves: %s\n", pos, join(moves))
			continue
		}
		return pos, metrics.SearchMetric{}, nil
	}
}

func (c *Console) show(b *game.Board, tile game.Tile, moves []game.Position) {
	var hints []game.Position
	if c.hints {
		hints = moves
	}
	score := b.Score()
	fmt.Fprintf(c.out, "\n%s", b.Render(hints))
	fmt.Fprintf(c.out, "black %d, white %d\n", score.Black, score.White)
	if c.hints {
		fmt.Fprintf(c.out, "legal moves for %s: %s\n", tile, join(moves))
	}
}

func join(moves []game.Position) string {
	s := make([]string, len(moves))
	for i, m := range moves {
		s[i] = m.String()
	}
	return strings.Join(s, " ")
}
