package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	dm "checkers-engine/draughtsmg"
	"checkers-engine/engine"
)

const defaultDepth = 9

type state struct {
	board   dm.Board
	eng     *engine.Engine
	history []dm.Move
}

func newState() *state {
	return &state{
		board: dm.Initial(),
		eng:   engine.NewEngine(engine.Options{}),
	}
}

// parseLimit reads an optional "timed MS" or "depth D" suffix.
func parseLimit(args []string) (engine.Limit, error) {
	if len(args) == 0 {
		return engine.DepthLimit(defaultDepth), nil
	}
	if len(args) != 2 {
		return engine.Limit{}, fmt.Errorf("expected 'timed MS' or 'depth D'")
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n <= 0 {
		return engine.Limit{}, fmt.Errorf("%q is not a positive number", args[1])
	}
	switch args[0] {
	case "timed":
		return engine.TimeLimit(time.Duration(n) * time.Millisecond), nil
	case "depth":
		if n > engine.MaxDepth {
			return engine.Limit{}, fmt.Errorf("depth too large, pick at most %d", engine.MaxDepth)
		}
		return engine.DepthLimit(int8(n)), nil
	}
	return engine.Limit{}, fmt.Errorf("unknown limit kind %q", args[0])
}

func (s *state) execute(fields []string) bool {
	switch fields[0] {
	case "print":
		fmt.Print(s.board.Pretty())

	case "generate":
		moves := dm.GenerateMoves(s.board)
		if len(moves) == 0 {
			fmt.Println("no valid actions")
			return true
		}
		texts := make([]string, len(moves))
		for i, m := range moves {
			texts[i] = m.String()
		}
		fmt.Println(strings.Join(texts, ", "))

	case "take":
		if len(fields) != 2 {
			fmt.Println("usage: take POS1xPOS2x...")
			return true
		}
		m, err := dm.ParseMovetext(fields[1])
		if err != nil {
			fmt.Println("Error:", err)
			return true
		}
		next, err := dm.TakeAction(s.board, m)
		if err != nil {
			fmt.Println("Error:", err)
			return true
		}
		s.board = next
		s.history = append(s.history, m)

	case "validate":
		if len(fields) != 2 {
			fmt.Println("usage: validate POS1xPOS2x...")
			return true
		}
		m, err := dm.ParseMovetext(fields[1])
		if err != nil {
			fmt.Println("Error:", err)
			return true
		}
		if slices.Contains(dm.GenerateMoves(s.board), m) {
			fmt.Println("Ok")
		} else {
			fmt.Println("Error:", dm.ErrInvalidMove)
		}

	case "best":
		limit, err := parseLimit(fields[1:])
		if err != nil {
			fmt.Println("Error:", err)
			return true
		}
		move, _, err := s.eng.BestMove(s.board, limit)
		if err != nil {
			fmt.Println("Error:", err)
			return true
		}
		fmt.Println(move)

	case "evaluate":
		limit, err := parseLimit(fields[1:])
		if err != nil {
			fmt.Println("Error:", err)
			return true
		}
		score, err := s.eng.Evaluate(s.board, limit)
		if err != nil {
			fmt.Println("Error:", err)
			return true
		}
		fmt.Println(score)

	case "fen":
		if len(fields) != 2 {
			fmt.Println("usage: fen STRING")
			return true
		}
		b, err := dm.ParseFEN(fields[1])
		if err != nil {
			fmt.Println("Error:", err)
			return true
		}
		s.board = b
		s.history = nil

	case "printfen":
		fmt.Println(s.board.ToFEN())

	case "gamestate":
		fmt.Println(s.board.GameState())

	case "turn":
		fmt.Println(s.board.Turn())

	case "history":
		if len(s.history) == 0 {
			fmt.Println("no moves taken yet")
			return true
		}
		texts := make([]string, len(s.history))
		for i, m := range s.history {
			texts[i] = m.String()
		}
		fmt.Println(strings.Join(texts, ", "))

	case "reset":
		s.board = dm.Initial()
		s.history = nil
		s.eng.Reset()

	case "exit":
		return false

	default:
		fmt.Printf("unknown command %q\n", fields[0])
	}
	return true
}

func main() {
	st := newState()
	reader := bufio.NewScanner(os.Stdin)

	counter := 0
	for {
		fmt.Printf("[%d]: ", counter)
		if !reader.Scan() {
			break
		}
		line := strings.TrimSpace(reader.Text())
		if line == "" {
			continue
		}
		if !st.execute(strings.Fields(line)) {
			break
		}
		counter++
	}
	os.Exit(0)
}
