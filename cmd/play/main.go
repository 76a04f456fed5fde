package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var errQuit = errors.New("quit")

// main - plays one or more games against a bot in the terminal.
func main() {
	opponent := flag.String("opponent", entity.OpponentHeuristic, "opponent: random, heuristic or network")
	first := flag.String("first", "random", "who moves first: human, bot or random")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	network := flag.String("network", "", "path to a JSON network description")
	verbose := flag.Bool("v", false, "log bot decisions")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := entity.ValidOpponent(*opponent); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var conf config.Bot
	if err := cleanenv.ReadEnv(&conf); err != nil {
		fmt.Fprintf(os.Stderr, "unable to read bot config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		conf.Seed = *seed
	}
	if *network != "" {
		conf.NetworkPath = *network
	}

	bot, _, err := app.NewBot(logger, conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to build bot: %v\n", err)
		os.Exit(1)
	}

	session := &session{
		bot:      bot,
		opponent: *opponent,
		first:    *first,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	if err = session.run(); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type session struct {
	bot      service.BotService
	opponent string
	first    string
	in       *bufio.Reader
	out      io.Writer
}

func (that *session) run() error {
	game := entity.NewGame("local", that.opponent, that.humanSide())

	for {
		if err := that.play(game); err != nil {
			return err
		}

		answer, err := that.prompt("play again? [y/N] ")
		if err != nil {
			return err
		}
		if !strings.HasPrefix(strings.ToLower(answer), "y") {
			return nil
		}

		game.Reset(that.humanSide())
	}
}

func (that *session) humanSide() entity.Side {
	switch that.first {
	case "human":
		return entity.SideFirst
	case "bot":
		return entity.SideSecond
	default:
		return that.bot.DrawHumanSide()
	}
}

func (that *session) play(game *entity.Game) error {
	fmt.Fprintf(that.out, "you play %s (%s) against the %s bot\n",
		glyph(game.HumanSide.Mark()), game.HumanSide, game.Opponent)

	for game.IsOngoing() {
		board, err := game.Position()
		if err != nil {
			return err
		}

		if game.IsBotTurn() {
			move, err := that.bot.MakeMove(board, game.BotSide(), game.Opponent)
			if err != nil {
				return fmt.Errorf("bot failed to choose a move: %w", err)
			}
			if err = tictactoe.MakeTurn(game, game.BotSide(), move); err != nil {
				return fmt.Errorf("bot failed to make turn %s: %w", move, err)
			}
			fmt.Fprintf(that.out, "bot plays %s\n", move)
			continue
		}

		that.render(board, nil)

		move, err := that.readMove()
		if err != nil {
			return err
		}

		if err = tictactoe.MakeTurn(game, game.HumanSide, move); err != nil {
			fmt.Fprintf(that.out, "%v, try again\n", err)
		}
	}

	board, err := game.Position()
	if err != nil {
		return err
	}
	that.render(board, game.WinningLine)

	switch game.Winner {
	case entity.WinnerDraw:
		fmt.Fprintln(that.out, "draw")
	case game.HumanSide.String():
		fmt.Fprintln(that.out, "you win")
	default:
		fmt.Fprintln(that.out, "bot wins")
	}

	return nil
}

func (that *session) readMove() (entity.Move, error) {
	for {
		line, err := that.prompt("your move (row col, q to quit): ")
		if err != nil {
			return entity.Move{}, err
		}

		if line == "q" {
			return entity.Move{}, errQuit
		}

		move, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(that.out, err)
			continue
		}
		return move, nil
	}
}

func (that *session) prompt(text string) (string, error) {
	fmt.Fprint(that.out, text)

	line, err := that.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", errQuit
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// render prints the grid; cells of the winning line are bracketed.
func (that *session) render(board entity.Board, winning []entity.Move) {
	highlighted := make(map[int]bool, len(winning))
	for _, move := range winning {
		highlighted[move.Index()] = true
	}

	fmt.Fprintln(that.out, "    0   1   2")
	for row := 0; row < entity.BoardSize; row++ {
		cells := make([]string, entity.BoardSize)
		for col := 0; col < entity.BoardSize; col++ {
			index := entity.Move{Row: row, Col: col}.Index()
			if highlighted[index] {
				cells[col] = "[" + glyph(board[index]) + "]"
			} else {
				cells[col] = " " + glyph(board[index]) + " "
			}
		}
		fmt.Fprintf(that.out, "%d  %s\n", row, strings.Join(cells, "|"))
	}
}

func glyph(mark entity.Mark) string {
	switch mark {
	case entity.First:
		return "X"
	case entity.Second:
		return "O"
	default:
		return "."
	}
}

// parseMove accepts "row col" or "row,col", 0-indexed.
func parseMove(line string) (entity.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("expected two numbers, got %q", line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("invalid row %q", fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("invalid column %q", fields[1])
	}

	return entity.Move{Row: row, Col: col}, nil
}
