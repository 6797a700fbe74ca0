package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/sim"
	"github.com/sheikhrachel/go-life/utils"
)

const helpText = `Commands:
  get x y          print whether the cell at (x, y) is alive
  set x y true|false  set the cell at (x, y)
  next             advance one generation
  run n            advance n generations
  play n           animate up to n generations
  print            render the board
  population       print the number of living cells
  clear            remove all living cells
  random d         randomize the board with density d (0..1)
  glider x y       seed a glider at (x, y)
  blinker x y      seed a blinker at (x, y)
  stats            print run statistics
  help             show this text
  exit             quit`

// Repl drives the interactive command loop over a board
type Repl struct {
	board      *model.Board
	config     utils.Config
	pool       *model.BoardPool
	renderer   *model.TerminalRenderer
	stats      *utils.Stats
	out        io.Writer
	generation int
}

// New creates a repl that writes all output, including rendered boards
// and the run progress bar, to out
func New(board *model.Board, config utils.Config, pool *model.BoardPool, out io.Writer) *Repl {
	return &Repl{
		board:    board,
		config:   config,
		pool:     pool,
		renderer: &model.TerminalRenderer{Out: out},
		stats:    utils.NewStats(),
		out:      out,
	}
}

// Board returns the current board state
func (r *Repl) Board() *model.Board {
	return r.board
}

// Run reads commands until exit or EOF
func (r *Repl) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(r.out, "> ")
	for scanner.Scan() {
		if r.Execute(scanner.Text()) {
			return
		}
		fmt.Fprint(r.out, "> ")
	}
}

// Execute runs a single command line, returning true when the loop should stop
func (r *Repl) Execute(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	var err error
	switch fields[0] {
	case "get":
		err = r.getCmd(fields[1:])
	case "set":
		err = r.setCmd(fields[1:])
	case "next":
		r.advance(1)
	case "run":
		err = r.runCmd(fields[1:])
	case "play":
		err = r.playCmd(fields[1:])
	case "print":
		r.printBoard()
	case "population":
		fmt.Fprintln(r.out, r.board.Population())
	case "clear":
		r.board.Clear()
	case "random":
		err = r.randomCmd(fields[1:])
	case "glider":
		err = r.seedCmd(fields[1:], r.board.AddGlider)
	case "blinker":
		err = r.seedCmd(fields[1:], r.board.AddOscillator)
	case "stats":
		r.printStats()
	case "help":
		fmt.Fprintln(r.out, helpText)
	case "exit":
		return true
	default:
		fmt.Fprintln(r.out, helpText)
	}

	if err != nil {
		fmt.Fprintln(r.out, "error:", err)
	}
	return false
}

func (r *Repl) getCmd(args []string) error {
	x, y, err := parseCoords(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, r.board.Get(x, y))
	return nil
}

func (r *Repl) setCmd(args []string) error {
	if len(args) != 3 {
		return errors.Errorf("[setCmd] expected: set x y true|false, got: %+v", args)
	}
	x, y, err := parseCoords(args[:2])
	if err != nil {
		return err
	}
	alive, err := strconv.ParseBool(args[2])
	if err != nil {
		return errors.Wrapf(err, "[setCmd] invalid cell state: %+v", args[2])
	}
	r.board.Set(x, y, alive)
	return nil
}

func (r *Repl) runCmd(args []string) error {
	n, err := parseCount(args)
	if err != nil {
		return err
	}

	// Long runs get a progress bar; short ones finish before it would
	// be worth drawing.
	if n >= r.config.ProgressThreshold {
		bar := pb.New(n).SetWriter(r.out).Start()
		for i := 0; i < n; i++ {
			r.advance(1)
			bar.Increment()
		}
		bar.Finish()
		return nil
	}

	r.advance(n)
	return nil
}

func (r *Repl) playCmd(args []string) error {
	n, err := parseCount(args)
	if err != nil {
		return err
	}

	var (
		tracker       utils.StagnationTracker
		stagnantCount int
	)
	for i := 0; i < n; i++ {
		frameStart := time.Now()

		r.advance(1)
		r.printBoard()

		population := r.board.Population()
		r.stats.Update(r.generation, population, time.Since(frameStart))
		fmt.Fprintf(r.out, "Gen: %d | Living: %d\n\n", r.generation, population)

		if population == 0 {
			fmt.Fprintln(r.out, "Extinct")
			return nil
		}
		if tracker.Observe(r.board.StateHash()) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		if stagnantCount >= r.config.StagnationThreshold {
			fmt.Fprintln(r.out, "Stagnation detected")
			return nil
		}

		time.Sleep(r.config.FrameRate)
	}
	return nil
}

func (r *Repl) randomCmd(args []string) error {
	if len(args) != 1 {
		return errors.Errorf("[randomCmd] expected: random d, got: %+v", args)
	}
	density, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.Wrapf(err, "[randomCmd] invalid density: %+v", args[0])
	}
	if density < 0 || density > 1 {
		return errors.Errorf("[randomCmd] density must be in [0, 1], got: %+v", density)
	}
	r.board.Randomize(density)
	return nil
}

func (r *Repl) seedCmd(args []string, seed func(x, y int)) error {
	x, y, err := parseCoords(args)
	if err != nil {
		return err
	}
	seed(x, y)
	return nil
}

// advance steps the board n generations, recycling intermediate boards
func (r *Repl) advance(n int) {
	next, err := sim.Run(r.board, n, r.config, r.pool)
	if err != nil {
		// parseCount already rejected negative counts
		fmt.Fprintln(r.out, "error:", err)
		return
	}
	if next != r.board {
		model.BoardToPool(r.board, r.pool)
	}
	r.board = next
	r.generation += n
}

// printBoard renders the bounding box of the candidate cells, living
// cells plus their neighbors, so patterns have a one-cell margin
func (r *Repl) printBoard() {
	min, max, ok := model.BoundsOf(sim.CandidateCells(r.board))
	if !ok {
		fmt.Fprintln(r.out, "(empty board)")
		return
	}
	r.renderer.DisplayRegion(r.board, min, max)
}

func (r *Repl) printStats() {
	fmt.Fprintf(r.out, "Gen: %d | Living: %d\n", r.generation, r.board.Population())
	fmt.Fprintf(r.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		r.stats.GenerationsPerSecond, r.stats.AveragePopulation,
		time.Since(r.stats.StartTime).Seconds())
}

func parseCoords(args []string) (x, y int, err error) {
	if len(args) != 2 {
		return 0, 0, errors.Errorf("[parseCoords] expected 2 coordinates, got: %+v", args)
	}
	if x, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, errors.Wrapf(err, "[parseCoords] invalid x coordinate: %+v", args[0])
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, errors.Wrapf(err, "[parseCoords] invalid y coordinate: %+v", args[1])
	}
	return x, y, nil
}

func parseCount(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.Errorf("[parseCount] expected a generation count, got: %+v", args)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrapf(err, "[parseCount] invalid generation count: %+v", args[0])
	}
	if n < 0 {
		return 0, errors.Errorf("[parseCount] generation count must be non-negative, got: %+v", n)
	}
	return n, nil
}
