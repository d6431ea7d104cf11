// Package app runs the interactive loop that picks an input file, processes
// it and prints the statistics report.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/afero"

	"addrstats/internal/console"
	"addrstats/internal/report"
	"addrstats/internal/source"
	"addrstats/internal/stats"
)

// State of the Controller loop.
type State int

const (
	AwaitingInput State = iota
	Processing
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case Processing:
		return "processing"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const exitCommand = "exit"

// ErrFileNotFound is returned by Process when the configured path does not
// name a regular file.
var ErrFileNotFound = errors.New("file not found")

// Choice binds a menu key to a configured file and the source that reads it.
type Choice struct {
	Key    string
	Label  string
	Path   string
	Source source.Source
}

// Controller reads menu choices from its input until "exit" or end of input.
type Controller struct {
	fs      afero.Fs
	in      *bufio.Reader
	con     *console.Printer
	choices []Choice
	state   State
	now     func() time.Time
}

// New returns a Controller in the AwaitingInput state that reads commands
// from in.
func New(fsys afero.Fs, in io.Reader, con *console.Printer, choices []Choice) *Controller {
	return &Controller{
		fs:      fsys,
		in:      bufio.NewReader(in),
		con:     con,
		choices: choices,
		state:   AwaitingInput,
		now:     time.Now,
	}
}

// State returns the current loop state.
func (c *Controller) State() State {
	return c.state
}

// Run prints the menu and handles input until the user exits. End of input
// ends the loop without error.
func (c *Controller) Run() error {
	c.greet()
	for c.state != Terminated {
		c.con.Printf("\nYour choice: ")
		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			c.state = Terminated
			return fmt.Errorf("read input: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			c.con.Println()
			c.state = Terminated
			return nil
		}
		c.Handle(line)
		if errors.Is(err, io.EOF) {
			c.state = Terminated
		}
	}
	return nil
}

func (c *Controller) greet() {
	c.con.Println("Welcome to the city address book processor!")
	c.con.Println("Enter:")
	for _, ch := range c.choices {
		c.con.Printf("%s - to process the %s\n", ch.Key, ch.Label)
	}
	c.con.Printf("%s - to quit.\n", exitCommand)
}

// Handle processes one line of user input.
func (c *Controller) Handle(input string) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, exitCommand) {
		c.con.Println("Shutting down.")
		c.state = Terminated
		return
	}

	choice, ok := c.lookup(input)
	if !ok {
		c.con.Errorf("invalid input %q, try again", input)
		return
	}

	tally, elapsed, err := c.Process(choice)
	switch {
	case errors.Is(err, ErrFileNotFound):
		c.con.Errorf("%v, check the configured path", err)
	case err != nil:
		c.con.Errorf("%v", err)
	default:
		report.Write(c.con.Out, tally, elapsed)
	}
}

// Process checks that the choice's file exists and runs its source over it,
// returning the time the source took.
func (c *Controller) Process(choice Choice) (*stats.Tally, time.Duration, error) {
	info, err := c.fs.Stat(choice.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist) || err == nil && info.IsDir():
		return nil, 0, fmt.Errorf("%w: %s", ErrFileNotFound, choice.Path)
	case err != nil:
		return nil, 0, fmt.Errorf("check %s: %w", choice.Path, err)
	}

	c.state = Processing
	defer func() { c.state = AwaitingInput }()

	start := c.now()
	tally, err := choice.Source.Process(choice.Path)
	return tally, c.now().Sub(start), err
}

func (c *Controller) lookup(key string) (Choice, bool) {
	for _, ch := range c.choices {
		if ch.Key == key {
			return ch, true
		}
	}
	return Choice{}, false
}
