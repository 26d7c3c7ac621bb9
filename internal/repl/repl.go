/*
Package repl implements a line-oriented command reader operating on a
segment tree of integers.

Commands are:

	init n v      initialize the array with n copies of v
	set a b c …   initialize the array with [a, b, c, …]
	rsq a b       range sum query for [a, b]
	rmq a b       range minimum query for [a, b]
	rxq a b       range maximum query for [a, b]
	rpq a b       range product query for [a, b]
	up a b v      assign v to every position in [a, b]
	show          print the array as a table
	dot           print the tree in Graphviz DOT format
	help          list the commands
	exit          end the session

Positions are 0-based and ranges are closed.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtree"
)

// T traces to the global command tracer.
func T() tracing.Trace {
	return gtrace.CommandTracer
}

var (
	// ErrUnknownCommand signals an input line starting with an unknown command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage signals a command with missing or malformed arguments.
	ErrUsage = errors.New("usage")
	// ErrNoArray signals a query or update before the array has been initialized.
	ErrNoArray = errors.New("no array; use 'init' or 'set' first")
)

// Aggregators of a session's tree, by index.
const (
	aggSum = iota
	aggMin
	aggMax
	aggProduct
)

// maxInitSize limits the array size for command 'init'. A tree of n values
// with four aggregators takes about 4n·64 bytes, i.e. 256 MB for 2^20 values.
const maxInitSize = 1 << 20

// Session holds the tree a sequence of commands operates on.
type Session struct {
	tree        *segtree.Tree[int64]
	out         io.Writer
	prompt      string
	interactive bool
	width       int
	colors      *palette
}

// Option configures a session.
type Option func(*Session)

// WithPrompt sets the prompt printed before reading a line in interactive mode.
func WithPrompt(prompt string) Option {
	return func(s *Session) { s.prompt = prompt }
}

// WithInteractive switches prompting on or off.
func WithInteractive(on bool) Option {
	return func(s *Session) { s.interactive = on }
}

// WithColor switches colored output on or off. With color on, output is
// colored only if the process writes to a terminal.
func WithColor(on bool) Option {
	return func(s *Session) { s.colors = newPalette(on) }
}

// WithWidth sets the line width used for tables.
func WithWidth(width int) Option {
	return func(s *Session) {
		if width > 10 {
			s.width = width
		}
	}
}

// New creates a session writing its output to out.
func New(out io.Writer, opts ...Option) *Session {
	s := &Session{
		out:    out,
		prompt: "> ",
		width:  65,
		colors: newPalette(true),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init replaces the session's array by values.
func (s *Session) Init(values []int64) error {
	tree, err := segtree.New(values,
		segtree.Aggregator[int64](segtree.Sum[int64]{}),
		segtree.MinInt64(),
		segtree.MaxInt64(),
		segtree.Product[int64]{},
	)
	if err != nil {
		return err
	}
	s.tree = tree
	return nil
}

// Tree returns the session's tree, or nil if no array has been initialized.
func (s *Session) Tree() *segtree.Tree[int64] {
	return s.tree
}

// Run reads commands from in and executes them until 'exit' or the end of
// input. Command errors are reported and do not end the session; Run returns
// an error only if reading or writing fails.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for {
		if s.interactive {
			if _, err := io.WriteString(s.out, s.prompt); err != nil {
				return err
			}
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		quit, err := s.Execute(scanner.Text())
		if err != nil {
			T().Debugf("command failed: %v", err)
			if _, werr := s.colors.err.Fprintf(s.out, "error: %v\n", err); werr != nil {
				return werr
			}
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line. It reports whether the line asked to
// end the session. Empty lines and lines starting with '#' are ignored.
func (s *Session) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	T().P("cmd", cmd).Debugf("%v", args)
	switch cmd {
	case "exit", "quit":
		return true, nil
	case "help":
		s.help()
		return false, nil
	case "init":
		return false, s.cmdInit(args)
	case "set":
		return false, s.cmdSet(args)
	case "rsq":
		return false, s.cmdQuery(cmd, args, aggSum, "Sum")
	case "rmq":
		return false, s.cmdQuery(cmd, args, aggMin, "Min")
	case "rxq":
		return false, s.cmdQuery(cmd, args, aggMax, "Max")
	case "rpq":
		return false, s.cmdQuery(cmd, args, aggProduct, "Product")
	case "up":
		return false, s.cmdUpdate(args)
	case "show":
		return false, s.cmdShow(args)
	case "dot":
		return false, s.cmdDot(args)
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
}

// --- Commands --------------------------------------------------------------

func (s *Session) cmdInit(args []string) error {
	ints, err := parseInts(args, 2, "init n v")
	if err != nil {
		return err
	}
	n, v := ints[0], ints[1]
	if n < 1 || n > maxInitSize {
		return fmt.Errorf("%w: init n v, with 1 ≤ n ≤ %d", ErrUsage, maxInitSize)
	}
	values := make([]int64, n)
	for i := range values {
		values[i] = v
	}
	if err := s.Init(values); err != nil {
		return err
	}
	s.printArray()
	return nil
}

func (s *Session) cmdSet(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: set a b c …", ErrUsage)
	}
	values, err := parseInts(args, len(args), "set a b c …")
	if err != nil {
		return err
	}
	if err := s.Init(values); err != nil {
		return err
	}
	s.printArray()
	return nil
}

func (s *Session) cmdQuery(cmd string, args []string, agg int, name string) error {
	if s.tree == nil {
		return ErrNoArray
	}
	ints, err := parseInts(args, 2, cmd+" a b")
	if err != nil {
		return err
	}
	from, to := int(ints[0]), int(ints[1])
	result, err := s.tree.Query(from, to, agg)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s from %d to %d = ", name, from, to)
	s.colors.result.Fprintf(s.out, "%d", result)
	fmt.Fprintln(s.out)
	return nil
}

func (s *Session) cmdUpdate(args []string) error {
	if s.tree == nil {
		return ErrNoArray
	}
	ints, err := parseInts(args, 3, "up a b v")
	if err != nil {
		return err
	}
	if err := s.tree.Update(int(ints[0]), int(ints[1]), ints[2]); err != nil {
		return err
	}
	s.printArray()
	return nil
}

func (s *Session) cmdDot(args []string) error {
	if s.tree == nil {
		return ErrNoArray
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: dot", ErrUsage)
	}
	segtree.Tree2Dot(s.tree, s.out)
	return nil
}

func (s *Session) help() {
	fmt.Fprint(s.out, `init n v      initialize the array with n copies of v
set a b c …   initialize the array with [a, b, c, …]
rsq a b       range sum query for [a, b]
rmq a b       range minimum query for [a, b]
rxq a b       range maximum query for [a, b]
rpq a b       range product query for [a, b]
up a b v      assign v to every position in [a, b]
show          print the array as a table
dot           print the tree in Graphviz DOT format
help          list the commands
exit          end the session
`)
}

// --- Helpers ---------------------------------------------------------------

// maxPrinted limits the number of array values echoed after a change.
const maxPrinted = 32

// printArray echoes the array as [a,b,c,…].
func (s *Session) printArray() {
	values := s.tree.Values()
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i == maxPrinted {
			fmt.Fprintf(&b, ",… (%d values)", len(values))
			break
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	b.WriteByte(']')
	s.colors.array.Fprintln(s.out, b.String())
}

func parseInts(args []string, count int, usage string) ([]int64, error) {
	if len(args) != count {
		return nil, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	ints := make([]int64, count)
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s (%q is not an integer)", ErrUsage, usage, a)
		}
		ints[i] = v
	}
	return ints, nil
}
