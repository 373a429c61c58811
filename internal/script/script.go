// Package script runs a list of session ops read from text, one per line.
//
// Grammar:
//
//	check <id>
//	uncheck <id>
//	close <id>
//	water
//	water reset
//	list
//
// Blank lines and lines starting with # are ignored.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wellness/internal/output"
	"wellness/internal/session"
)

// Kind identifies an op.
type Kind int

const (
	Check Kind = iota
	Uncheck
	Close
	Water
	WaterReset
	List
)

func (k Kind) String() string {
	switch k {
	case Check:
		return "check"
	case Uncheck:
		return "uncheck"
	case Close:
		return "close"
	case Water:
		return "water"
	case WaterReset:
		return "water reset"
	case List:
		return "list"
	}
	return "unknown"
}

// Op is one parsed line.
type Op struct {
	Kind Kind
	ID   int // only for Check, Uncheck, Close
	Line int
}

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads ops from r.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		op, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: err.Error()}
		}
		op.Line = lineNo
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ops, nil
}

func parseLine(line string) (Op, error) {
	fields := strings.Fields(line)
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "check", "uncheck", "close":
		if len(args) != 1 {
			return Op{}, fmt.Errorf("%s needs exactly one task id", verb)
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return Op{}, fmt.Errorf("invalid task id: %s", args[0])
		}
		kind := map[string]Kind{"check": Check, "uncheck": Uncheck, "close": Close}[verb]
		return Op{Kind: kind, ID: id}, nil
	case "water":
		if len(args) == 0 {
			return Op{Kind: Water}, nil
		}
		if len(args) == 1 && strings.ToLower(args[0]) == "reset" {
			return Op{Kind: WaterReset}, nil
		}
		return Op{}, fmt.Errorf("unexpected argument to water: %s", strings.Join(args, " "))
	case "list":
		if len(args) != 0 {
			return Op{}, fmt.Errorf("list takes no arguments")
		}
		return Op{Kind: List}, nil
	}
	return Op{}, fmt.Errorf("unknown op: %s", fields[0])
}

// Apply runs ops against s in order. List ops print the current tasks to out.
func Apply(s *session.Session, ops []Op, out io.Writer) {
	for _, op := range ops {
		switch op.Kind {
		case Check:
			s.SetChecked(op.ID, true)
		case Uncheck:
			s.SetChecked(op.ID, false)
		case Close:
			s.Close(op.ID)
		case Water:
			s.AddWater()
		case WaterReset:
			s.ResetWater()
		case List:
			output.FormatTasks(out, s.Tasks())
			fmt.Fprintln(out, output.ListSeparator)
		}
	}
}
