package main

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
)

type commandKind int

const (
	cmdReroll commandKind = iota
	cmdPick
	cmdScores
	cmdHelp
	cmdQuit
	cmdReset
)

type command struct {
	kind commandKind
	// 0-based die positions for cmdReroll, deduplicated.
	positions []int
}

var errInvalidCommand = errors.New("invalid command")

var rerollPattern = regexp.MustCompile(`^r\s+([\d\s]+)$`)

var keywordCommands = map[string]commandKind{
	"p":      cmdPick,
	"pick":   cmdPick,
	"s":      cmdScores,
	"scores": cmdScores,
	"h":      cmdHelp,
	"help":   cmdHelp,
	"q":      cmdQuit,
	"quit":   cmdQuit,
	"reset":  cmdReset,
}

func parseCommand(line string) (command, error) {
	line = strings.TrimSpace(line)
	if m := rerollPattern.FindStringSubmatch(line); m != nil {
		return command{kind: cmdReroll, positions: parsePositions(m[1])}, nil
	}

	kind, ok := keywordCommands[line]
	if !ok {
		return command{}, errors.Wrapf(errInvalidCommand, "%q", line)
	}
	return command{kind: kind}, nil
}

// parsePositions converts the 1-based die numbers typed by the player
// into 0-based positions. Numbers outside 1-5 and repeats are dropped.
func parsePositions(s string) []int {
	var seen [6]bool
	var result []int
	for _, field := range strings.Fields(s) {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > 5 {
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n-1)
	}
	return result
}

// parsePick parses a 1-based menu selection.
func parsePick(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errors.Wrapf(err, "not a number: %q", line)
	}
	return n, nil
}

type lineReader struct {
	rdr *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{rdr: bufio.NewReader(r)}
}

// readLine returns the next trimmed line of input. io.EOF is only
// returned once the input is exhausted; any other read failure is
// logged and reported as an empty line.
func (lr *lineReader) readLine() (string, error) {
	line, err := lr.rdr.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", io.EOF
			}
		} else {
			glog.Warningf("Unable to read input: %v", err)
			return "", nil
		}
	}
	return strings.TrimSpace(line), nil
}
