// Source code excerpts for panic reports.
package excerpt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/term"
)

// Lines shown above and below the panic line
const contextLines = 3

// Render writes the source lines around line of file to out, with the panic
// line marked. Output is syntax highlighted if out is a terminal.
// Highlighting failures degrade to plain text; an error comes back only if
// the file itself can't be read or doesn't reach line.
func Render(out io.Writer, file string, line uint) error {
	window, first, err := readWindow(file, line)
	if err != nil {
		return err
	}

	if wantColor(out) {
		highlighted, err := highlight(file, strings.Join(window, "\n"))
		if err == nil {
			highlightedLines := strings.Split(highlighted, "\n")
			if len(highlightedLines) == len(window) {
				window = highlightedLines
			}
		}
	}

	fmt.Fprintln(out, file+":")
	for i, sourceLine := range window {
		number := first + uint(i)
		marker := "  "
		if number == line {
			marker = "> "
		}
		fmt.Fprintf(out, "%s%4d | %s\n", marker, number, sourceLine)
	}
	fmt.Fprintln(out)

	return nil
}

// readWindow returns the lines around line, and the one-based number of the
// first returned line.
func readWindow(file string, line uint) ([]string, uint, error) {
	stream, err := os.Open(file)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = stream.Close()
	}()

	first := uint(1)
	if line > contextLines {
		first = line - contextLines
	}
	last := line + contextLines

	var window []string
	number := uint(0)
	scanner := bufio.NewScanner(stream)
	for scanner.Scan() {
		number++
		if number < first {
			continue
		}
		if number > last {
			break
		}
		window = append(window, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}

	if number < line {
		return nil, 0, fmt.Errorf("%s has %d lines, wanted line %d", file, number, line)
	}

	return window, first, nil
}

func highlight(file string, text string) (string, error) {
	lexer := lexers.Match(file)
	if lexer == nil {
		return "", fmt.Errorf("no lexer matches %s", file)
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	var highlighted strings.Builder
	err = getColorFormatter().Format(&highlighted, styles.Fallback, iterator)
	if err != nil {
		return "", err
	}

	return highlighted.String(), nil
}

func getColorFormatter() chroma.Formatter {
	if os.Getenv("COLORTERM") != "truecolor" && strings.Contains(os.Getenv("TERM"), "256") {
		// Covers "xterm-256color" as used by the macOS Terminal
		return formatters.TTY256
	}
	return formatters.TTY16m
}

func wantColor(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
