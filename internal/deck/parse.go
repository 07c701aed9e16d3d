package deck

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a plain text decklist.
//
// Each line is "4 Lightning Bolt", "4x Lightning Bolt" or a bare name counted
// once. Blank lines and lines starting with "//" or "#" are skipped. Repeated
// names are added together.
func Parse(r io.Reader) (map[string]int, error) {
	entries := make(map[string]int)
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}

		qty, name, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries[name] += qty
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading decklist: %w", err)
	}

	return entries, nil
}

func parseLine(line string) (int, string, error) {
	fields := strings.SplitN(line, " ", 2)
	if len(fields) < 2 {
		if _, err := strconv.Atoi(strings.TrimSuffix(fields[0], "x")); err == nil {
			return 0, "", fmt.Errorf("missing card name in %q", line)
		}
		return 1, line, nil
	}

	count := strings.TrimSuffix(fields[0], "x")
	qty, err := strconv.Atoi(count)
	if err != nil {
		// No leading quantity, the whole line is the name
		return 1, line, nil
	}
	if qty <= 0 {
		return 0, "", fmt.Errorf("invalid quantity %d for %q", qty, fields[1])
	}

	name := strings.TrimSpace(fields[1])
	if name == "" {
		return 0, "", fmt.Errorf("missing card name in %q", line)
	}
	return qty, name, nil
}
