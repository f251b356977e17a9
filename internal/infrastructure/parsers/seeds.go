package parsers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseSeeds reads one person ID per line. Blank lines are skipped.
func ParseSeeds(r io.Reader) ([]string, error) {
	var ids []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if id := strings.TrimSpace(scanner.Text()); id != "" {
			ids = append(ids, id)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading seeds: %w", err)
	}
	return ids, nil
}
