package diglib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CollectTargets returns a list of targets in the order they were
// given. If args are present, they are used. Otherwise each non-empty
// line of stdin is a target.
func CollectTargets(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return collectArgs(args), nil
	}

	return collectLines(stdin)
}

func collectArgs(args []string) []string {
	rv := make([]string, 0, len(args))

	for _, v := range args {
		if v = strings.TrimSpace(v); v != "" {
			rv = append(rv, v)
		}
	}

	return rv
}

func collectLines(stdin io.Reader) ([]string, error) {
	rv := []string{}

	if stdin == nil {
		return rv, nil
	}

	scanner := bufio.NewScanner(stdin)

	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			rv = append(rv, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read input: %w", err)
	}

	return rv, nil
}
