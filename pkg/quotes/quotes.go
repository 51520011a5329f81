// Package quotes loads candidate quote lines from a flat text file and
// selects one at random per post.
package quotes

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
)

// ErrNoQuotes indicates the quotes file is missing or contains no usable
// lines. A batch cannot start without at least one quote.
var ErrNoQuotes = errors.New("no quotes available")

// Load reads a quotes file: UTF-8, one quote per line, blank lines ignored.
// There is no escaping or quoting syntax — a line is a quote verbatim.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoQuotes, err)
	}

	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		if q := strings.TrimSpace(line); q != "" {
			out = append(out, q)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoQuotes, path)
	}
	return out, nil
}

// Pick selects one quote uniformly at random, with replacement — repeats
// across posts in a batch are allowed.
func Pick(quotes []string) string {
	return quotes[rand.IntN(len(quotes))]
}
