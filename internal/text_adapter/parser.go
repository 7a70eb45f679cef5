package text_adapter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/specialistvlad/jobseq/internal/config"
)

// ErrInvalidFormat is returned when a non-empty input holds no declaration.
var ErrInvalidFormat = errors.New("must be empty or in the `job => dependency` format")

// declRegex matches a single `job => dependency` declaration.
var declRegex = regexp.MustCompile(`(\w+)[ \t]*=>[ \t]*(\w*)`)

// Parse scans input for declarations and returns them in order. Text around
// declarations is ignored. Source is recorded on every job for diagnostics.
func Parse(source, input string) (*config.Model, error) {
	model := config.NewModel()

	normalized := strings.ReplaceAll(input, `\n`, "\n")
	if strings.TrimSpace(normalized) == "" {
		return model, nil
	}

	matches := declRegex.FindAllStringSubmatch(normalized, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrInvalidFormat)
	}

	for _, m := range matches {
		model.Add(m[1], m[2], source)
	}
	return model, nil
}
