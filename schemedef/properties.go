package schemedef

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nulleins/msisdn"
)

// LoadProperties reads "name=specification" lines. Blank lines and lines
// beginning with '#' or '!' are skipped. Definitions keep file order.
func LoadProperties(r io.Reader) ([]*msisdn.Scheme, error) {
	var schemes []*msisdn.Scheme
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		name, spec, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("schemedef: line %d: expected name=specification", lineNo)
		}
		s, err := msisdn.ParseScheme(strings.TrimSpace(name), spec)
		if err != nil {
			return nil, fmt.Errorf("schemedef: line %d: scheme %q: %w", lineNo, name, err)
		}
		schemes = append(schemes, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("schemedef: %w", err)
	}
	return schemes, nil
}
