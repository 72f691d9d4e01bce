package schemedef

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/nulleins/msisdn"
)

// LoadJSON parses a JSON object of scheme name to specification string.
func LoadJSON(data []byte) ([]*msisdn.Scheme, error) {
	var defs map[string]string
	if err := gojson.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("schemedef: %w", err)
	}
	return fromMap(defs)
}
