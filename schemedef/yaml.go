package schemedef

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nulleins/msisdn"
)

// LoadYAML parses a YAML mapping of scheme name to specification string.
func LoadYAML(data []byte) ([]*msisdn.Scheme, error) {
	var defs map[string]string
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("schemedef: %w", err)
	}
	return fromMap(defs)
}
