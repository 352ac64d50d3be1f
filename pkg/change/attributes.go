package change

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/utils"
)

// Attributes are the pre-parsed values of a changelog entry, keyed by
// attribute name. The text content of an entry, if any, is stored under the
// change's text attribute (e.g. "sql").
type Attributes map[string]string

// Get returns the value of key, or an empty string.
func (a Attributes) Get(key string) string {
	return a[key]
}

// Bool parses key as a boolean. Missing values are false.
func (a Attributes) Bool(key string) (bool, error) {
	return a.BoolDefault(key, false)
}

// BoolDefault parses key as a boolean, returning def when the key is missing.
func (a Attributes) BoolDefault(key string, def bool) (bool, error) {
	v, ok := a[key]
	if !ok {
		return def, nil
	}

	b, err := utils.ParseBoolean(v)
	if err != nil {
		return false, errors.Wrapf(err, "attribute %s", key)
	}

	return b, nil
}

// Check returns an error naming every attribute not in allowed.
func (a Attributes) Check(allowed ...string) error {
	known := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		known[k] = struct{}{}
	}

	var unknown []string
	for k := range a {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	return errors.Errorf("unexpected attributes: %s", strings.Join(unknown, ", "))
}
