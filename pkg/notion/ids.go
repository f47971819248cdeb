package notion

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var trailingID = regexp.MustCompile(`([0-9a-fA-F]{32}|[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})$`)

// NormalizeID accepts a page or block id as a hyphenated UUID, 32 hex
// digits, or a Notion URL ending in the id, and returns the hyphenated form.
func NormalizeID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if u, err := url.Parse(s); err == nil && u.Host != "" {
		s = strings.TrimSuffix(u.Path, "/")
	}
	m := trailingID.FindString(s)
	if m == "" {
		return "", errors.Errorf("invalid notion id %q", raw)
	}
	id, err := uuid.Parse(m)
	if err != nil {
		return "", errors.Wrapf(err, "invalid notion id %q", raw)
	}
	return id.String(), nil
}
