package dto

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/insurely/sales-service/internal/domain"
)

// ContentTypeHAL is the media type for hypermedia responses.
const ContentTypeHAL = "application/hal+json"

// Link is a single hypermedia link.
type Link struct {
	Href string `json:"href"`
}

// Links maps link relations to their targets.
type Links map[string]Link

// Collection is the envelope for collection responses: items live under
// _embedded keyed by the plural entity name, and the collection carries a
// self link.
type Collection struct {
	Embedded map[string]any `json:"_embedded"`
	Links    Links          `json:"_links"`
}

// NewCollection builds a collection envelope for the given plural rel.
// items must be a slice; an empty slice renders as [] rather than null.
func NewCollection(plural string, items any) *Collection {
	return &Collection{
		Embedded: map[string]any{plural: items},
		Links:    Links{"self": {Href: "/" + plural}},
	}
}

// ItemPath renders the canonical item path for a collection member.
func ItemPath(plural string, id uuid.UUID) string {
	return "/" + plural + "/" + id.String()
}

// ParseRef extracts the identifier from a reference URI like
// "/customers/{id}" or an absolute form of the same path. The reference must
// point into the expected collection. A URI that cannot be parsed maps to a
// malformed-request error, which the transport layer renders as 400.
func ParseRef(raw, plural string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, domain.NewMalformedError(fmt.Sprintf("empty %s reference", plural))
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewMalformedError(fmt.Sprintf("invalid %s reference %q", plural, raw))
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] != plural {
		return uuid.Nil, domain.NewMalformedError(
			fmt.Sprintf("reference %q does not point into /%s", raw, plural),
		)
	}

	id, err := uuid.Parse(segments[len(segments)-1])
	if err != nil {
		return uuid.Nil, domain.NewMalformedError(
			fmt.Sprintf("reference %q does not carry a valid identifier", raw),
		)
	}

	return id, nil
}

// dateOrNil maps a zero date to nil so it renders as JSON null.
func dateOrNil(d domain.Date) *domain.Date {
	if d.IsZero() {
		return nil
	}

	return &d
}
