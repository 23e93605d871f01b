package restriction

import (
	"slices"
	"strings"

	id "credo-tcf/pkg/domain"
	dErrors "credo-tcf/pkg/domain-errors"
)

// RestrictionType is the publisher's override for a purpose. Values match the
// two-bit restriction type of a TCF publisher restriction entry.
type RestrictionType int

const (
	RestrictionNotAllowed                RestrictionType = 0
	RestrictionRequireConsent            RestrictionType = 1
	RestrictionRequireLegitimateInterest RestrictionType = 2
	RestrictionUndefined                 RestrictionType = 3
)

var restrictionTypeNames = map[RestrictionType]string{
	RestrictionNotAllowed:                "not_allowed",
	RestrictionRequireConsent:            "require_consent",
	RestrictionRequireLegitimateInterest: "require_legitimate_interest",
	RestrictionUndefined:                 "undefined",
}

// ParseRestrictionType constructs a RestrictionType from its name.
//
// Errors: returns CodeInvalidInput for empty or unknown names.
func ParseRestrictionType(s string) (RestrictionType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "restriction type cannot be empty")
	}
	for t, name := range restrictionTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, dErrors.New(dErrors.CodeInvalidInput, "unknown restriction type "+s)
}

func (t RestrictionType) String() string {
	if name, ok := restrictionTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// PublisherRestriction is a publisher's override of vendors' default
// permissions for one purpose. The index treats it as an opaque value.
type PublisherRestriction struct {
	Type      RestrictionType
	VendorIDs []int
}

// Clone returns a copy that shares no memory with r.
func (r *PublisherRestriction) Clone() *PublisherRestriction {
	if r == nil {
		return nil
	}
	return &PublisherRestriction{Type: r.Type, VendorIDs: slices.Clone(r.VendorIDs)}
}

// Entry pairs a restriction with the purpose it governs.
type Entry struct {
	PurposeID   id.PurposeID
	Restriction *PublisherRestriction
}
