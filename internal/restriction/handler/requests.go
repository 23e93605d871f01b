package handler

import (
	"credo-tcf/internal/restriction"
	dErrors "credo-tcf/pkg/domain-errors"
	"credo-tcf/pkg/platform/dedupe"
)

// maxVendorIDs bounds the vendor list of a single restriction.
const maxVendorIDs = 4096

// PutRequest is the HTTP request body for PUT /restrictions/{purposeID}.
type PutRequest struct {
	Type      string `json:"type"`
	VendorIDs []int  `json:"vendor_ids"`

	// Parsed values (populated by Validate)
	parsedType restriction.RestrictionType
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *PutRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.VendorIDs) > maxVendorIDs {
		return dErrors.New(dErrors.CodeValidation, "too many vendor_ids")
	}

	rt, err := restriction.ParseRestrictionType(r.Type)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "invalid type")
	}
	r.parsedType = rt

	for _, v := range r.VendorIDs {
		if v <= 0 {
			return dErrors.New(dErrors.CodeValidation, "vendor_ids must be positive")
		}
	}
	r.VendorIDs = dedupe.Values(r.VendorIDs)
	return nil
}

// ToRestriction builds the domain value from a validated request.
func (r *PutRequest) ToRestriction() *restriction.PublisherRestriction {
	return &restriction.PublisherRestriction{Type: r.parsedType, VendorIDs: r.VendorIDs}
}
