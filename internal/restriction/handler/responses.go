package handler

import (
	"credo-tcf/internal/restriction"
	id "credo-tcf/pkg/domain"
)

// RestrictionResponse is one publisher restriction in a response body.
type RestrictionResponse struct {
	PurposeID int    `json:"purpose_id"`
	Type      string `json:"type"`
	VendorIDs []int  `json:"vendor_ids"`
}

// ListResponse is the HTTP response for GET /restrictions.
type ListResponse struct {
	Restrictions []RestrictionResponse `json:"restrictions"`
	Count        int                   `json:"count"`
}

// PutResponse is the HTTP response for PUT /restrictions/{purposeID}.
type PutResponse struct {
	RestrictionResponse
	Replaced bool `json:"replaced"`
}

// FromRestriction converts a domain restriction to its response shape.
func FromRestriction(purposeID id.PurposeID, r *restriction.PublisherRestriction) RestrictionResponse {
	vendors := r.VendorIDs
	if vendors == nil {
		vendors = []int{}
	}
	return RestrictionResponse{
		PurposeID: int(purposeID),
		Type:      r.Type.String(),
		VendorIDs: vendors,
	}
}

// FromEntries converts a listing to its response shape.
func FromEntries(entries []restriction.Entry) *ListResponse {
	out := make([]RestrictionResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromRestriction(e.PurposeID, e.Restriction))
	}
	return &ListResponse{Restrictions: out, Count: len(out)}
}
