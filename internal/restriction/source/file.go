// Package source reads publisher restriction declarations from YAML.
//
// A declaration file lists one entry per purpose:
//
//	restrictions:
//	  - purpose_id: 2
//	    type: require_consent
//	    vendor_ids: [1, 8, 32]
//
// Entries are returned in file order. Repeated vendor IDs within an entry are
// collapsed. Duplicate purposes are not rejected here; the consumer decides
// how to treat them. An empty file, or one without a restrictions key, is
// rejected; "restrictions: []" declares that no purpose is restricted.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"credo-tcf/internal/restriction"
	id "credo-tcf/pkg/domain"
	dErrors "credo-tcf/pkg/domain-errors"
	"credo-tcf/pkg/platform/dedupe"
)

type file struct {
	Restrictions *[]declaration `yaml:"restrictions"`
}

type declaration struct {
	PurposeID *int   `yaml:"purpose_id"`
	Type      string `yaml:"type"`
	VendorIDs []int  `yaml:"vendor_ids"`
}

// LoadFile reads and decodes the declaration file at path.
func LoadFile(path string) ([]restriction.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to open restrictions file")
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses declarations from r. Unknown fields are rejected.
func Decode(r io.Reader) ([]restriction.Entry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc file
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dErrors.New(dErrors.CodeValidation, "restrictions file is empty")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "failed to parse restrictions file")
	}

	if doc.Restrictions == nil {
		return nil, dErrors.New(dErrors.CodeValidation, "restrictions key is required")
	}

	entries := make([]restriction.Entry, 0, len(*doc.Restrictions))
	for i, d := range *doc.Restrictions {
		e, err := d.toEntry()
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("restriction %d", i))
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (d declaration) toEntry() (restriction.Entry, error) {
	if d.PurposeID == nil {
		return restriction.Entry{}, dErrors.New(dErrors.CodeInvalidInput, "purpose_id is required")
	}
	purposeID, err := id.NewPurposeID(*d.PurposeID)
	if err != nil {
		return restriction.Entry{}, err
	}
	rt, err := restriction.ParseRestrictionType(d.Type)
	if err != nil {
		return restriction.Entry{}, err
	}
	for _, v := range d.VendorIDs {
		if v <= 0 {
			return restriction.Entry{}, dErrors.New(dErrors.CodeInvalidInput, "vendor ids must be positive")
		}
	}
	return restriction.Entry{
		PurposeID:   purposeID,
		Restriction: &restriction.PublisherRestriction{Type: rt, VendorIDs: dedupe.Values(d.VendorIDs)},
	}, nil
}
