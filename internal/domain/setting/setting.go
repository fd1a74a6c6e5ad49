package setting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/talento-hq/talento/internal/shared/biztime"
)

// Settings is the single site-wide configuration document. Exactly one row
// exists; it is created with defaults on first read.
type Settings struct {
	id        uint
	branding  Branding
	homepage  Homepage
	payments  Payments
	system    System
	legal     Legal
	updatedBy *uint
	createdAt time.Time
	updatedAt time.Time
}

// NewDefaultSettings returns the document used when no row exists yet.
func NewDefaultSettings(id uint) *Settings {
	now := biztime.NowUTC()
	return &Settings{
		id:        id,
		branding:  DefaultBranding(),
		homepage:  DefaultHomepage(),
		payments:  DefaultPayments(),
		system:    DefaultSystem(),
		legal:     DefaultLegal(),
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructSettings reconstructs Settings from the persistence layer
func ReconstructSettings(
	id uint,
	branding Branding,
	homepage Homepage,
	payments Payments,
	system System,
	legal Legal,
	updatedBy *uint,
	createdAt, updatedAt time.Time,
) *Settings {
	return &Settings{
		id:        id,
		branding:  branding,
		homepage:  homepage,
		payments:  payments,
		system:    system,
		legal:     legal,
		updatedBy: updatedBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Settings) ID() uint             { return s.id }
func (s *Settings) Branding() Branding   { return s.branding }
func (s *Settings) Homepage() Homepage   { return s.homepage }
func (s *Settings) Payments() Payments   { return s.payments }
func (s *Settings) System() System       { return s.system }
func (s *Settings) Legal() Legal         { return s.legal }
func (s *Settings) UpdatedBy() *uint     { return s.updatedBy }
func (s *Settings) CreatedAt() time.Time { return s.createdAt }
func (s *Settings) UpdatedAt() time.Time { return s.updatedAt }

// SectionValue returns the current value of a section.
func (s *Settings) SectionValue(section Section) (any, error) {
	switch section {
	case SectionBranding:
		return s.branding, nil
	case SectionHomepage:
		return s.homepage, nil
	case SectionPayments:
		return s.payments, nil
	case SectionSystem:
		return s.system, nil
	case SectionLegal:
		return s.legal, nil
	default:
		return nil, ErrUnknownSection
	}
}

// PatchSection decodes a partial JSON object over the current section.
// Fields absent from the patch keep their value; arrays present in the patch
// replace the stored array. Unknown fields are rejected. The patched value is
// returned for validation before the caller persists it.
func (s *Settings) PatchSection(section Section, patch []byte, updatedBy uint) (any, error) {
	var target any
	switch section {
	case SectionBranding:
		v := s.branding
		target = &v
	case SectionHomepage:
		v := s.homepage
		target = &v
	case SectionPayments:
		v := s.payments
		target = &v
	case SectionSystem:
		v := s.system
		target = &v
	case SectionLegal:
		v := s.legal
		target = &v
	default:
		return nil, ErrUnknownSection
	}

	dec := json.NewDecoder(bytes.NewReader(patch))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	s.updatedBy = &updatedBy
	s.updatedAt = biztime.NowUTC()

	switch v := target.(type) {
	case *Branding:
		s.branding = *v
		return s.branding, nil
	case *Homepage:
		s.homepage = *v
		return s.homepage, nil
	case *Payments:
		s.payments = *v
		return s.payments, nil
	case *System:
		s.system = *v
		return s.system, nil
	case *Legal:
		s.legal = *v
		return s.legal, nil
	}
	return nil, ErrUnknownSection
}
