package models

import (
	"fmt"
)

// PlatformKind identifies the active variant of a [Platform].
type PlatformKind string

const (
	PlatformUnknown PlatformKind = "Unknown"
	PlatformSteam   PlatformKind = "Steam"
	PlatformDLSite  PlatformKind = "DLSite"
	PlatformOther   PlatformKind = "Other"
)

// PlatformKinds lists every platform variant in display order.
var PlatformKinds = []PlatformKind{PlatformUnknown, PlatformSteam, PlatformDLSite, PlatformOther}

// Platform is the distribution platform an item was obtained from.
//
// It is a tagged union: exactly one of Unknown, Steam{id}, DLSite{id} or
// Other{name, id?} is active. The zero value is Unknown. Values are built with
// the per-variant constructors so the payload always matches the kind.
type Platform struct {
	kind PlatformKind
	id   string
	name string
}

// UnknownPlatform returns the Unknown variant.
func UnknownPlatform() Platform { return Platform{} }

// SteamPlatform returns the Steam{id} variant.
func SteamPlatform(id string) Platform { return Platform{kind: PlatformSteam, id: id} }

// DLSitePlatform returns the DLSite{id} variant.
func DLSitePlatform(id string) Platform { return Platform{kind: PlatformDLSite, id: id} }

// OtherPlatform returns the Other{name, id?} variant. An empty id means the
// optional id is absent.
func OtherPlatform(name, id string) Platform {
	return Platform{kind: PlatformOther, name: name, id: id}
}

// Kind reports the active variant.
func (p Platform) Kind() PlatformKind {
	if p.kind == "" {
		return PlatformUnknown
	}
	return p.kind
}

// ID returns the store identifier for Steam, DLSite and Other, or "" for Unknown.
func (p Platform) ID() string { return p.id }

// Name returns the platform name of the Other variant, or "".
func (p Platform) Name() string { return p.name }

func (p Platform) IsUnknown() bool { return p.Kind() == PlatformUnknown }
func (p Platform) IsSteam() bool   { return p.Kind() == PlatformSteam }
func (p Platform) IsDLSite() bool  { return p.Kind() == PlatformDLSite }
func (p Platform) IsOther() bool   { return p.Kind() == PlatformOther }

// Label renders the platform for list and detail views.
func (p Platform) Label() string {
	switch p.Kind() {
	case PlatformSteam:
		return fmt.Sprintf("Steam (%s)", p.id)
	case PlatformDLSite:
		return fmt.Sprintf("DLSite (%s)", p.id)
	case PlatformOther:
		if p.id != "" {
			return fmt.Sprintf("Other (%s, ID: %s)", p.name, p.id)
		}
		return fmt.Sprintf("Other (%s)", p.name)
	default:
		return "Unknown"
	}
}

type platformIDPayload struct {
	ID string `json:"id"`
}

type platformOtherPayload struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// MarshalJSON encodes the platform as "Unknown" or {"<Kind>": {...}}.
func (p Platform) MarshalJSON() ([]byte, error) {
	switch p.Kind() {
	case PlatformUnknown:
		return marshalVariant(string(PlatformUnknown), nil)
	case PlatformSteam, PlatformDLSite:
		return marshalVariant(string(p.kind), platformIDPayload{ID: p.id})
	case PlatformOther:
		return marshalVariant(string(PlatformOther), platformOtherPayload{Name: p.name, ID: p.id})
	default:
		return nil, fmt.Errorf("%w: platform %q", ErrUnknownVariant, p.kind)
	}
}

// UnmarshalJSON decodes the externally tagged platform representation.
func (p *Platform) UnmarshalJSON(data []byte) error {
	tag, payload, err := unmarshalVariant(data)
	if err != nil {
		return fmt.Errorf("platform: %w", err)
	}

	switch PlatformKind(tag) {
	case PlatformUnknown:
		if payload != nil {
			return fmt.Errorf("platform: %w: Unknown carries no payload", ErrMalformedVariant)
		}
		*p = UnknownPlatform()
	case PlatformSteam, PlatformDLSite:
		var v platformIDPayload
		if err = decodePayload(tag, payload, &v); err != nil {
			return fmt.Errorf("platform: %w", err)
		}
		*p = Platform{kind: PlatformKind(tag), id: v.ID}
	case PlatformOther:
		var v platformOtherPayload
		if err = decodePayload(tag, payload, &v); err != nil {
			return fmt.Errorf("platform: %w", err)
		}
		*p = OtherPlatform(v.Name, v.ID)
	default:
		return fmt.Errorf("platform: %w: %q", ErrUnknownVariant, tag)
	}
	return nil
}

// ParsePlatformKind converts a selector string to a [PlatformKind].
func ParsePlatformKind(s string) (PlatformKind, error) {
	for _, k := range PlatformKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: platform %q", ErrUnknownVariant, s)
}
