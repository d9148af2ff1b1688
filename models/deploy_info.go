package models

import (
	"fmt"
)

// DeployKind identifies the active variant of a [DeployInfo].
type DeployKind string

const (
	DeployUnset     DeployKind = "Unset"
	DeployFile      DeployKind = "File"
	DeployDirectory DeployKind = "Directory"
)

// DeployKinds lists every deploy variant in display order.
var DeployKinds = []DeployKind{DeployUnset, DeployFile, DeployDirectory}

// DeployInfo records where an item is currently deployed for use.
// Tagged union of Unset, File{path} and Directory{path}; the zero value is Unset.
type DeployInfo struct {
	kind DeployKind
	path string
}

func UnsetDeploy() DeployInfo                { return DeployInfo{} }
func FileDeploy(path string) DeployInfo      { return DeployInfo{kind: DeployFile, path: path} }
func DirectoryDeploy(path string) DeployInfo { return DeployInfo{kind: DeployDirectory, path: path} }

func (d DeployInfo) Kind() DeployKind {
	if d.kind == "" {
		return DeployUnset
	}
	return d.kind
}

func (d DeployInfo) Path() string  { return d.path }
func (d DeployInfo) IsUnset() bool { return d.Kind() == DeployUnset }

type deployPathPayload struct {
	Path string `json:"path"`
}

func (d DeployInfo) MarshalJSON() ([]byte, error) {
	switch d.Kind() {
	case DeployUnset:
		return marshalVariant(string(DeployUnset), nil)
	case DeployFile, DeployDirectory:
		return marshalVariant(string(d.kind), deployPathPayload{Path: d.path})
	default:
		return nil, fmt.Errorf("%w: deploy %q", ErrUnknownVariant, d.kind)
	}
}

func (d *DeployInfo) UnmarshalJSON(data []byte) error {
	tag, payload, err := unmarshalVariant(data)
	if err != nil {
		return fmt.Errorf("deploy_info: %w", err)
	}

	switch DeployKind(tag) {
	case DeployUnset:
		if payload != nil {
			return fmt.Errorf("deploy_info: %w: Unset carries no payload", ErrMalformedVariant)
		}
		*d = UnsetDeploy()
	case DeployFile, DeployDirectory:
		var v deployPathPayload
		if err = decodePayload(tag, payload, &v); err != nil {
			return fmt.Errorf("deploy_info: %w", err)
		}
		*d = DeployInfo{kind: DeployKind(tag), path: v.Path}
	default:
		return fmt.Errorf("deploy_info: %w: %q", ErrUnknownVariant, tag)
	}
	return nil
}

// ParseDeployKind converts a selector string to a [DeployKind].
func ParseDeployKind(s string) (DeployKind, error) {
	for _, k := range DeployKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: deploy %q", ErrUnknownVariant, s)
}
