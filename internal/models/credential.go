package models

import "gopkg.in/yaml.v3"

// Credential is an optional provider secret. The zero value means "not
// configured"; an empty string in YAML is treated the same way.
type Credential struct {
	value string
}

// NewCredential wraps a secret. Blank input yields an unset credential.
func NewCredential(value string) Credential {
	return Credential{value: value}
}

// IsSet reports whether a secret is present.
func (c Credential) IsSet() bool {
	return c.value != ""
}

// Value returns the raw secret.
func (c Credential) Value() string {
	return c.value
}

// String keeps secrets out of logs.
func (c Credential) String() string {
	if !c.IsSet() {
		return "<unset>"
	}
	return "<redacted>"
}

func (c *Credential) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	c.value = raw
	return nil
}

func (c Credential) MarshalYAML() (any, error) {
	return c.String(), nil
}
