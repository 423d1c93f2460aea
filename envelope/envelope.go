// SPDX-License-Identifier: MIT

package envelope

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/matcipher/cipher"
	"github.com/segmentio/ksuid"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNilEnvelope is returned when a nil *Envelope is opened or marshalled.
	ErrNilEnvelope = errors.New("envelope: nil envelope")

	// ErrBadID indicates an ID that is not a valid KSUID.
	ErrBadID = errors.New("envelope: invalid id")

	// ErrDimMismatch indicates an envelope sealed with a different key size.
	ErrDimMismatch = errors.New("envelope: key dimension mismatch")
)

// Envelope is a sealed message.
type Envelope struct {
	ID     string `yaml:"id"`
	Dim    int    `yaml:"dim"`
	Length int    `yaml:"length"`
	Values []int  `yaml:"values,flow"`
}

// Seal encodes text with c and records its unpadded length.
func Seal(c *cipher.Cipher, text string) (*Envelope, error) {
	nums, err := c.Numeralizer().FromText(text)
	if err != nil {
		return nil, fmt.Errorf("Seal: %w", err)
	}
	values, err := c.EncodeNumerals(nums)
	if err != nil {
		return nil, fmt.Errorf("Seal: %w", err)
	}

	return &Envelope{
		ID:     ksuid.New().String(),
		Dim:    c.Dim(),
		Length: len(nums),
		Values: values,
	}, nil
}

// Open decodes env with c, cutting the padding at env.Length.
func Open(c *cipher.Cipher, env *Envelope) (string, error) {
	if env == nil {
		return "", fmt.Errorf("Open: %w", ErrNilEnvelope)
	}
	if _, err := ksuid.Parse(env.ID); err != nil {
		return "", fmt.Errorf("Open: %q: %w", env.ID, ErrBadID)
	}
	if env.Dim != c.Dim() {
		return "", fmt.Errorf("Open: envelope %d, cipher %d: %w", env.Dim, c.Dim(), ErrDimMismatch)
	}

	text, err := c.DecodeLength(env.Values, env.Length)
	if err != nil {
		return "", fmt.Errorf("Open: %w", err)
	}

	return text, nil
}

// Time returns the creation time embedded in the ID.
func (e *Envelope) Time() (time.Time, error) {
	id, err := ksuid.Parse(e.ID)
	if err != nil {
		return time.Time{}, fmt.Errorf("Time: %w", ErrBadID)
	}

	return id.Time(), nil
}

// Marshal renders env as YAML.
func Marshal(env *Envelope) ([]byte, error) {
	if env == nil {
		return nil, fmt.Errorf("Marshal: %w", ErrNilEnvelope)
	}

	return yaml.Marshal(env)
}

// Unmarshal parses a YAML envelope.
func Unmarshal(data []byte) (*Envelope, error) {
	var env Envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("Unmarshal: %w", err)
	}

	return &env, nil
}
