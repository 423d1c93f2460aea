// Package envelope wraps an encoded vector with what a receiver needs to
// decode it exactly: a sortable ID (KSUID), the key dimension and the
// unpadded numeral count. Envelopes serialise to YAML.
package envelope
