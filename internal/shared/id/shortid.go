// Package id generates the public identifiers exposed in URLs and API
// payloads. Database keys stay numeric and never leave the server.
package id

import (
	"crypto/rand"
	"fmt"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the random part of a prefixed SID.
	DefaultLength = 12

	// InterviewLinkLength is the length of candidate-facing interview links.
	InterviewLinkLength = 10

	// Bytes at or above this value are rejected so every symbol is equally likely.
	unbiasedCeiling = 256 - 256%len(alphabet)
)

const (
	PrefixAccount   = "acct"
	PrefixPlan      = "plan"
	PrefixPayment   = "pay"
	PrefixInterview = "itv"
)

// Generate returns a random base62 string of the given length; a
// non-positive length uses DefaultLength.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= unbiasedCeiling {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}

func withPrefix(prefix string) (string, error) {
	s, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

func NewAccountSID() (string, error)   { return withPrefix(PrefixAccount) }
func NewPlanSID() (string, error)      { return withPrefix(PrefixPlan) }
func NewPaymentSID() (string, error)   { return withPrefix(PrefixPayment) }
func NewInterviewSID() (string, error) { return withPrefix(PrefixInterview) }

// NewInterviewLink generates the unprefixed token embedded in share URLs.
func NewInterviewLink() (string, error) {
	return Generate(InterviewLinkLength)
}
