// Package score talks to the remote score table: a client that lists and saves results,
// swallowing every failure, and the reference server that decodes submitted scores.
package score

import (
	"encoding/base64"
	"errors"
	"math/rand/v2"

	"github.com/lixenwraith/racer796/parameter"
)

var (
	ErrKeyTooShort = errors.New("key too short")
	ErrTokenLength = errors.New("token has wrong length")
	ErrTokenTamper = errors.New("token does not encode a single score")
	ErrEmptyAgent  = errors.New("empty user agent")
)

// GenerateKey returns a random key of SaveMinKeyLength plus 1 to SaveKeyExtraLength bytes
func GenerateKey(rng *rand.Rand) []byte {
	n := parameter.SaveMinKeyLength + 1 + rng.IntN(parameter.SaveKeyExtraLength)
	key := make([]byte, n)
	for i := range key {
		key[i] = byte(rng.IntN(256))
	}
	return key
}

// SourceToken mixes the key with the user agent into SaveTokenLength bytes
func SourceToken(key []byte, userAgent string) []byte {
	out := make([]byte, parameter.SaveTokenLength)
	if len(key) == 0 || userAgent == "" {
		return out
	}
	for i := range out {
		out[i] = byte((int(key[i%len(key)]) + int(userAgent[i%len(userAgent)]) + i) % 256)
	}
	return out
}

// ShiftToken adds the score to every byte of the source token
func ShiftToken(score int, src []byte) []byte {
	out := make([]byte, len(src))
	for i, b := range src {
		out[i] = byte((int(b) + score) % 256)
	}
	return out
}

// Encode builds the base64 key and token form values for a score
func Encode(rng *rand.Rand, score int, userAgent string) (key, token string) {
	k := GenerateKey(rng)
	t := ShiftToken(score, SourceToken(k, userAgent))
	return base64.StdEncoding.EncodeToString(k), base64.StdEncoding.EncodeToString(t)
}

// Decode recovers the score from base64 key and token form values
// Scores are only recoverable modulo 256
func Decode(key, token, userAgent string) (int, error) {
	if userAgent == "" {
		return 0, ErrEmptyAgent
	}
	k, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return 0, err
	}
	if len(k) < parameter.SaveMinKeyLength {
		return 0, ErrKeyTooShort
	}
	t, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, err
	}
	if len(t) != parameter.SaveTokenLength {
		return 0, ErrTokenLength
	}

	src := SourceToken(k, userAgent)
	score := int(t[0]-src[0]) & 0xff
	for i := range t {
		if int(t[i]-src[i])&0xff != score {
			return 0, ErrTokenTamper
		}
	}
	return score, nil
}
