// Package seal packs Go values into tamper-proof strings for cookies and
// URLs.
//
// Values are serialized with msgpack and then either signed (readable by
// the client, rejected if modified) or encrypted with AES-256-GCM.
package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	// ErrMalformed is returned when a sealed string cannot be parsed.
	ErrMalformed = errors.New("seal: malformed value")

	// ErrSignature is returned when a signature or authentication tag
	// does not match.
	ErrSignature = errors.New("seal: verification failed")
)

// Mode selects how a value is protected.
type Mode int

const (
	// Signed values are base64 msgpack followed by a truncated HMAC-SHA256.
	Signed Mode = iota
	// Encrypted values are opaque AES-256-GCM ciphertext.
	Encrypted
)

// sigLen is the number of HMAC bytes kept (128 bits).
const sigLen = 16

// Codec seals and opens values with one key. It is safe for concurrent use.
type Codec struct {
	key []byte
	gcm cipher.AEAD
}

// New creates a codec. Keys shorter than 32 bytes are stretched with
// SHA-256.
func New(key []byte) (*Codec, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Codec{key: key, gcm: gcm}, nil
}

// RandomKey returns 32 random bytes, suitable for development servers
// whose sealed values need not outlive a restart.
func RandomKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// Seal serializes v and protects it according to mode.
func (c *Codec) Seal(v any, mode Mode) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}
	if mode == Encrypted {
		return c.encrypt(packed)
	}
	return c.sign(packed), nil
}

// Open verifies s and decodes it into v, which must be a pointer.
func (c *Codec) Open(s string, mode Mode, v any) error {
	var packed []byte
	var err error
	if mode == Encrypted {
		packed, err = c.decrypt(s)
	} else {
		packed, err = c.verify(s)
	}
	if err != nil {
		return err
	}
	if err := msgpack.Unmarshal(packed, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func (c *Codec) mac(data []byte) []byte {
	m := hmac.New(sha256.New, c.key)
	m.Write(data)
	return m.Sum(nil)[:sigLen]
}

// sign returns base64(data) + "." + base64(mac).
func (c *Codec) sign(data []byte) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString(data) + "." + enc.EncodeToString(c.mac(data))
}

func (c *Codec) verify(s string) ([]byte, error) {
	body, sig, ok := strings.Cut(s, ".")
	if !ok {
		return nil, fmt.Errorf("%w: missing signature", ErrMalformed)
	}
	data, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	mac, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !hmac.Equal(mac, c.mac(data)) {
		return nil, ErrSignature
	}
	return data, nil
}

// encrypt returns base64(nonce || ciphertext).
func (c *Codec) encrypt(data []byte) (string, error) {
	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(c.gcm.Seal(nonce, nonce, data, nil)), nil
}

func (c *Codec) decrypt(s string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	n := c.gcm.NonceSize()
	if len(raw) < n {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrMalformed)
	}
	data, err := c.gcm.Open(nil, raw[:n], raw[n:], nil)
	if err != nil {
		return nil, ErrSignature
	}
	return data, nil
}
