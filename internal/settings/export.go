package settings

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	kdfIterations = 100_000
	kdfKeyLen     = 32
	kdfSaltLen    = 16
)

// encryptedDocument is the envelope written by ExportEncrypted.
type encryptedDocument struct {
	Encrypted bool   `json:"encrypted"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

// ExportEncrypted returns the settings document sealed with AES-GCM under
// a key derived from the passphrase.
func (s *Store) ExportEncrypted(passphrase string) (string, error) {
	plaintext := []byte(s.Export())

	salt := make([]byte, kdfSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	envelope := encryptedDocument{
		Encrypted: true,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	}
	raw, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ImportEncrypted opens a sealed envelope and imports the contained
// document. The current settings survive any failure.
func (s *Store) ImportEncrypted(doc, passphrase string) error {
	var envelope encryptedDocument
	if err := json.Unmarshal([]byte(doc), &envelope); err != nil {
		return fmt.Errorf("parse export envelope: %w", err)
	}
	if !envelope.Encrypted {
		return fmt.Errorf("document is not an encrypted export")
	}
	salt, err := base64.StdEncoding.DecodeString(envelope.Salt)
	if err != nil {
		return fmt.Errorf("decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(envelope.Nonce)
	if err != nil {
		return fmt.Errorf("decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Data)
	if err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return err
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("wrong passphrase or corrupted export")
	}
	if !s.Import(string(plaintext)) {
		return fmt.Errorf("decrypted document is not valid settings JSON")
	}
	return nil
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(passphrase), salt, kdfIterations, kdfKeyLen, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
