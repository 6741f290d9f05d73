package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	fileMagic = "RSEC"
	saltLen   = 16
	keyLen    = 32

	argonTime    uint32 = 3
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 1
)

var errCorruptStore = errors.New("secret store is corrupt")

// FileStorage keeps all secrets in a single file encrypted with
// XChaCha20-Poly1305 under a key derived via Argon2id. Every write replaces
// the whole file atomically.
type FileStorage struct {
	mu   sync.Mutex
	path string
	salt []byte
	key  []byte
}

// OpenFile prepares file-backed storage at path. When passphrase is empty a
// random machine-local secret is generated next to the store and used instead.
func OpenFile(path, passphrase string) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create secrets dir: %w", err)
	}

	if passphrase == "" {
		machine, err := loadOrCreateMachineSecret(path + ".key")
		if err != nil {
			return nil, err
		}
		passphrase = machine
	}

	salt, err := loadOrCreateSalt(path)
	if err != nil {
		return nil, err
	}

	return &FileStorage{
		path: path,
		salt: salt,
		key:  argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, keyLen),
	}, nil
}

func (s *FileStorage) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		// A corrupt store must not block re-authentication.
		values = map[string]string{}
	}
	values[key] = value
	return s.store(values)
}

func (s *FileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		values = map[string]string{}
	}
	delete(values, key)
	return s.store(values)
}

func (s *FileStorage) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	header := len(fileMagic) + saltLen
	if len(raw) < header+chacha20poly1305.NonceSizeX || string(raw[:len(fileMagic)]) != fileMagic {
		return nil, errCorruptStore
	}
	body := raw[header:]
	nonce := body[:chacha20poly1305.NonceSizeX]
	ciphertext := body[chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errCorruptStore
	}

	values := map[string]string{}
	if err := json.Unmarshal(plaintext, &values); err != nil {
		return nil, errCorruptStore
	}
	return values, nil
}

func (s *FileStorage) store(values map[string]string) error {
	plaintext, err := json.Marshal(values)
	if err != nil {
		return err
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return err
	}

	out := make([]byte, 0, len(fileMagic)+saltLen+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, fileMagic...)
	out = append(out, s.salt...)
	out = append(out, nonce...)
	out = append(out, aead.Seal(nil, nonce, plaintext, nil)...)

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func loadOrCreateSalt(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err == nil && len(raw) >= len(fileMagic)+saltLen && string(raw[:len(fileMagic)]) == fileMagic {
		salt := make([]byte, saltLen)
		copy(salt, raw[len(fileMagic):len(fileMagic)+saltLen])
		return salt, nil
	}
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

func loadOrCreateMachineSecret(path string) (string, error) {
	if raw, err := os.ReadFile(path); err == nil && len(raw) > 0 {
		return string(raw), nil
	}
	buf := make([]byte, keyLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	secret := hex.EncodeToString(buf)
	if err := os.WriteFile(path, []byte(secret), 0o600); err != nil {
		return "", fmt.Errorf("persist machine secret: %w", err)
	}
	return secret, nil
}
