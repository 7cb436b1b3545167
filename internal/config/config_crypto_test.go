package config_test

import (
	"errors"
	"os"
	"testing"

	"github.com/neet-mastery/mastery-lambda/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	t.Run("ShortKeyPanics", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", "short_key")
		defer os.Unsetenv("CRYPTO_KEY")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("InitCrypto should panic with a short key")
			}
		}()
		config.InitCrypto()
	})

	t.Run("EmptyKeyDisables", func(t *testing.T) {
		os.Unsetenv("CRYPTO_KEY")
		config.InitCrypto()

		if config.CryptoEnabled() {
			t.Fatal("crypto should be disabled without CRYPTO_KEY")
		}
		if _, err := config.Encrypt("x"); !errors.Is(err, config.ErrCryptoDisabled) {
			t.Errorf("expected ErrCryptoDisabled, got %v", err)
		}
	})

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)
		defer os.Unsetenv("CRYPTO_KEY")
		config.InitCrypto()

		if !config.CryptoEnabled() {
			t.Fatal("crypto should be enabled with a 32 byte key")
		}
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	defer os.Unsetenv("CRYPTO_KEY")
	config.InitCrypto()

	t.Run("PhoneNumber", func(t *testing.T) {
		plaintext := "9900112233"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != plaintext {
			t.Errorf("decrypted text %q does not match original %q", decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("encryption is not randomised; ciphertexts should differ")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("empty text round trip returned %q", decrypted)
		}
	})

	t.Run("TamperedCiphertext", func(t *testing.T) {
		if _, err := config.Decrypt("bm90LWEtcmVhbC1jaXBoZXJ0ZXh0LWF0LWFsbA=="); err == nil {
			t.Error("Decrypt should reject ciphertext that was not produced by Encrypt")
		}
	})
}
