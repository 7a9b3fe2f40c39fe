// Package creds encrypts Hello packet credential fields (guid, password,
// secret) under the server's fixed RSA public key, the same obfuscation the
// original client applies before putting them on the wire.
package creds

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"sync"
)

// publicKeyPEM is the server's well-known 1024-bit RSA public key, embedded
// verbatim as the original client embeds it.
const publicKeyPEM = `-----BEGIN PUBLIC KEY-----
MIGfMA0GCSqGSIb3DQEBAQUAA4GNADCBiQKBgQDCKFctVrhfF3m2Kes0FBL/JFeO
cmNg9eJz8k/hQy1kadD+XFUpluRqa//Uxp2s9W2qE0EoUCu59ugcf/p7lGuL99Uo
SGmQEynkBvZct+/M40L0E0rZ4BVgzLOJmIbXMp0J4PnPcb6VLZvxazGcmSfjauC7
F3yWYqUbZd/HCBtawwIDAQAB
-----END PUBLIC KEY-----`

var (
	pubKeyOnce sync.Once
	pubKey     *rsa.PublicKey
	pubKeyErr  error
)

func loadPublicKey() (*rsa.PublicKey, error) {
	pubKeyOnce.Do(func() {
		block, _ := pem.Decode([]byte(publicKeyPEM))
		if block == nil {
			pubKeyErr = errors.New("creds: failed to decode embedded public key PEM")
			return
		}
		parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			pubKeyErr = err
			return
		}
		key, ok := parsed.(*rsa.PublicKey)
		if !ok {
			pubKeyErr = errors.New("creds: embedded key is not an RSA public key")
			return
		}
		pubKey = key
	})
	return pubKey, pubKeyErr
}

// Encrypt RSA-PKCS1v15-encrypts plaintext under the embedded public key and
// base64-encodes the result, matching the wire representation the server
// expects for guid/password/secret Hello fields.
func Encrypt(plaintext string) (string, error) {
	key, err := loadPublicKey()
	if err != nil {
		return "", err
	}
	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, key, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
