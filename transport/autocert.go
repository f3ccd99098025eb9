package transport

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"log"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/crypto/acme/autocert"
)

// NewAutoTLS obtains certificates for the domains from Let's Encrypt on demand. They
// are cached in cacheDir, or in the user cache directory if it's empty. A cache that
// can't be created is only reported, as certificates still can be obtained without it.
func NewAutoTLS(domains []string, cacheDir string) *TLS {
	m := &autocert.Manager{
		Prompt: autocert.AcceptTOS,
	}

	if len(domains) > 0 {
		m.HostPolicy = autocert.HostWhitelist(domains...)
	}

	cache := orDefaultCacheDir(cacheDir)
	if err := mkdirIfNotExists(cache); err != nil {
		log.Printf("WARNING: autocert: not using a cache: %s", err)
	} else {
		m.Cache = autocert.DirCache(cache)
	}

	return NewTLS(m.TLSConfig())
}

// NewSelfSignedTLS generates a certificate for localhost, or reuses the one generated
// earlier in cacheDir.
func NewSelfSignedTLS(cacheDir string) (*TLS, error) {
	cert, key, err := SelfSignedCert(orDefaultCacheDir(cacheDir))
	if err != nil {
		return nil, err
	}

	return NewTLSFromFiles(cert, key)
}

// SelfSignedCert writes a self-signed certificate and its key into dir, unless both
// already exist, and returns their paths.
func SelfSignedCert(dir string) (certFile, keyFile string, err error) {
	certFile = filepath.Join(dir, "localhost.crt")
	keyFile = filepath.Join(dir, "localhost.key")

	if fileExists(certFile) && fileExists(keyFile) {
		return certFile, keyFile, nil
	}

	if err = mkdirIfNotExists(dir); err != nil {
		return "", "", err
	}

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", "", err
	}

	notBefore := time.Now()
	template := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{Organization: []string{"Localhost"}},
		DNSNames:              []string{"localhost"},
		IPAddresses:           []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		NotBefore:             notBefore,
		NotAfter:              notBefore.Add(10 * 365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return "", "", err
	}

	privBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return "", "", err
	}

	if err = writePEM(certFile, "CERTIFICATE", certDER); err != nil {
		return "", "", err
	}

	if err = writePEM(keyFile, "PRIVATE KEY", privBytes); err != nil {
		return "", "", err
	}

	return certFile, keyFile, nil
}

func writePEM(filename, blockType string, data []byte) error {
	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if err = pem.Encode(file, &pem.Block{Type: blockType, Bytes: data}); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

func orDefaultCacheDir(dir string) string {
	if len(dir) > 0 {
		return dir
	}

	return cacheDir()
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	return "/"
}

func cacheDir() string {
	const base = "http-tcp-autocert"

	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, base)
	}

	return filepath.Join(homeDir(), ".cache", base)
}

func mkdirIfNotExists(dir string) error {
	if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
		return nil
	}

	return os.MkdirAll(dir, 0700)
}

func fileExists(filename string) bool {
	stat, err := os.Stat(filename)

	return err == nil && !stat.IsDir()
}
