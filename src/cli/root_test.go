// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelzululima/s2n/src/cli"
	"github.com/hotelzululima/s2n/src/internal/testmaterial"
	tlsconfig "github.com/hotelzululima/s2n/src/internal/tls/config"
	"github.com/hotelzululima/s2n/src/logger"
)

const version = "1.3.3.7-testing"

// writeMaterial lays the fixture files out in a temp directory and returns
// their paths.
func writeMaterial(t *testing.T) (chain, key, dh string) {
	t.Helper()
	dir := t.TempDir()

	chain = filepath.Join(dir, "chain.pem")
	key = filepath.Join(dir, "key.pem")
	dh = filepath.Join(dir, "dhparams.pem")

	require.NoError(t, os.WriteFile(chain, []byte(testmaterial.LeafCertPEM+testmaterial.CACertPEM), 0o600))
	require.NoError(t, os.WriteFile(key, []byte(testmaterial.RSAKeyPKCS1PEM), 0o600))
	require.NoError(t, os.WriteFile(dh, []byte(testmaterial.DHParamsPEM), 0o600))
	return chain, key, dh
}

func newTestLogger() (logger.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	log := logger.NewCLILogger()
	log.SetOutput(buf)
	return log, buf
}

func TestExecute_NoChainFile(t *testing.T) {
	log, _ := newTestLogger()

	os.Args = []string{"cmd"}
	err := cli.Execute(context.Background(), version, log)
	assert.ErrorIs(t, err, cli.ErrChainFileRequired)
}

func TestExecute_NoKeyFile(t *testing.T) {
	log, _ := newTestLogger()
	chain, _, _ := writeMaterial(t)

	os.Args = []string{"cmd", "--chain", chain}
	err := cli.Execute(context.Background(), version, log)
	assert.ErrorIs(t, err, cli.ErrKeyFileRequired)
}

func TestExecute_FullMaterial(t *testing.T) {
	log, buf := newTestLogger()
	chain, key, dh := writeMaterial(t)

	os.Args = []string{"cmd", "--chain", chain, "--key", key, "--dhparams", dh}
	require.NoError(t, cli.Execute(context.Background(), version, log))

	out := buf.String()
	assert.Contains(t, out, "localhost")
	assert.Contains(t, out, "s2n Test CA")
	assert.Contains(t, out, "2 certificates")
	assert.Contains(t, out, "512-bit prime")
	assert.Contains(t, out, "0x0067")
}

func TestExecute_JSONOutput(t *testing.T) {
	log, buf := newTestLogger()
	chain, key, _ := writeMaterial(t)

	os.Args = []string{"cmd", "--chain", chain, "--key", key, "--json"}
	require.NoError(t, cli.Execute(context.Background(), version, log))

	var report struct {
		ChainSize        uint32   `json:"chainSize"`
		CertificateCount int      `json:"certificateCount"`
		KeyBits          int      `json:"keyBits"`
		CipherSuites     []string `json:"cipherSuites"`
	}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &report))

	assert.Equal(t, 2, report.CertificateCount)
	assert.NotZero(t, report.ChainSize)
	assert.Equal(t, 2048, report.KeyBits)
	assert.Len(t, report.CipherSuites, 8)
}

func TestExecute_ConfigFile(t *testing.T) {
	log, buf := newTestLogger()
	chain, key, dh := writeMaterial(t)

	cfgPath := filepath.Join(t.TempDir(), "inspect.yaml")
	yamlCfg := "chain: " + chain + "\nkey: " + key + "\ndhParams: " + dh + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yamlCfg), 0o600))

	os.Args = []string{"cmd", "--config", cfgPath}
	require.NoError(t, cli.Execute(context.Background(), version, log))
	assert.Contains(t, buf.String(), "localhost")
}

func TestExecute_InvalidKey(t *testing.T) {
	log, _ := newTestLogger()
	chain, _, dh := writeMaterial(t)

	os.Args = []string{"cmd", "--chain", chain, "--key", dh}
	err := cli.Execute(context.Background(), version, log)
	assert.ErrorIs(t, err, tlsconfig.ErrInvalidPrivateKey)
}

func TestDiagnosticLogger(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want logger.Logger
	}{
		{name: "plain by default", args: []string{"--chain", "chain.pem"}, want: &logger.CLILogger{}},
		{name: "json long flag", args: []string{"--chain", "chain.pem", "--json"}, want: &logger.JSONLogger{}},
		{name: "json short flag", args: []string{"-j"}, want: &logger.JSONLogger{}},
		{name: "json flag after terminator ignored", args: []string{"--", "--json"}, want: &logger.CLILogger{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, cli.DiagnosticLogger(tt.args))
		})
	}
}

func TestDiagnosticLogger_JSONErrorLine(t *testing.T) {
	diag := cli.DiagnosticLogger([]string{"--json"})

	buf := new(bytes.Buffer)
	diag.SetOutput(buf)
	diag.Printf("Error: %v", cli.ErrChainFileRequired)

	var entry struct {
		Level   string `json:"level"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry.Level)
	assert.Contains(t, entry.Message, "certificate chain file is required")
}

func TestExecute_NonExistentFile(t *testing.T) {
	log, _ := newTestLogger()
	_, key, _ := writeMaterial(t)

	os.Args = []string{"cmd", "--chain", "/tmp/nonexistent-chain-12345.pem", "--key", key}
	err := cli.Execute(context.Background(), version, log)
	assert.Error(t, err)
}
