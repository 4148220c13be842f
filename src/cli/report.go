// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"crypto/x509"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	tlsconfig "github.com/hotelzululima/s2n/src/internal/tls/config"
)

// chainRole names a chain position for display: the leaf comes first, then
// its issuers.
func chainRole(i, total int) string {
	switch {
	case i == 0:
		return "leaf"
	case i == total-1:
		return "anchor"
	default:
		return "intermediate"
	}
}

// renderReport renders the configuration as a human-readable report: the
// chain as a markdown table followed by size and cipher preference lines.
func renderReport(cfg *tlsconfig.Config) string {
	var out strings.Builder

	pair := cfg.ChainAndKey()

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Role", "Subject", "Issuer", "Valid Until", "DER Size"})

	var rows [][]string
	for i := 0; i < pair.CertificateCount(); i++ {
		der := pair.Certificate(i)
		subject, issuer, validUntil := "unparsable", "unparsable", "-"
		if cert, err := x509.ParseCertificate(der); err == nil {
			subject = cert.Subject.CommonName
			issuer = cert.Issuer.CommonName
			validUntil = cert.NotAfter.Format("2006-01-02")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			chainRole(i, pair.CertificateCount()),
			subject,
			issuer,
			validUntil,
			fmt.Sprintf("%d", len(der)),
		})
	}
	table.Bulk(rows)
	table.Render()

	out.WriteString(buf.String())
	fmt.Fprintf(&out, "\nWire chain size: %d bytes (%d certificates)\n", pair.ChainSize(), pair.CertificateCount())
	fmt.Fprintf(&out, "Private key: %d-bit RSA\n", pair.PrivateKey().Size()*8)

	if params := cfg.DHParams(); params != nil {
		fmt.Fprintf(&out, "DH parameters: %d-bit prime, generator %s\n", params.PrimeBits(), params.G)
	}

	suites := cfg.CipherPreferences().Suites()
	hexSuites := make([]string, len(suites))
	for i, s := range suites {
		hexSuites[i] = fmt.Sprintf("0x%04X", s)
	}
	fmt.Fprintf(&out, "Cipher preferences (%d, most preferred first): %s\n", len(suites), strings.Join(hexSuites, " "))

	return out.String()
}

// jsonReport is the machine-readable shape of an inspection run.
type jsonReport struct {
	ChainSize        uint32   `json:"chainSize"`
	CertificateCount int      `json:"certificateCount"`
	CertificateSizes []int    `json:"certificateSizes"`
	KeyBits          int      `json:"keyBits"`
	DHPrimeBits      int      `json:"dhPrimeBits,omitempty"`
	CipherSuites     []string `json:"cipherSuites"`
}

// buildJSONReport renders the configuration as a single JSON document.
func buildJSONReport(cfg *tlsconfig.Config) (string, error) {
	pair := cfg.ChainAndKey()

	report := jsonReport{
		ChainSize:        pair.ChainSize(),
		CertificateCount: pair.CertificateCount(),
		KeyBits:          pair.PrivateKey().Size() * 8,
	}
	for i := 0; i < pair.CertificateCount(); i++ {
		report.CertificateSizes = append(report.CertificateSizes, len(pair.Certificate(i)))
	}
	if params := cfg.DHParams(); params != nil {
		report.DHPrimeBits = params.PrimeBits()
	}
	for _, s := range cfg.CipherPreferences().Suites() {
		report.CipherSuites = append(report.CipherSuites, fmt.Sprintf("0x%04X", s))
	}

	data, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("cli: encode report: %w", err)
	}
	return string(data), nil
}
