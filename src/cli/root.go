// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tlsconfig "github.com/hotelzululima/s2n/src/internal/tls/config"
	x509certs "github.com/hotelzululima/s2n/src/internal/x509/certs"
	"github.com/hotelzululima/s2n/src/logger"
)

var (
	// ErrChainFileRequired indicates that no certificate chain file was given.
	ErrChainFileRequired = errors.New("cli: certificate chain file is required")

	// ErrKeyFileRequired indicates that no private key file was given.
	ErrKeyFileRequired = errors.New("cli: private key file is required")
)

var (
	chainFile    string
	keyFile      string
	dhParamsFile string
	configFile   string
	jsonOutput   bool
)

// DiagnosticLogger returns the logger matching the output mode requested in
// args: structured JSON lines to stderr when --json is set, so failures stay
// machine-readable alongside a JSON report, and plain text otherwise.
func DiagnosticLogger(args []string) logger.Logger {
	for _, a := range args {
		if a == "--" {
			break
		}
		if a == "--json" || a == "-j" {
			return logger.NewJSONLogger(os.Stderr)
		}
	}
	l := logger.NewCLILogger()
	l.SetOutput(os.Stderr)
	return l
}

// Execute runs the root command with the provided context and logger.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:           "s2n-config-inspect",
		Short:         "TLS endpoint configuration inspector",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), log)
		},
	}

	rootCmd.Flags().StringVarP(&chainFile, "chain", "c", "", "certificate chain bundle (PEM, DER, or PKCS#7)")
	rootCmd.Flags().StringVarP(&keyFile, "key", "k", "", "private key file (PEM)")
	rootCmd.Flags().StringVarP(&dhParamsFile, "dhparams", "d", "", "PKCS#3 DH parameters file (PEM)")
	rootCmd.Flags().StringVarP(&configFile, "config", "f", "", "JSON or YAML file naming the material files")
	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "emit a JSON report instead of tables")

	return rootCmd.ExecuteContext(ctx)
}

// runInspect builds an endpoint configuration from the requested material
// and reports what the handshake layer would see.
func runInspect(ctx context.Context, log logger.Logger) error {
	if configFile != "" {
		fileCfg, err := loadFileConfig(configFile)
		if err != nil {
			return err
		}
		if chainFile == "" {
			chainFile = fileCfg.Chain
		}
		if keyFile == "" {
			keyFile = fileCfg.Key
		}
		if dhParamsFile == "" {
			dhParamsFile = fileCfg.DHParams
		}
	}

	if chainFile == "" {
		return ErrChainFileRequired
	}
	if keyFile == "" {
		return ErrKeyFileRequired
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	chainData, err := os.ReadFile(chainFile)
	if err != nil {
		return fmt.Errorf("cli: read chain file: %w", err)
	}
	keyData, err := os.ReadFile(keyFile)
	if err != nil {
		return fmt.Errorf("cli: read key file: %w", err)
	}

	// Accept DER and PKCS#7 bundles too; the loader itself only speaks PEM.
	chainPEM, err := x509certs.New().NormalizeChain(chainData)
	if err != nil {
		return err
	}

	cfg := tlsconfig.New()
	defer cfg.Free()

	if err := cfg.AddCertChainAndKey(chainPEM, string(keyData)); err != nil {
		return err
	}

	if dhParamsFile != "" {
		dhData, err := os.ReadFile(dhParamsFile)
		if err != nil {
			return fmt.Errorf("cli: read dhparams file: %w", err)
		}
		if err := cfg.AddDHParams(string(dhData)); err != nil {
			return err
		}
	}

	if jsonOutput {
		report, err := buildJSONReport(cfg)
		if err != nil {
			return err
		}
		log.Println(report)
		return nil
	}

	log.Println(renderReport(cfg))
	return nil
}
