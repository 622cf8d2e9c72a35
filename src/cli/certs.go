// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/tls-engine-utils/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/x509/peer"
)

// ErrNotAuthorized is returned by validate when no subjectAltName IP
// entry of the certificate matches the address.
var ErrNotAuthorized = errors.New("certificate does not authorize the peer address")

// stdinName is the file argument that reads standard input.
const stdinName = "-"

func (a *app) subjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subjects FILE...",
		Short: "Print the subject names of every certificate in PEM files",
		Long: "Print the subject names of every certificate in PEM files, one per line.\n" +
			"Use - to read standard input.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoder := x509certs.New()
			out := cmd.OutOrStdout()

			for _, file := range args {
				var (
					names []pkix.Name
					err   error
				)
				if file == stdinName {
					names, err = subjectsFromReader(decoder, cmd.InOrStdin())
				} else {
					names, err = decoder.SubjectNamesInPEMFile(file)
				}
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				if len(args) > 1 {
					fmt.Fprintf(out, "%s:\n", file)
				}
				for _, name := range names {
					fmt.Fprintln(out, x509certs.OneLine(name))
				}
			}
			a.done()
			return nil
		},
	}
}

func subjectsFromReader(decoder *x509certs.Certificate, r io.Reader) ([]pkix.Name, error) {
	data, err := gc.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decoder.SubjectNamesInPEMBuffer(data)
}

// Output formats of the inspect command.
const (
	formatText = "text"
	formatPEM  = "pem"
	formatDER  = "der"
)

func (a *app) inspectCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the names, validity and digests of certificates",
		Long: "Print the names, validity and digests of every certificate in a file.\n" +
			"PEM bundles, concatenated DER and PKCS#7 are accepted. Use - to read standard input.\n" +
			"With --format pem or der the certificates are re-encoded instead.",
		Example: "  tls-engine-utils inspect chain.pem\n  tls-engine-utils inspect chain.der --format pem > chain.pem",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			certs, err := readCertificates(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			decoder := x509certs.New()
			switch format {
			case formatText:
				for i, cert := range certs {
					if i > 0 {
						fmt.Fprintln(out)
					}
					writeCertificate(out, cert)
				}
			case formatPEM:
				if _, err := out.Write(decoder.EncodeMultiplePEM(certs)); err != nil {
					return err
				}
			case formatDER:
				for _, cert := range certs {
					if _, err := out.Write(decoder.EncodeDER(cert)); err != nil {
						return err
					}
				}
			default:
				return fmt.Errorf("unknown format %q: want %s, %s or %s", format, formatText, formatPEM, formatDER)
			}
			a.done()
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, pem or der")
	return cmd
}

// readCertificates reads every certificate of file: a strict PEM bundle,
// concatenated DER, or PKCS#7.
func readCertificates(cmd *cobra.Command, file string) ([]*x509.Certificate, error) {
	var (
		data []byte
		err  error
	)
	if file == stdinName {
		data, err = gc.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}

	decoder := x509certs.New()
	if decoder.IsPEM(data) {
		return decoder.ReadCertsFromBuffer(data)
	}
	if certs, err := decoder.DecodeMultiple(data); err == nil {
		return certs, nil
	}
	cert, err := decoder.Decode(data)
	if err != nil {
		return nil, err
	}
	return []*x509.Certificate{cert}, nil
}

func writeCertificate(w io.Writer, cert *x509.Certificate) {
	subject, _ := x509certs.Subject(cert)
	issuer, _ := x509certs.Issuer(cert)
	issuerCN, _ := x509certs.IssuerCommonName(cert)
	sha1 := x509certs.DigestSHA1(cert)
	sha256 := x509certs.DigestSHA256(cert)

	fmt.Fprintf(w, "Common name:  %s\n", x509certs.CommonName(cert))
	fmt.Fprintf(w, "Subject:      %s\n", subject)
	fmt.Fprintf(w, "Issuer:       %s\n", issuer)
	fmt.Fprintf(w, "Issuer CN:    %s\n", issuerCN)
	fmt.Fprintf(w, "DNS names:    %s\n", strings.Join(x509certs.DNSNames(cert), ", "))
	fmt.Fprintf(w, "Not before:   %s\n", x509certs.NotBefore(cert))
	fmt.Fprintf(w, "Not after:    %s\n", x509certs.NotAfter(cert))
	fmt.Fprintf(w, "SHA1:         %s\n", hex.EncodeToString(sha1[:]))
	fmt.Fprintf(w, "SHA256:       %s\n", hex.EncodeToString(sha256[:]))
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate CERT IP",
		Short: "Check that a certificate authorizes an IP address",
		Long: "Check that a certificate carries a subjectAltName IP entry equal to an address.\n" +
			"The certificate is the first one in CERT, PEM or DER.",
		Example: "  tls-engine-utils validate server.pem 192.0.2.10",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ip := net.ParseIP(args[1])
			if ip == nil {
				return fmt.Errorf("invalid IP address %q", args[1])
			}
			certs, err := readCertificates(cmd, args[0])
			if err != nil {
				return err
			}
			if len(certs) == 0 {
				return fmt.Errorf("%s: no certificate found", args[0])
			}

			addr := peer.FromIP(ip)
			if !peer.ValidatePeerCertNames(certs[0], addr) {
				return fmt.Errorf("%w: %s", ErrNotAuthorized, addr)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s authorized\n", args[0], addr)
			a.done()
			return nil
		},
	}
}
