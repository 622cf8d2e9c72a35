// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/netip"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/idna"
	"golang.org/x/net/proxy"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/engine"
	x509certs "github.com/H0llyW00dzZ/tls-engine-utils/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/x509/peer"
)

const (
	defaultPort   = "443"
	masterKeySize = 48
	randomSize    = 32
)

type probeOptions struct {
	serverName string
	caFile     string
	proxyURL   string
	alpn       []string
	insecure   bool
	bio        bool
	requireIP  bool
}

// byteCounter tallies the bytes moved through a probe BIO.
type byteCounter struct {
	read    int
	written int
}

func (a *app) probeCmd() *cobra.Command {
	var opts probeOptions

	cmd := &cobra.Command{
		Use:   "probe HOST[:PORT]",
		Short: "Handshake with a server and print what was negotiated",
		Long: "Handshake with a server using the selected engine and print the negotiated\n" +
			"version, cipher suite and protocol, whether the certificate authorizes the\n" +
			"peer IP address, the client random and the master key.\n\n" +
			"The port defaults to " + defaultPort + ". Internationalized host names are converted\n" +
			"to their ASCII form.",
		Example: "  tls-engine-utils probe example.com\n" +
			"  tls-engine-utils --engine fork probe 192.0.2.10:8443 --ca ca.pem --require-ip-match",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.probe(cmd, args[0], &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.serverName, "servername", "", "server name to send and verify (default HOST)")
	flags.StringVar(&opts.caFile, "ca", "", "PEM file of trusted roots (default system roots)")
	flags.StringVar(&opts.proxyURL, "proxy", "", "proxy URL to dial through, such as socks5://host:1080 (overrides config)")
	flags.StringSliceVar(&opts.alpn, "alpn", nil, "protocols to offer (default from config)")
	flags.BoolVarP(&opts.insecure, "insecure", "k", false, "skip certificate chain verification")
	flags.BoolVar(&opts.bio, "bio", true, "run the handshake over a socket BIO")
	flags.BoolVar(&opts.requireIP, "require-ip-match", false, "fail the handshake when no certificate IP entry matches the peer")
	return cmd
}

func (a *app) probe(cmd *cobra.Command, target string, opts *probeOptions) error {
	host, port := splitTarget(target)
	host, err := asciiHost(host)
	if err != nil {
		return err
	}

	tlsCfg := &tls.Config{
		ServerName:         host,
		NextProtos:         a.cfg.ALPN,
		InsecureSkipVerify: opts.insecure,
	}
	if opts.serverName != "" {
		tlsCfg.ServerName = opts.serverName
	}
	if cmd.Flags().Changed("alpn") {
		tlsCfg.NextProtos = opts.alpn
	}
	if opts.caFile != "" {
		pool, err := x509certs.New().ReadStoreFromFile(opts.caFile)
		if err != nil {
			return err
		}
		tlsCfg.RootCAs = pool
	}

	proxyURL := a.cfg.Proxy
	if cmd.Flags().Changed("proxy") {
		proxyURL = opts.proxyURL
	}
	dialer, err := newDialer(a.cfg.Timeout(), proxyURL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Timeout())
	defer cancel()

	raw, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		return fmt.Errorf("dial %s: %w", target, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := raw.SetDeadline(deadline); err != nil {
			raw.Close()
			return err
		}
	}

	transport := raw
	var counter *byteCounter
	if opts.bio {
		bc, c, err := bioTransport(a.engine, raw)
		if err != nil {
			raw.Close()
			return err
		}
		transport, counter = bc, c
	}
	defer transport.Close()

	var (
		ipChecked bool
		ipErr     error
	)
	verify := func(vc *engine.VerifyContext) error {
		ipChecked = true
		ipErr = engine.VerifyPeerIP(vc)
		if opts.requireIP {
			return ipErr
		}
		return nil
	}

	conn, err := a.engine.Client(ctx, transport, tlsCfg, verify)
	if err != nil {
		return fmt.Errorf("probe %s: %w", target, err)
	}

	writeProbe(cmd.OutOrStdout(), conn, ipChecked, ipErr, counter)
	a.done()
	return nil
}

// splitTarget splits HOST[:PORT], defaulting the port.
func splitTarget(target string) (host, port string) {
	if h, p, err := net.SplitHostPort(target); err == nil {
		return h, p
	}
	return strings.TrimSuffix(strings.TrimPrefix(target, "["), "]"), defaultPort
}

// asciiHost returns host in the form sent on the wire. IP literals are
// returned unchanged.
func asciiHost(host string) (string, error) {
	if _, err := netip.ParseAddr(host); err == nil {
		return host, nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("invalid host %q: %w", host, err)
	}
	return ascii, nil
}

// newDialer returns a direct dialer, or one going through proxyURL when
// it is set.
func newDialer(timeout time.Duration, proxyURL string) (proxy.ContextDialer, error) {
	direct := &net.Dialer{Timeout: timeout}
	if proxyURL == "" {
		return direct, nil
	}

	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL: %w", err)
	}
	d, err := proxy.FromURL(u, direct)
	if err != nil {
		return nil, fmt.Errorf("proxy %s: %w", u.Redacted(), err)
	}
	cd, ok := d.(proxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("proxy %s: dialer does not take a context", u.Redacted())
	}
	return cd, nil
}

// bioTransport wraps the socket under conn in a BIO whose read and write
// methods count bytes before delegating to the built-in socket methods.
// Closing the returned connection frees the BIO and closes conn.
func bioTransport(e engine.Engine, conn net.Conn) (net.Conn, *byteCounter, error) {
	h, err := engine.SocketOf(conn)
	if err != nil {
		return nil, nil, err
	}
	if !h.Valid() {
		return nil, nil, fmt.Errorf("connection to %s has no socket for a BIO", conn.RemoteAddr())
	}

	m, err := engine.NewSocketBIOMethod()
	if err != nil {
		return nil, nil, err
	}
	native := engine.SocketBIOMethod()
	engine.SetCustomBIOReadMethod(m, func(b *engine.BIO, p []byte) (int, error) {
		n, err := native.Read(b, p)
		engine.BIOAppData(e, b).(*byteCounter).read += n
		return n, err
	})
	engine.SetCustomBIOWriteMethod(m, func(b *engine.BIO, p []byte) (int, error) {
		n, err := native.Write(b, p)
		engine.BIOAppData(e, b).(*byteCounter).written += n
		return n, err
	})

	b, err := engine.NewBIO(e, m)
	if err != nil {
		return nil, nil, err
	}
	counter := &byteCounter{}
	engine.SetBIOAppData(e, b, counter)
	// conn keeps ownership of the socket.
	engine.SetBIOFd(b, h, engine.BIONoClose)
	return engine.NewBIOConn(b, conn), counter, nil
}

func writeProbe(w io.Writer, conn *engine.Conn, ipChecked bool, ipErr error, counter *byteCounter) {
	cs := conn.ConnectionState()

	cipher := engine.CipherName(cs.CipherSuite)
	if cipher == "" {
		cipher = unknownCipher
	}
	proto := cs.NegotiatedProtocol
	if proto == "" {
		proto = "(none)"
	}
	ipCheck := "skipped"
	switch {
	case ipChecked && ipErr == nil:
		ipCheck = "ok"
	case ipChecked:
		ipCheck = "failed: " + ipErr.Error()
	}

	random := make([]byte, randomSize)
	clientRandom := "unavailable"
	if engine.ClientRandom(conn, random) {
		clientRandom = hex.EncodeToString(random)
	}
	key := make([]byte, masterKeySize)
	masterKey := "unavailable"
	if engine.MasterKey(conn.Session(), key) {
		masterKey = hex.EncodeToString(key)
	}

	fmt.Fprintf(w, "Engine:        %s\n", conn.Engine().Name())
	fmt.Fprintf(w, "Version:       %s\n", tls.VersionName(cs.Version))
	fmt.Fprintf(w, "Cipher:        %s (0x%04X)\n", cipher, cs.CipherSuite)
	fmt.Fprintf(w, "ALPN:          %s\n", proto)
	fmt.Fprintf(w, "Peer:          %s\n", peer.FromNetAddr(conn.Transport().RemoteAddr()))
	fmt.Fprintf(w, "IP check:      %s\n", ipCheck)
	fmt.Fprintf(w, "Client random: %s\n", clientRandom)
	fmt.Fprintf(w, "Master key:    %s\n", masterKey)
	if counter != nil {
		fmt.Fprintf(w, "BIO bytes:     read %d, written %d\n", counter.read, counter.written)
	}
}
