// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/alpn"
)

func (a *app) alpnCmd() *cobra.Command {
	var decode bool

	cmd := &cobra.Command{
		Use:   "alpn [PROTOCOL...]",
		Short: "Encode protocol names as an ALPN protocol list, printed in hex",
		Long: "Encode protocol names as an ALPN protocol list, printed in hex.\n" +
			"Without arguments the configured protocols are encoded. With --decode,\n" +
			"the argument is a hex encoded list and its protocols are printed one per line.",
		Example: "  tls-engine-utils alpn h2 http/1.1\n  tls-engine-utils alpn --decode 02683208687474702f312e31",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if decode {
				if len(args) != 1 {
					return fmt.Errorf("--decode takes exactly one hex argument, got %d", len(args))
				}
				wire, err := hex.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("invalid hex: %w", err)
				}
				protocols, err := alpn.Decode(wire)
				if err != nil {
					return err
				}
				for _, p := range protocols {
					fmt.Fprintln(out, p)
				}
				a.done()
				return nil
			}

			protocols := args
			if len(protocols) == 0 {
				protocols = a.cfg.ALPN
			}
			wire, err := alpn.Encode(protocols)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, hex.EncodeToString(wire))
			a.done()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "decode a hex encoded protocol list")
	return cmd
}
