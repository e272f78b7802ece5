package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wyvernlabs/ecckit/internal/telemetry"
	"github.com/wyvernlabs/ecckit/key"
	"github.com/wyvernlabs/ecckit/rng"
)

func newDeriveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a public key from a private scalar",
	}
	curveID, hexKey, decimalKey, base64Key := addPrivateKeyFlags(cmd)
	recoverY := cmd.Flags().Bool("recover-y", true, "recover the y-coordinate on Montgomery curves")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		priv, err := loadPrivateKey(*curveID, *hexKey, *decimalKey, *base64Key)
		if err != nil {
			return err
		}

		pub, err := key.Derive(priv, *recoverY, rng.Secure())
		if err != nil {
			return err
		}

		telemetry.Get().Info().
			Str("curve", string(priv.Curve.ID)).
			Str("compressed", pub.CompressedHex()).
			Msg("derived public key")
		fmt.Fprintln(cmd.OutOrStdout(), "compressed:", pub.CompressedHex())
		if *recoverY {
			fmt.Fprintln(cmd.OutOrStdout(), "uncompressed:", pub.UncompressedHex())
		}
		return nil
	}
	return cmd
}
