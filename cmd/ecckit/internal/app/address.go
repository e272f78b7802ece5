package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wyvernlabs/ecckit/address"
	"github.com/wyvernlabs/ecckit/errs"
	"github.com/wyvernlabs/ecckit/key"
	"github.com/wyvernlabs/ecckit/rng"
)

func newAddressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive a wallet address from a private scalar",
	}
	curveID, hexKey, decimalKey, base64Key := addPrivateKeyFlags(cmd)
	compressed := cmd.Flags().Bool("compressed", true, "use the compressed public key encoding")
	network := cmd.Flags().String("network", "mainnet", "network: mainnet or testnet")
	format := cmd.Flags().String("format", "p2pkh", "address format: p2pkh or zilliqa")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		priv, err := loadPrivateKey(*curveID, *hexKey, *decimalKey, *base64Key)
		if err != nil {
			return err
		}

		pub, err := key.Derive(priv, true, rng.Secure())
		if err != nil {
			return err
		}

		switch *format {
		case "p2pkh":
			net, err := networkByName(*network)
			if err != nil {
				return err
			}
			fmt.Println(address.P2PKH(pub, net, *compressed))
		case "zilliqa":
			fmt.Println(address.ZilliqaFingerprint(pub, *compressed))
		default:
			return errs.Wrap(errs.ParseError, "unknown address format %q", *format)
		}
		return nil
	}
	return cmd
}
