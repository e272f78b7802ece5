package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wyvernlabs/ecckit/address"
	"github.com/wyvernlabs/ecckit/errs"
)

func newWIFCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wif",
		Short: "Encode a private key in Wallet Import Format",
	}
	curveID, hexKey, decimalKey, base64Key := addPrivateKeyFlags(cmd)
	compressed := cmd.Flags().Bool("compressed", true, "use the compressed WIF envelope")
	network := cmd.Flags().String("network", "mainnet", "network: mainnet or testnet")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		priv, err := loadPrivateKey(*curveID, *hexKey, *decimalKey, *base64Key)
		if err != nil {
			return err
		}

		net, err := networkByName(*network)
		if err != nil {
			return err
		}

		fmt.Println(address.WIF(priv, net, *compressed))
		return nil
	}
	return cmd
}

func networkByName(name string) (address.Network, error) {
	switch name {
	case "mainnet":
		return address.Mainnet, nil
	case "testnet":
		return address.Testnet, nil
	default:
		return address.Network{}, errs.Wrap(errs.ParseError, "unknown network %q", name)
	}
}
