package app

import (
	"github.com/spf13/cobra"

	"github.com/wyvernlabs/ecckit/curve"
	"github.com/wyvernlabs/ecckit/errs"
	"github.com/wyvernlabs/ecckit/key"
)

func addPrivateKeyFlags(cmd *cobra.Command) (curveID, hexKey, decimalKey, base64Key *string) {
	curveID = cmd.Flags().String("curve", string(curve.Secp256k1), "curve id (secp256k1, secp256r1, curve25519)")
	hexKey = cmd.Flags().String("hex", "", "private key as hex")
	decimalKey = cmd.Flags().String("decimal", "", "private key as decimal")
	base64Key = cmd.Flags().String("base64", "", "private key as base64")
	return
}

func loadPrivateKey(curveID, hexKey, decimalKey, base64Key string) (*key.PrivateKey, error) {
	d, err := curve.ByID(curve.ID(curveID))
	if err != nil {
		return nil, err
	}

	switch {
	case hexKey != "":
		return key.FromHex(d, hexKey)
	case decimalKey != "":
		return key.FromDecimal(d, decimalKey)
	case base64Key != "":
		return key.FromBase64(d, base64Key)
	default:
		return nil, errs.Wrap(errs.ParseError, "one of --hex, --decimal, --base64 is required")
	}
}
