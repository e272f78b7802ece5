package app_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyvernlabs/ecckit/cmd/ecckit/internal/app"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := app.NewRootCommand()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["derive"])
	assert.True(t, names["wif"])
	assert.True(t, names["address"])
}

func TestDeriveCommandProducesCompressedOutput(t *testing.T) {
	root := app.NewRootCommand()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"derive", "--hex", "0x01", "--curve", "secp256k1", "--recover-y=false"})

	err := root.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "compressed: 0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
}

func TestWIFCommandRejectsUnknownNetwork(t *testing.T) {
	root := app.NewRootCommand()
	root.SetArgs([]string{"wif", "--hex", "0x01", "--network", "regtest"})

	err := root.Execute()
	assert.Error(t, err)
}
