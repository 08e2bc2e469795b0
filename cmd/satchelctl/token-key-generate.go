package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// tokenKeyGenerateCmd represents the token-key > generate command
var tokenKeyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a token-signing key",
	Long: `
Generate a token-signing key

Use this command to generate a new Base64-encoded 256 bit signing key. Once
generated, this key should be placed into the environment of the Satchel
server. It is used to sign and verify all access tokens the server issues.

Example:

$ export SATCHEL_TOKEN_KEY="$(satchelctl token-key generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		bytes := make([]byte, 32)
		if _, err := rand.Read(bytes); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate key: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s", base64.StdEncoding.Strict().EncodeToString(bytes))
	},
}

func init() {
	tokenKeyCmd.AddCommand(tokenKeyGenerateCmd)
}
