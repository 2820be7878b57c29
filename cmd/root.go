package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oruchain/sendtx/errors"
	"github.com/oruchain/sendtx/logx"
)

var rootCmd = &cobra.Command{
	Use:   "sendtx <amount><token> <address>",
	Short: "Submit one token transfer to an oru network",
	Long: `sendtx validates a transfer, derives the signing wallet from a secret
recovery phrase and submits exactly one transaction, then exits.

The wallet phrase is read from a file or an environment variable, never
from a flag. Exit code 0 means the chain accepted and executed the
transfer; any other exit code identifies the step that failed.

Examples:
  # Send 1000uoru using the phrase stored in wallet/wallet.key
  sendtx 1000uoru oru1m3h30wlvsf8llruxtpukdvsy0km2kum8al86ug

  # Read the phrase from an environment variable and add a memo
  sendtx -e SENDTX_MNEMONIC -m "invoice 42" 1000uoru oru1m3h30wlvsf8llruxtpukdvsy0km2kum8al86ug

  # Submit to mainnet instead of the default testnet
  sendtx -n oru-mainnet 1000uoru oru1m3h30wlvsf8llruxtpukdvsy0km2kum8al86ug`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.Errorf(errors.KindUsage,
				"expected exactly two arguments <amount><token> <address>, got %d", len(args))
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSend,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "sendtx failed: ", err)
		os.Exit(errors.ExitCode(err))
	}
}
