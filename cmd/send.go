package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oruchain/sendtx/chain"
	"github.com/oruchain/sendtx/config"
	"github.com/oruchain/sendtx/errors"
	"github.com/oruchain/sendtx/journal"
	"github.com/oruchain/sendtx/jsonx"
	"github.com/oruchain/sendtx/logx"
	"github.com/oruchain/sendtx/transfer"
	"github.com/oruchain/sendtx/wallet"
)

type SendConfig struct {
	ConfigPath       string
	ClientConfigPath string
	Network          string
	WalletFile       string
	WalletEnv        string
	Memo             string
	IgnorePending    bool
	Verbose          bool
}

var sendConfig SendConfig

func init() {
	rootCmd.PersistentFlags().StringVarP(&sendConfig.ConfigPath, "config", "c", config.DefaultConfigPath, "path to the sendtx config file")
	rootCmd.PersistentFlags().StringVar(&sendConfig.ClientConfigPath, "client-config", config.DefaultClientConfigPath, "path to the rpc/journal tuning file")
	rootCmd.PersistentFlags().StringVarP(&sendConfig.Network, "network", "n", "", "network id to submit to (default taken from config)")
	rootCmd.PersistentFlags().StringVarP(&sendConfig.WalletFile, "wallet-file", "f", "", "file holding the secret recovery phrase")
	rootCmd.PersistentFlags().StringVarP(&sendConfig.WalletEnv, "wallet-env", "e", "", "environment variable holding the secret recovery phrase")
	rootCmd.PersistentFlags().StringVarP(&sendConfig.Memo, "memo", "m", "", "memo attached to the transfer")
	rootCmd.PersistentFlags().BoolVar(&sendConfig.IgnorePending, "ignore-pending", false, "resend even if a matching transfer is still pending")
	rootCmd.PersistentFlags().BoolVarP(&sendConfig.Verbose, "verbose", "v", false, "verbose output")
}

func runSend(cmd *cobra.Command, args []string) error {
	// Arguments are checked before anything is loaded or opened.
	req, err := transfer.NewRequest(args[0], args[1])
	if err != nil {
		return err
	}

	// The default config path is optional; an explicitly flagged one
	// must exist.
	appCfg, err := config.LoadAppConfig(sendConfig.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) && !cmd.Flags().Changed("config") {
			appCfg = config.Default()
		} else {
			return errors.Wrap(errors.KindUsage, "could not load config "+sendConfig.ConfigPath, err)
		}
	}
	log := logx.New(logx.Options{
		Filename:   appCfg.Log.File,
		MaxSizeMB:  appCfg.Log.MaxSizeMB,
		MaxAgeDays: appCfg.Log.MaxAgeDays,
		Console:    os.Stderr,
		Verbose:    sendConfig.Verbose,
	})
	logx.SetDefault(log)

	networkID := sendConfig.Network
	if networkID == "" {
		networkID = appCfg.DefaultNetwork
	}
	network, err := appCfg.Network(networkID)
	if err != nil {
		return err
	}

	rpcCfg, err := config.LoadRPCConfig(sendConfig.ClientConfigPath)
	if err != nil {
		return err
	}
	journalCfg, err := config.LoadJournalConfig(sendConfig.ClientConfigPath)
	if err != nil {
		return err
	}

	// Wallet flags override the configured source; either way exactly
	// one source must remain.
	walletFile, walletEnv := sendConfig.WalletFile, sendConfig.WalletEnv
	if walletFile == "" && walletEnv == "" {
		walletFile, walletEnv = appCfg.Wallet.File, appCfg.Wallet.Env
	}
	source, err := wallet.NewSource(walletFile, walletEnv)
	if err != nil {
		return err
	}
	log.Debug("CMD", "network=", network.ID, " credential=", source.Describe())

	var jnl transfer.Journal
	if !journalCfg.Disabled {
		j, err := journal.Open(appCfg.JournalPath)
		if err != nil {
			return errors.Wrap(errors.KindInternal, "could not open the broadcast journal", err)
		}
		defer j.Close()
		jnl = j
	}

	// An interrupt before the broadcast starts aborts cleanly; the
	// broadcast itself runs on a non-cancellable context.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := &transfer.Pipeline{
		Source:  source,
		Prefix:  network.Prefix,
		Network: network.ID,
		Dial: func(ctx context.Context) (transfer.Conn, error) {
			conn, err := chain.Connect(ctx, chain.Config{
				Endpoint:         network.Endpoint,
				ChainID:          network.ChainID,
				ConnectTimeoutMs: rpcCfg.ConnectTimeoutMs,
				CallTimeoutMs:    rpcCfg.CallTimeoutMs,
			}, log)
			if err != nil {
				return nil, err
			}
			return conn, nil
		},
		Journal:       jnl,
		Memo:          sendConfig.Memo,
		IgnorePending: sendConfig.IgnorePending,
		Log:           log,
	}

	receipt, err := p.Run(ctx, req)
	if receipt != nil {
		// The report goes to stdout on success and on logical failure;
		// diagnostics stay on stderr and in the log file.
		if encErr := jsonx.NewEncoder(os.Stdout).Encode(receipt); encErr != nil && err == nil {
			err = encErr
		}
	}
	return err
}
