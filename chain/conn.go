// Package chain talks JSON-RPC to an oru gateway node.
package chain

import (
	"context"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/jhttp"

	"github.com/oruchain/sendtx/coin"
	"github.com/oruchain/sendtx/errors"
	"github.com/oruchain/sendtx/jsonx"
	"github.com/oruchain/sendtx/logx"
)

type Config struct {
	Endpoint         string
	ChainID          string
	ConnectTimeoutMs int
	CallTimeoutMs    int
}

// Conn is one live connection to a gateway. It is owned by a single
// invocation and not safe to share across transfers.
type Conn struct {
	cfg     Config
	client  *jrpc2.Client
	log     logx.Logger
	chainID string
}

// Connect opens a channel to the gateway and verifies via health.check
// that it serves the expected chain.
func Connect(ctx context.Context, cfg Config, log logx.Logger) (*Conn, error) {
	ch := jhttp.NewChannel(cfg.Endpoint, nil)
	c := &Conn{
		cfg:    cfg,
		client: jrpc2.NewClient(ch, nil),
		log:    log,
	}

	callCtx, cancel := c.budget(ctx, cfg.ConnectTimeoutMs)
	defer cancel()

	var health healthCheckResponse
	if err := c.client.CallResult(callCtx, methodHealthCheck, nil, &health); err != nil {
		_ = c.Close()
		return nil, errors.Wrap(errors.KindConnectivity, errors.ErrMsgGatewayUnreachable, err)
	}
	if cfg.ChainID != "" && health.ChainID != cfg.ChainID {
		_ = c.Close()
		return nil, errors.Errorf(errors.KindConnectivity,
			"%s: want %s, got %s", errors.ErrMsgChainMismatch, cfg.ChainID, health.ChainID)
	}
	c.chainID = health.ChainID
	log.Info("CHAIN", "connected to ", cfg.Endpoint, " chain=", health.ChainID, " height=", health.BlockHeight)
	return c, nil
}

// budget caps one RPC call; a non-positive budget leaves ctx untouched.
func (c *Conn) budget(ctx context.Context, ms int) (context.Context, context.CancelFunc) {
	if ms <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, time.Duration(ms)*time.Millisecond)
}

// ChainID reports the chain id the gateway answered with at connect.
func (c *Conn) ChainID() string {
	return c.chainID
}

// AllBalances fetches every denomination held by address.
func (c *Conn) AllBalances(ctx context.Context, address string) ([]Balance, error) {
	callCtx, cancel := c.budget(ctx, c.cfg.CallTimeoutMs)
	defer cancel()

	var res allBalancesResponse
	if err := c.client.CallResult(callCtx, methodAllBalances, allBalancesRequest{Address: address}, &res); err != nil {
		return nil, errors.Wrap(errors.KindQuery, errors.ErrMsgBalanceQuery, err)
	}
	return res.Balances, nil
}

// GetAccount fetches the current account state, used for the nonce.
func (c *Conn) GetAccount(ctx context.Context, address string) (*Account, error) {
	callCtx, cancel := c.budget(ctx, c.cfg.CallTimeoutMs)
	defer cancel()

	var res Account
	if err := c.client.CallResult(callCtx, methodGetAccount, getAccountRequest{Address: address}, &res); err != nil {
		return nil, errors.Wrap(errors.KindQuery, errors.ErrMsgAccountQuery, err)
	}
	return &res, nil
}

// SendCoins builds, signs and submits one transfer. The returned
// receipt is reported as-is; classifying a nonzero code is the
// caller's concern.
func (c *Conn) SendCoins(ctx context.Context, signer Signer, recipient string, coins []coin.Coin, memo string) (*Receipt, error) {
	account, err := c.GetAccount(ctx, signer.Address())
	if err != nil {
		return nil, err
	}

	msg := txMsgParams{
		Sender:    signer.Address(),
		Recipient: recipient,
		Coins:     toWireCoins(coins),
		Nonce:     account.Nonce + 1,
		Timestamp: uint64(time.Now().Unix()),
		Memo:      memo,
		PubKey:    signer.PubKey(),
	}
	payload, err := jsonx.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(errors.KindInternal, "transaction encoding failed", err)
	}
	signature, err := signer.Sign(payload)
	if err != nil {
		return nil, errors.Wrap(errors.KindCredential, "transaction signing failed", err)
	}
	c.log.Debug("CHAIN", "submitting tx nonce=", msg.Nonce, " sender=", logx.Shorten(msg.Sender))

	callCtx, cancel := c.budget(ctx, c.cfg.CallTimeoutMs)
	defer cancel()

	var receipt Receipt
	if err := c.client.CallResult(callCtx, methodSendCoins, sendCoinsParams{TxMsg: msg, Signature: signature}, &receipt); err != nil {
		return nil, errors.Wrap(errors.KindBroadcast, errors.ErrMsgBroadcast, err)
	}
	return &receipt, nil
}

// Close closes the underlying channel.
func (c *Conn) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
