package transfer

import (
	"context"
	"strings"
	"time"

	"github.com/oruchain/sendtx/chain"
	"github.com/oruchain/sendtx/coin"
	"github.com/oruchain/sendtx/errors"
	"github.com/oruchain/sendtx/journal"
	"github.com/oruchain/sendtx/logx"
	"github.com/oruchain/sendtx/wallet"
)

// Conn is the slice of the gateway connection the pipeline drives.
// *chain.Conn satisfies it; tests substitute an in-memory fake.
type Conn interface {
	AllBalances(ctx context.Context, address string) ([]chain.Balance, error)
	SendCoins(ctx context.Context, signer chain.Signer, recipient string, coins []coin.Coin, memo string) (*chain.Receipt, error)
	Close() error
}

var _ Conn = (*chain.Conn)(nil)

// Dialer opens the connection once the pipeline is ready to touch the
// network. Keeping the dial behind a closure lets the credential steps
// run first; a missing wallet must not cost a connection attempt.
type Dialer func(ctx context.Context) (Conn, error)

// Journal is the broadcast journal as the pipeline consumes it. A nil
// Journal disables the re-run guard.
type Journal interface {
	Pending(fingerprint string) (*journal.Entry, error)
	Begin(fingerprint string, e journal.Entry) (*journal.Entry, error)
	Abort(fingerprint string) error
	Complete(fingerprint string, code uint32, height int64, txHash string) error
}

// Pipeline drives one transfer end to end. All collaborators are
// injected; the zero value is not usable.
type Pipeline struct {
	Source        wallet.CredentialSource
	Prefix        string
	Network       string
	Dial          Dialer
	Journal       Journal
	Memo          string
	IgnorePending bool
	Log           logx.Logger
}

// Run executes one transfer: resolve the credential, derive the wallet,
// check the journal, connect, log destination balances, broadcast,
// settle the journal, classify the receipt. Each step fails closed and
// aborts the rest. On a logical failure the receipt is returned
// together with the error so the caller can still report
// code/height/hash.
func (p *Pipeline) Run(ctx context.Context, req Request) (*chain.Receipt, error) {
	log := p.Log
	if log == nil {
		log = logx.Nop()
	}

	// Credential work happens before any network traffic.
	mnemonic, err := p.Source.Resolve()
	if err != nil {
		return nil, err
	}
	w, err := wallet.Derive(mnemonic, p.Prefix)
	if err != nil {
		return nil, err
	}
	log.Info("TRANSFER", "sending ", req.Coin.String(), " from ", logx.Shorten(w.Address()), " to ", logx.Shorten(req.Destination))

	fingerprint := journal.Fingerprint(p.Network, w.Address(), req.Destination, req.Coin.Denom, req.Coin.Amount.Dec())
	if p.Journal != nil && !p.IgnorePending {
		pending, err := p.Journal.Pending(fingerprint)
		if err != nil {
			return nil, errors.Wrap(errors.KindInternal, "journal lookup failed", err)
		}
		if pending != nil {
			return nil, errors.Errorf(errors.KindBroadcast, "%s (attempt %s started %s)",
				errors.ErrMsgPendingTransfer, pending.ID, time.Unix(pending.CreatedAt, 0).UTC().Format(time.RFC3339))
		}
	}

	conn, err := p.Dial(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	balances, err := conn.AllBalances(ctx, req.Destination)
	if err != nil {
		return nil, err
	}
	if len(balances) == 0 {
		log.Info("BALANCE", "destination ", logx.Shorten(req.Destination), " holds no funds yet")
	}
	for _, b := range balances {
		log.Debug("BALANCE", b.Amount, b.Denom)
		// Factory denoms look like factory/<creator>/<subdenom>; the
		// ones minted by the destination itself are worth surfacing.
		if parts := strings.Split(b.Denom, "/"); len(parts) > 2 && parts[1] == req.Destination {
			log.Info("BALANCE", "destination-minted ", parts[2], "=", b.Amount)
		}
	}

	if p.Journal != nil {
		if _, err := p.Journal.Begin(fingerprint, journal.Entry{
			Network:   p.Network,
			Sender:    w.Address(),
			Recipient: req.Destination,
			Denom:     req.Coin.Denom,
			Amount:    req.Coin.Amount.Dec(),
		}); err != nil {
			return nil, errors.Wrap(errors.KindInternal, "journal write failed", err)
		}
	}

	// From here the transfer may land on chain even if the caller goes
	// away, so the broadcast itself is not cancellable.
	receipt, err := conn.SendCoins(context.WithoutCancel(ctx), w, req.Destination, []coin.Coin{req.Coin}, p.Memo)
	if err != nil {
		// Only a failed submission call leaves the outcome unknown.
		// Anything else means the transaction never left this process,
		// so the entry can be released instead of blocking a retry.
		if p.Journal != nil && !errors.IsKind(err, errors.KindBroadcast) {
			if aerr := p.Journal.Abort(fingerprint); aerr != nil {
				log.Warn("JOURNAL", "could not release entry ", fingerprint, ": ", aerr)
			}
		}
		return nil, err
	}

	if p.Journal != nil {
		if err := p.Journal.Complete(fingerprint, receipt.Code, receipt.Height, receipt.TxHash); err != nil {
			// The transfer already landed; bookkeeping must not turn it
			// into a reported failure.
			log.Warn("JOURNAL", "could not settle entry ", fingerprint, ": ", err)
		}
	}

	if receipt.Code != 0 {
		log.Error("TRANSFER", "rejected code=", receipt.Code, " height=", receipt.Height, " raw=", receipt.RawLog)
		if receipt.RawLog != "" {
			return receipt, errors.Errorf(errors.KindLogicalFailure, "%s: code %d: %s", errors.ErrMsgRejected, receipt.Code, receipt.RawLog)
		}
		return receipt, errors.Errorf(errors.KindLogicalFailure, "%s: code %d", errors.ErrMsgRejected, receipt.Code)
	}
	log.Info("TRANSFER", "confirmed height=", receipt.Height, " tx=", receipt.TxHash)
	return receipt, nil
}
