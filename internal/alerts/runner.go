package alerts

import (
	"context"
	"time"

	"btc-probo-bot/internal/advlog"
	"btc-probo-bot/internal/engine"
	"btc-probo-bot/internal/logger"
	"btc-probo-bot/internal/notify"
	"btc-probo-bot/internal/trace"
)

// Runner periodically recomputes the advisory for the next IST block
// and pushes it to Telegram. One advisory per poll; overlapping runs
// are impossible because everything happens on the ticker goroutine.
type Runner struct {
	eng      *engine.Engine
	notifier *notify.Telegram

	symbol       string
	targetPrice  float64
	poll         time.Duration
	blockMinutes int

	now func() time.Time
}

func NewRunner(eng *engine.Engine, notifier *notify.Telegram, symbol string, targetPrice float64, poll time.Duration, blockMinutes int) *Runner {
	return &Runner{
		eng:          eng,
		notifier:     notifier,
		symbol:       symbol,
		targetPrice:  targetPrice,
		poll:         poll,
		blockMinutes: blockMinutes,
		now:          time.Now,
	}
}

// Run emits one advisory immediately and then once per poll interval
// until the context is cancelled.
func (r *Runner) Run(ctx context.Context) {
	logger.Info(ctx, "Auto-alert loop started",
		"target_price", r.targetPrice,
		"poll", r.poll.String(),
		"block_minutes", r.blockMinutes,
	)

	r.runOnce(ctx)

	ticker := time.NewTicker(r.poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Auto-alert loop stopped")
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	ctx, span := trace.StartSpan(ctx, "auto-alert")
	defer span.End()

	now := r.now()
	block := NextBlock(now, r.blockMinutes)

	res, err := r.eng.Recommend(ctx, r.targetPrice, UTCClock(block), now)
	if err != nil {
		logger.ErrorWithErr(ctx, "Auto-alert recommendation failed", err)
		return
	}
	snap, err := r.eng.Snapshot(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Auto-alert snapshot failed", err)
		return
	}
	assess := r.eng.Assess(res, snap)

	logger.Info(ctx, "Auto-alert computed",
		"block_ist", ISTClock(block),
		"vote", res.Vote,
		"label", assess.Label,
	)
	if err := advlog.Append(r.symbol, res, assess); err != nil {
		logger.Warn(ctx, "Failed to append advisory log", "error", err)
	}
	r.notifier.Notify(ctx, AutoAlertMessage(block, res, snap, assess, now))
}
