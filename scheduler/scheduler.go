// Package scheduler runs the periodic loops of the bot: reminder delivery,
// access-request nudges, the weekly recap and the keep-alive HTTP probe.
// Every loop recovers and logs per iteration; one faulting loop never stalls
// the others.
package scheduler

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/mbriand/atelier-bot/database"
)

var (
	loopIterations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atelier_scheduler_iterations_total",
			Help: "Total number of scheduler loop iterations.",
		},
		[]string{"loop"},
	)
	loopErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atelier_scheduler_errors_total",
			Help: "Total number of scheduler iterations that failed.",
		},
		[]string{"loop"},
	)
	recapsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "atelier_recaps_sent_total",
			Help: "Total number of weekly recaps posted.",
		},
	)
)

func init() {
	prometheus.MustRegister(loopIterations, loopErrors, recapsSent)
}

// nudgeInterval is how often pending access requests are re-announced.
const nudgeInterval = 60 * time.Minute

// Scheduler drives the periodic loops over the store and the session.
type Scheduler struct {
	Session *discordgo.Session
	Store   *database.Store
	Loc     *time.Location
	Log     zerolog.Logger
}

// New builds a scheduler.
func New(session *discordgo.Session, store *database.Store, loc *time.Location, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Session: session,
		Store:   store,
		Loc:     loc,
		Log:     log.With().Str("component", "scheduler").Logger(),
	}
}

// Start launches the loops. They stop when ctx is cancelled.
func (sc *Scheduler) Start(ctx context.Context) {
	go sc.runEvery(ctx, "reminders", time.Minute, sc.tickReminders)
	go sc.runEvery(ctx, "recap", time.Minute, sc.tickRecap)
	go sc.runEvery(ctx, "whitelist_nudge", nudgeInterval, sc.tickWhitelistNudge)
}

// runEvery ticks fn at the given interval, recovering and logging any
// iteration failure.
func (sc *Scheduler) runEvery(ctx context.Context, name string, interval time.Duration, fn func(now time.Time) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sc.iterate(name, now, fn)
		}
	}
}

func (sc *Scheduler) iterate(name string, now time.Time, fn func(now time.Time) error) {
	defer func() {
		if r := recover(); r != nil {
			loopErrors.WithLabelValues(name).Inc()
			sc.Log.Error().
				Str("loop", name).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("scheduler iteration panic recovered")
		}
	}()
	loopIterations.WithLabelValues(name).Inc()
	if err := fn(now.In(sc.Loc)); err != nil {
		loopErrors.WithLabelValues(name).Inc()
		sc.Log.Error().Str("loop", name).Err(err).Msg("scheduler iteration failed")
	}
}

// dm sends a direct message to a user.
func (sc *Scheduler) dm(userID, content string) error {
	ch, err := sc.Session.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = sc.Session.ChannelMessageSend(ch.ID, content)
	return err
}
