package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Dan9191/credit-simulator/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const refreshTimeout = 30 * time.Second

// Refresher reloads the reference rate into the cache.
type Refresher interface {
	RefreshReferenceRate(ctx context.Context) (models.ReferenceRate, error)
}

// RateRefresher periodically refreshes the cached reference rate.
type RateRefresher struct {
	cron      *cron.Cron
	refresher Refresher
	log       *logrus.Logger
	initial   sync.WaitGroup
}

// NewRateRefresher schedules refresher on spec, a standard cron expression or
// a descriptor such as "@every 6h".
func NewRateRefresher(spec string, refresher Refresher, log *logrus.Logger) (*RateRefresher, error) {
	r := &RateRefresher{
		cron:      cron.New(),
		refresher: refresher,
		log:       log,
	}
	if _, err := r.cron.AddFunc(spec, r.run); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return r, nil
}

// Start runs one refresh immediately and then follows the schedule.
func (r *RateRefresher) Start() {
	r.initial.Add(1)
	go func() {
		defer r.initial.Done()
		r.run()
	}()
	r.cron.Start()
}

// Stop halts the schedule and waits for running refreshes to finish,
// including the initial one.
func (r *RateRefresher) Stop() {
	<-r.cron.Stop().Done()
	r.initial.Wait()
}

func (r *RateRefresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	rate, err := r.refresher.RefreshReferenceRate(ctx)
	if err != nil {
		r.log.WithError(err).Warn("Reference rate refresh failed")
		return
	}
	r.log.WithFields(logrus.Fields{
		"series":  rate.Series,
		"annual":  rate.AnnualPercent,
		"monthly": rate.MonthlyPercent,
		"date":    rate.ReferenceDate,
	}).Info("Reference rate refreshed")
}
