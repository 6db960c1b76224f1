package alert

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Poller re-derives notifications for all known users on a fixed interval.
// The interval doubles as the implicit retry after a failed fetch cycle.
type Poller struct {
	center   *Center
	interval time.Duration
	logger   *logrus.Logger
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewPoller(center *Center, interval time.Duration, logger *logrus.Logger) *Poller {
	return &Poller{
		center:   center,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (p *Poller) Start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.logger.WithField("interval", p.interval.String()).Info("AlertPoller.Start")
		for {
			select {
			case <-ticker.C:
				p.center.RefreshAll(context.Background())
			case <-p.done:
				p.logger.Info("AlertPoller.Stop")
				return
			}
		}
	}()
}

// Stop tears the poller down and waits for the loop to exit. Safe to call
// more than once.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		p.wg.Wait()
	})
}
