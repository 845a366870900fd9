package audit

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type status struct {
	passwordsScored uint64
	start           time.Time
	ticker          *time.Ticker
	progress        chan bool
}

func newStatus() *status {
	return &status{
		start:    time.Now(),
		ticker:   time.NewTicker(10 * time.Second),
		progress: make(chan bool),
	}
}

// BeginProgress reports audit throughput every 10 seconds.
func (s *status) BeginProgress() {
	go func() {
		for {
			select {
			case <-s.progress:
				return
			case <-s.ticker.C:
				log.Info().Msgf("%d passwords scored. %.0f passwords/s",
					atomic.LoadUint64(&s.passwordsScored), s.perSecond())
			}
		}
	}()
}

func (s *status) PasswordScored() {
	atomic.AddUint64(&s.passwordsScored, 1)
}

func (s *status) perSecond() float64 {
	elapsed := time.Since(s.start)
	if elapsed.Nanoseconds() > 0 {
		return float64(atomic.LoadUint64(&s.passwordsScored)) / elapsed.Seconds()
	}
	return float64(atomic.LoadUint64(&s.passwordsScored))
}

func (s *status) Done() {
	s.progress <- true
	s.ticker.Stop()

	p := message.NewPrinter(language.English)
	log.Info().Msgf("finished scoring %s passwords in %v. %.0f passwords/s",
		p.Sprintf("%d", atomic.LoadUint64(&s.passwordsScored)), time.Since(s.start), s.perSecond())
}
