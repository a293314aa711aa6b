package middleware

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/geocoder-api/internal/pkg/errors"
	"github.com/geocoder-api/internal/pkg/utils"
)

const (
	// limiterIdleTTL - через сколько неактивный IP забывается
	limiterIdleTTL = 10 * time.Minute
	sweepInterval  = time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// IPRateLimiter хранит token bucket на каждый IP клиента.
// Записи без запросов дольше limiterIdleTTL удаляются.
type IPRateLimiter struct {
	limiters  sync.Map // ip -> *ipLimiter
	rate      rate.Limit
	burst     int
	logger    *zap.Logger
	now       func() time.Time
	lastSweep atomic.Int64
}

func NewIPRateLimiter(rps float64, burst int, logger *zap.Logger) *IPRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	l := &IPRateLimiter{
		rate:   rate.Limit(rps),
		burst:  burst,
		logger: logger,
		now:    time.Now,
	}
	l.lastSweep.Store(l.now().UnixNano())
	return l
}

func (l *IPRateLimiter) limiter(ip string, now time.Time) *rate.Limiter {
	entry, ok := l.limiters.Load(ip)
	if !ok {
		entry, _ = l.limiters.LoadOrStore(ip, &ipLimiter{limiter: rate.NewLimiter(l.rate, l.burst)})
	}
	e := entry.(*ipLimiter)
	e.lastSeen.Store(now.UnixNano())
	return e.limiter
}

// maybeSweep runs at most once per sweepInterval, on the request that wins the CAS.
func (l *IPRateLimiter) maybeSweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(sweepInterval) {
		return
	}
	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	l.sweep(now)
}

// sweep drops limiters idle for longer than limiterIdleTTL.
func (l *IPRateLimiter) sweep(now time.Time) {
	cutoff := now.Add(-limiterIdleTTL).UnixNano()
	removed := 0
	l.limiters.Range(func(key, value interface{}) bool {
		if value.(*ipLimiter).lastSeen.Load() < cutoff {
			l.limiters.Delete(key)
			removed++
		}
		return true
	})
	if removed > 0 {
		l.logger.Debug("Rate limiter entries evicted", zap.Int("count", removed))
	}
}

// Handler rejects requests above the per-IP rate with 429.
func (l *IPRateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := l.now()
		l.maybeSweep(now)

		ip := c.IP()
		if !l.limiter(ip, now).Allow() {
			l.logger.Warn("Rate limit exceeded",
				zap.String("ip", ip),
				zap.String("path", c.Path()),
				zap.String("request_id", RequestID(c)),
			)
			return utils.SendError(c, errors.ErrRateLimited)
		}
		return c.Next()
	}
}
