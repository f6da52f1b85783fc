package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/dsyorkd/cert-agent/internal/logger"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute"`
	BurstSize         int           `yaml:"burst_size"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"`
	WhitelistedIPs    []string      `yaml:"whitelisted_ips"`
}

// DefaultRateLimitConfig returns the default rate limiting configuration
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		RequestsPerMinute: 60,
		BurstSize:         10,
		CleanupInterval:   5 * time.Minute,
		WhitelistedIPs:    []string{"127.0.0.1", "::1"},
	}
}

// RateLimiter manages per-IP rate limiting for admin API clients
type RateLimiter struct {
	config    *RateLimitConfig
	logger    logger.Interface
	limiters  map[string]*rate.Limiter
	mutex     sync.RWMutex
	lastClean time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(config *RateLimitConfig, log logger.Interface) *RateLimiter {
	if config == nil {
		config = DefaultRateLimitConfig()
	}

	rl := &RateLimiter{
		config:    config,
		logger:    log.WithField("component", "ratelimit"),
		limiters:  make(map[string]*rate.Limiter),
		lastClean: time.Now(),
	}

	go rl.cleanupRoutine()

	return rl
}

// RateLimit returns a rate limiting middleware
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if rl.isWhitelisted(clientIP) {
			c.Next()
			return
		}

		limiter := rl.getLimiter(clientIP)
		if !limiter.Allow() {
			rl.logger.WithFields(map[string]interface{}{
				"client_ip": clientIP,
				"method":    c.Request.Method,
				"path":      c.Request.URL.Path,
			}).Warn("Rate limit exceeded")

			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.config.RequestsPerMinute))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Minute).Unix()))

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate Limit Exceeded",
				"message":     "Too many requests, please slow down",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.config.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", int(limiter.Tokens())))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Minute).Unix()))

		c.Next()
	}
}

// getLimiter gets or creates a rate limiter for a client
func (rl *RateLimiter) getLimiter(clientIP string) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	if limiter, exists := rl.limiters[clientIP]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(
		rate.Every(time.Minute/time.Duration(rl.config.RequestsPerMinute)),
		rl.config.BurstSize,
	)
	rl.limiters[clientIP] = limiter

	return limiter
}

// isWhitelisted checks if an IP is whitelisted
func (rl *RateLimiter) isWhitelisted(ip string) bool {
	for _, whitelistedIP := range rl.config.WhitelistedIPs {
		if ip == whitelistedIP {
			return true
		}
	}
	return false
}

// cleanupRoutine periodically cleans up old limiters
func (rl *RateLimiter) cleanupRoutine() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup()
	}
}

// cleanup removes idle limiters to keep the map bounded
func (rl *RateLimiter) cleanup() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	for clientIP, limiter := range rl.limiters {
		if limiter.Tokens() >= float64(rl.config.BurstSize) && now.Sub(rl.lastClean) > rl.config.CleanupInterval {
			delete(rl.limiters, clientIP)
		}
	}

	rl.lastClean = now
	rl.logger.Debug("Rate limiter cleanup completed")
}
