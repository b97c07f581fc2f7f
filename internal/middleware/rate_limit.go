package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/auth"
	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/utils"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

// PlanLookup resolves a tenant's subscription plan for rate limiting.
type PlanLookup interface {
	Plan(ctx context.Context, tenantID string) (domain.SubscriptionPlan, error)
}

type RateLimitMiddleware struct {
	redis  *redis.Client
	plans  PlanLookup
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, plans PlanLookup, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		plans:  plans,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit throttles per tenant according to its subscription plan.
// Super admins carry no tenant and pass through. Redis failures fail open.
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(string(utils.ClaimsKey))
		if !exists {
			c.Next()
			return
		}
		claims, ok := value.(*auth.Claims)
		if !ok || claims.TenantID == nil {
			c.Next()
			return
		}

		tenantID := *claims.TenantID
		limit := m.tenantLimit(c.Request.Context(), tenantID)
		key := fmt.Sprintf("rate_limit:tenant:%s", tenantID)

		current, err := m.redis.Get(c.Request.Context(), key).Int()
		if err != nil && err != redis.Nil {
			m.logger.Error("redis error in rate limiting", err)
			c.Next()
			return
		}

		if current >= limit {
			setRateLimitHeaders(c, limit, 0)
			c.JSON(http.StatusTooManyRequests, dto.NewError("rate limit exceeded"))
			c.Abort()
			return
		}

		pipe := m.redis.Pipeline()
		pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, time.Minute)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			m.logger.Error("redis pipeline error in rate limiting", err)
		}

		remaining := limit - (current + 1)
		if remaining < 0 {
			remaining = 0
		}
		setRateLimitHeaders(c, limit, remaining)

		c.Next()
	}
}

// GlobalRateLimit throttles per client IP, in front of authentication.
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())

		current, err := m.redis.Get(c.Request.Context(), key).Int()
		if err != nil && err != redis.Nil {
			m.logger.Error("redis error in global rate limiting", err)
			c.Next()
			return
		}

		if current >= limit {
			setRateLimitHeaders(c, limit, 0)
			c.JSON(http.StatusTooManyRequests, dto.NewError("rate limit exceeded"))
			c.Abort()
			return
		}

		pipe := m.redis.Pipeline()
		pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, time.Minute)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			m.logger.Error("redis pipeline error in global rate limiting", err)
		}

		remaining := limit - (current + 1)
		if remaining < 0 {
			remaining = 0
		}
		setRateLimitHeaders(c, limit, remaining)

		c.Next()
	}
}

// tenantLimit resolves the per-minute ceiling for a tenant's plan, cached in
// Redis so the database is not hit on every request.
func (m *RateLimitMiddleware) tenantLimit(ctx context.Context, tenantID string) int {
	cacheKey := fmt.Sprintf("rate_limit:plan:%s", tenantID)

	if cached, err := m.redis.Get(ctx, cacheKey).Result(); err == nil {
		if limit, ok := domain.PlanRateLimits[domain.SubscriptionPlan(cached)]; ok {
			return limit
		}
	}

	plan, err := m.plans.Plan(ctx, tenantID)
	if err != nil {
		m.logger.Warn("plan lookup failed, using default rate limit",
			zap.String("tenant_id", tenantID),
			zap.Error(err))
		return m.config.DefaultTenantLimit
	}

	if err := m.redis.Set(ctx, cacheKey, string(plan), 5*time.Minute).Err(); err != nil {
		m.logger.Warn("failed to cache tenant plan", zap.Error(err))
	}

	if limit, ok := domain.PlanRateLimits[plan]; ok {
		return limit
	}
	return m.config.DefaultTenantLimit
}

func setRateLimitHeaders(c *gin.Context, limit, remaining int) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))
}
