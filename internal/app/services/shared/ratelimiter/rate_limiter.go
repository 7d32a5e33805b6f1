package ratelimiter

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultWindowSec = 60

// ResourceLimiter counts attempts per resource in fixed windows stored in Redis.
// Each window counter expires one second after the window closes.
type ResourceLimiter struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewResourceLimiter(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.ResourceLimiter {
	return &ResourceLimiter{
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

func buildLimiterKey(group, resource string, windowID int64) string {
	return fmt.Sprintf("%s:%s:%s:%d", constvars.LimiterKeyPrefix, group, resource, windowID)
}

// ApplyResourceLimiter denies the call once the group/resource counter passes MaxQuota
// and reports the seconds left until the next window opens.
func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *contracts.ApplyResourceLimiterInput) (*contracts.ApplyResourceLimiterOutput, error) {
	if in == nil {
		return &contracts.ApplyResourceLimiterOutput{Allowed: false}, exceptions.ErrServerProcess(errors.New(constvars.ErrDevResourceLimiterNilInput))
	}
	if in.MaxQuota <= 0 {
		return &contracts.ApplyResourceLimiterOutput{Allowed: true}, nil
	}

	windowSec := in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = defaultWindowSec
	}

	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	if resource == "" || group == "" {
		return &contracts.ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / int64(windowSec)
	key := buildLimiterKey(group, resource, windowID)

	attempts, err := l.RedisRepository.IncrementWithTTL(ctx, key, time.Duration(windowSec+1)*time.Second)
	if err != nil {
		l.Log.Error("ResourceLimiter.ApplyResourceLimiter increment failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return &contracts.ApplyResourceLimiterOutput{Allowed: false}, err
	}

	if attempts <= in.MaxQuota {
		return &contracts.ApplyResourceLimiterOutput{Allowed: true}, nil
	}

	windowEnd := (windowID + 1) * int64(windowSec)
	return &contracts.ApplyResourceLimiterOutput{
		Allowed:        false,
		RetryAfterSecs: int(windowEnd-now.Unix()) + 1,
	}, nil
}
