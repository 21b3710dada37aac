package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Login throttling. All helpers are no-ops when redis is not configured so the
// SQL store stays the only hard dependency.

func CanAttemptLogin(rdb *redis.Client, email string) (bool, string) {
	if rdb == nil {
		return true, ""
	}
	ctx := context.Background()
	hourKey := fmt.Sprintf("login_fail_hour_%s", email)
	cnt, _ := rdb.Get(ctx, hourKey).Int()
	if cnt >= 10 {
		return false, "Too many failed login attempts, try again later"
	}
	return true, ""
}

func MarkLoginFailed(rdb *redis.Client, email string) {
	if rdb == nil {
		return
	}
	ctx := context.Background()
	hourKey := fmt.Sprintf("login_fail_hour_%s", email)
	rdb.Incr(ctx, hourKey)
	rdb.Expire(ctx, hourKey, time.Hour)
}

func ClearLoginFailures(rdb *redis.Client, email string) {
	if rdb == nil {
		return
	}
	rdb.Del(context.Background(), fmt.Sprintf("login_fail_hour_%s", email))
}
