package service

import (
	"context"
	"encoding/json"
	"time"

	"patient-portal/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	appointmentsCacheKey = "cache:appointments"
	appointmentsCacheTTL = 5 * time.Minute
)

// AppointmentCache is the server-side stand-in for the original client's
// request cache: list reads are served from Redis until a booking or
// cancellation invalidates the entry. Cache failures are non-fatal; the
// store remains authoritative.
type AppointmentCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewAppointmentCache(client *redis.Client, log *logrus.Logger) *AppointmentCache {
	return &AppointmentCache{client: client, log: log}
}

// Get returns the cached list. ok is false on miss or any Redis failure.
func (c *AppointmentCache) Get(ctx context.Context) ([]entity.Appointment, bool) {
	data, err := c.client.Get(ctx, appointmentsCacheKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warnf("Appointment cache read failed (treating as miss): %+v", err)
		return nil, false
	}

	var appointments []entity.Appointment
	if err := json.Unmarshal(data, &appointments); err != nil {
		c.log.Warnf("Appointment cache entry corrupt (treating as miss): %+v", err)
		return nil, false
	}
	return appointments, true
}

// Set stores the list snapshot. Failures are logged and ignored.
func (c *AppointmentCache) Set(ctx context.Context, appointments []entity.Appointment) {
	data, err := json.Marshal(appointments)
	if err != nil {
		c.log.Warnf("Failed to encode appointment cache entry: %+v", err)
		return
	}
	if err := c.client.Set(ctx, appointmentsCacheKey, data, appointmentsCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to write appointment cache: %+v", err)
	}
}

// Invalidate drops the cached list so the next read reflects the write.
func (c *AppointmentCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, appointmentsCacheKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate appointment cache: %+v", err)
	}
}
