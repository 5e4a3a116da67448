package service

import (
	"errors"
	"strconv"

	"ecommerce/internal/domain"
	"ecommerce/internal/metrics"
	"ecommerce/internal/repository"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrEmailExists = errors.New("email already exists")
)

// translate maps store errors onto the service sentinels.
func translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrEmailExists):
		return ErrEmailExists
	}
	return err
}

func productLabel(id int) string {
	return "Product " + strconv.Itoa(id)
}

// recordActivity reports kind for actor. Anonymous requests are not tracked.
func recordActivity(rec EventRecorder, actor domain.Actor, fallback string, kind metrics.ActivityType) {
	if !actor.Present() {
		return
	}
	rec.RecordUserActivity(metrics.UserActivityEvent{
		UserID:       string(actor.UserID),
		UserName:     actor.Name(fallback),
		ActivityType: kind,
	})
}
