package controllers

import (
	"time"

	"wayfarer/pkg/utils"
)

func parseDateQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := utils.ParseFlexibleDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
