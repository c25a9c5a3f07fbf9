package service

import (
	"time"

	"github.com/waskull/hotelia/internal/service/ports"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// NewSystemClock returns the wall clock used outside tests.
func NewSystemClock() ports.Clock { return systemClock{} }
