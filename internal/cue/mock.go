package cue

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cristianoliveira/shizuku/internal/timer"
)

// MockOutput is a testify mock of Output.
type MockOutput struct {
	mock.Mock
}

var _ Output = (*MockOutput)(nil)

func (m *MockOutput) Unlock() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockOutput) Play(sound timer.Sound, volume float64) error {
	args := m.Called(sound, volume)
	return args.Error(0)
}

func (m *MockOutput) Vibrate(d time.Duration) error {
	args := m.Called(d)
	return args.Error(0)
}
