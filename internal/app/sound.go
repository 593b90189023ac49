package app

import (
	"errors"

	"github.com/cristianoliveira/shizuku/internal/cue"
	apperrors "github.com/cristianoliveira/shizuku/internal/errors"
)

// ErrSoundTestFailed is returned when the test drop could not be played.
var ErrSoundTestFailed = errors.New("sound test failed")

// SoundClient defines dependencies required by the sound command.
type SoundClient interface {
	Test() cue.Result
}

// SoundUseCase runs the audio diagnostic.
type SoundUseCase struct {
	client SoundClient
	out    apperrors.ErrorHandler
}

// NewSoundUseCase creates a sound use-case.
func NewSoundUseCase(client SoundClient) *SoundUseCase {
	if client == nil {
		panic("NewSoundUseCase: client dependency cannot be nil")
	}
	return &SoundUseCase{client: client, out: apperrors.NewDefaultCLIHandler()}
}

// Test plays one drop and reports the hint shown in the TUI.
func (u *SoundUseCase) Test() (cue.Result, error) {
	result := u.client.Test()
	switch result {
	case cue.ResultOK:
		u.out.Success(result.Hint())
	case cue.ResultMuted:
		u.out.Warning(result.Hint())
	default:
		u.out.Error(result.Hint())
		return result, ErrSoundTestFailed
	}
	return result, nil
}
