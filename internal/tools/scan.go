package tools

import (
	"context"

	apperrors "github.com/josephjohncox/dotvault/internal/errors"
	"github.com/josephjohncox/dotvault/internal/logger"
	"github.com/josephjohncox/dotvault/internal/toolrun"
)

// SecretScan runs a secret scanner over the config directory before it is
// pushed anywhere. gitleaks is preferred; trufflehog is the fallback.
type SecretScan struct {
	Runner toolrun.Runner
	Log    *logger.Logger
}

func NewSecretScan(r toolrun.Runner, log *logger.Logger) *SecretScan {
	return &SecretScan{Runner: r, Log: log}
}

func (s *SecretScan) Check(ctx context.Context, dir string) error {
	err := s.Runner.Run(ctx, "gitleaks", []string{"detect", "--source", dir, "--no-banner"}, nil)
	if !apperrors.IsType(err, apperrors.TypeDependency) {
		return err
	}

	s.Log.Warn("gitleaks not installed, falling back to trufflehog")
	err = s.Runner.Run(ctx, "trufflehog", []string{"filesystem", dir, "--fail"}, nil)
	if !apperrors.IsType(err, apperrors.TypeDependency) {
		return err
	}

	return apperrors.New(apperrors.TypeDependency,
		"no secret scanner available",
		"Install gitleaks or trufflehog to scan the config repository before syncing.")
}
