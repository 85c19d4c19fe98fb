package services

import (
	stderrors "errors"

	"github.com/vytor/vocabflash/internal/errors"
	"github.com/vytor/vocabflash/internal/generator"
	"github.com/vytor/vocabflash/internal/repository"
)

// storeError maps a repository failure for filename onto an AppError.
func storeError(err error, filename string) *errors.AppError {
	switch {
	case stderrors.Is(err, repository.ErrInvalidFilename):
		return errors.NewValidationError("filename", err.Error())
	case stderrors.Is(err, repository.ErrSetNotFound):
		return errors.NewNotFoundError("vocabulary set", filename)
	case stderrors.Is(err, repository.ErrSetExists):
		return errors.NewConflictError("vocabulary set", filename)
	default:
		return errors.NewStorageError(err)
	}
}

// generatorError maps a generator failure onto an AppError.
func generatorError(err error) *errors.AppError {
	switch {
	case stderrors.Is(err, generator.ErrRateLimited):
		return errors.NewRateLimitedError(err)
	case stderrors.Is(err, generator.ErrRejected):
		return errors.NewUpstreamRejectedError(err)
	case stderrors.Is(err, generator.ErrMalformed):
		return errors.NewUpstreamMalformedError(err)
	default:
		return errors.NewUpstreamUnavailableError(err)
	}
}
