package seeding

import "errors"

var (
	// ErrNameRepositoryRequired is returned when a name repository is not provided.
	ErrNameRepositoryRequired = errors.New("name repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")
)
