package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewNoteKeeperValidator()
	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)

	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, storages.TokenBlocklist, hasher, validator, cfg.App, logger),
		NoteService: NewNoteValidationService(validator).
			Wrap(NewNoteService(storages.NoteRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
