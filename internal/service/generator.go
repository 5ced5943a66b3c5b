package service

import (
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	password, err := crypto.Generate(intOrDefault(req.Length, crypto.DefaultLength))
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// intOrDefault returns the dereferenced pointer value, or the fallback if nil.
func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
