package services

import (
	"fmt"

	portsrepo "github.com/qrtclosure/qrt_closure_app/internal/core/ports/repositories"
	portssvc "github.com/qrtclosure/qrt_closure_app/internal/core/ports/services"
	"github.com/qrtclosure/qrt_closure_app/internal/platform/config"
	"github.com/qrtclosure/qrt_closure_app/internal/platform/spreadsheet"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	headerMapping, err := spreadsheet.LoadHeaderMapping(cfg.ImportMappingFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load import header mapping: %w", err)
	}

	return &portssvc.ServiceContainer{
		Document: NewDocumentService(
			repos.DocumentRepo,
			repos.LineRepo,
			WithLineImporter(spreadsheet.NewReader(headerMapping)),
		),
		Register: NewRegisterService(
			repos.DocumentRepo,
			repos.LineRepo,
			WithDefaultColumnMode(cfg.ColumnMode),
		),
	}, nil
}
