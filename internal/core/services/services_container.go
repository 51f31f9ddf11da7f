package services

import (
	portsrepo "github.com/SscSPs/tradeops_hub/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tradeops_hub/internal/core/ports/services"
	"github.com/SscSPs/tradeops_hub/internal/platform/config"
	"github.com/shopspring/decimal"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	defaultRate := cfg.DefaultExchangeRate
	if defaultRate.LessThanOrEqual(decimal.Zero) {
		defaultRate = config.FallbackExchangeRate
	}

	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, defaultRate)
	container.Tariff = NewTariffService(repos.TariffRepo)
	container.Checklist = NewChecklistService(repos.ChecklistRepo)

	// The cost service reads rates and tariffs through the services above.
	container.Cost = NewCostService(container.ExchangeRate, WithTariffReader(container.Tariff))

	return container
}
