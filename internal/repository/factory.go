package repository

import (
	"github.com/meteroid-oss/meteroid/internal/cache"
	"github.com/meteroid-oss/meteroid/internal/domain/creditnote"
	"github.com/meteroid-oss/meteroid/internal/domain/customer"
	"github.com/meteroid-oss/meteroid/internal/domain/invoice"
	"github.com/meteroid-oss/meteroid/internal/domain/payment"
	"github.com/meteroid-oss/meteroid/internal/domain/plan"
	"github.com/meteroid-oss/meteroid/internal/domain/price"
	"github.com/meteroid-oss/meteroid/internal/domain/subscription"
	"github.com/meteroid-oss/meteroid/internal/domain/tenant"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	repopg "github.com/meteroid-oss/meteroid/internal/repository/postgres"
	"go.uber.org/fx"
)

// RepositoryParams holds the common dependencies every postgres-backed
// repository constructor needs.
type RepositoryParams struct {
	fx.In

	Logger *logger.Logger
	DB     *postgres.DB
	Cache  cache.Cache
}

func NewTenantRepository(p RepositoryParams) tenant.Repository {
	return repopg.NewTenantRepository(p.DB, p.Logger)
}

func NewCustomerRepository(p RepositoryParams) customer.Repository {
	return repopg.NewCustomerRepository(p.DB, p.Logger)
}

func NewPlanRepository(p RepositoryParams) plan.Repository {
	return repopg.NewPlanRepository(p.DB, p.Logger)
}

func NewPriceRepository(p RepositoryParams) price.Repository {
	return repopg.NewPriceRepository(p.DB, p.Logger)
}

func NewSubscriptionRepository(p RepositoryParams) subscription.Repository {
	return repopg.NewSubscriptionRepository(p.DB, p.Logger)
}

func NewSubscriptionComponentRepository(p RepositoryParams) subscription.ComponentRepository {
	return repopg.NewSubscriptionComponentRepository(p.DB, p.Logger)
}

func NewInvoiceRepository(p RepositoryParams) invoice.Repository {
	return repopg.NewInvoiceRepository(p.DB, p.Logger)
}

func NewPaymentRepository(p RepositoryParams) payment.Repository {
	return repopg.NewPaymentRepository(p.DB, p.Logger)
}

func NewCreditNoteRepository(p RepositoryParams) creditnote.Repository {
	return repopg.NewCreditNoteRepository(p.DB, p.Logger)
}

// Module wires all repository constructors for fx.
var Module = fx.Options(
	fx.Provide(
		NewTenantRepository,
		NewCustomerRepository,
		NewPlanRepository,
		NewPriceRepository,
		NewSubscriptionRepository,
		NewSubscriptionComponentRepository,
		NewInvoiceRepository,
		NewPaymentRepository,
		NewCreditNoteRepository,
	),
)
