package usecase

import (
	"context"
	"time"

	"github.com/nordbok/bokforing/internal/domain"
)

// CompanyUseCase handles company registry operations.
type CompanyUseCase struct {
	txManager   TransactionManager
	companyRepo CompanyRepository
	seriesRepo  SeriesRepository
	auditRepo   AuditRepository
	idGen       IDGenerator
}

// NewCompanyUseCase creates a new CompanyUseCase.
func NewCompanyUseCase(
	txManager TransactionManager,
	companyRepo CompanyRepository,
	seriesRepo SeriesRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
) *CompanyUseCase {
	return &CompanyUseCase{
		txManager:   txManager,
		companyRepo: companyRepo,
		seriesRepo:  seriesRepo,
		auditRepo:   auditRepo,
		idGen:       idGen,
	}
}

// CreateCompanyInput represents input for creating a company.
type CreateCompanyInput struct {
	Name            string
	OrgNumber       *string
	FiscalYearStart *domain.Date
	FiscalYearEnd   *domain.Date
	Actor           string
}

// CreateCompany creates a company together with its default voucher
// series in one atomic unit.
func (uc *CompanyUseCase) CreateCompany(ctx context.Context, input CreateCompanyInput) (*domain.Company, error) {
	now := time.Now().UTC()

	actor := input.Actor
	if actor == "" {
		actor = DefaultActor
	}

	fyStart := domain.Date(DefaultFiscalYearStart)
	if input.FiscalYearStart != nil {
		fyStart = *input.FiscalYearStart
	}

	fyEnd := domain.Date(DefaultFiscalYearEnd)
	if input.FiscalYearEnd != nil {
		fyEnd = *input.FiscalYearEnd
	}

	if err := domain.ValidateRange(fyStart, fyEnd); err != nil {
		return nil, err
	}

	company := &domain.Company{
		ID:              uc.idGen.Generate(),
		Name:            input.Name,
		OrgNumber:       input.OrgNumber,
		FiscalYearStart: fyStart,
		FiscalYearEnd:   fyEnd,
		CreatedAt:       now,
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.companyRepo.Create(ctx, tx, company); err != nil {
		return nil, err
	}

	series := &domain.VoucherSeries{
		ID:          uc.idGen.Generate(),
		CompanyID:   company.ID,
		Code:        DefaultSeriesCode,
		Description: DefaultSeriesDescription,
		NextNumber:  1,
	}

	if err := uc.seriesRepo.Create(ctx, tx, series); err != nil {
		return nil, err
	}

	entry := &domain.AuditEntry{
		ID:         uc.idGen.Generate(),
		CompanyID:  company.ID,
		EntityType: domain.AuditEntityCompany,
		EntityID:   company.ID,
		Action:     domain.AuditActionCreate,
		Payload:    map[string]any{"name": company.Name},
		CreatedAt:  now,
		CreatedBy:  actor,
	}

	if err := uc.auditRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return company, nil
}

// ListCompanies lists all companies.
func (uc *CompanyUseCase) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	return uc.companyRepo.List(ctx)
}
