package usecase

import (
	"context"
	"time"

	"github.com/nordbok/bokforing/internal/domain"
)

// AccountUseCase handles chart-of-accounts operations.
type AccountUseCase struct {
	accountRepo AccountRepository
	companyRepo CompanyRepository
	idGen       IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, companyRepo CompanyRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		companyRepo: companyRepo,
		idGen:       idGen,
	}
}

// UpsertAccountInput represents input for creating or updating an
// account. A nil ID creates a new account.
type UpsertAccountInput struct {
	ID        *string
	CompanyID string
	Number    int64
	Name      string
	Type      domain.AccountType
	VatCode   *string
	IsActive  bool
}

// UpsertAccount creates or updates an account. Deactivation flips
// IsActive; accounts are never deleted so historical rows keep
// resolving.
func (uc *AccountUseCase) UpsertAccount(ctx context.Context, input UpsertAccountInput) (*domain.Account, error) {
	if _, err := uc.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	account := &domain.Account{
		CompanyID: input.CompanyID,
		Number:    input.Number,
		Name:      input.Name,
		Type:      input.Type,
		VatCode:   input.VatCode,
		IsActive:  input.IsActive,
		CreatedAt: time.Now().UTC(),
	}

	if input.ID != nil {
		existing, err := uc.accountRepo.GetByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		if existing.CompanyID != input.CompanyID {
			return nil, domain.ErrAccountNotFound
		}

		account.ID = existing.ID
		account.CreatedAt = existing.CreatedAt
	} else {
		account.ID = uc.idGen.Generate()
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Upsert(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// ListAccounts lists a company's accounts ordered by account number.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, companyID string) ([]*domain.Account, error) {
	if _, err := uc.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	return uc.accountRepo.ListByCompany(ctx, companyID)
}
