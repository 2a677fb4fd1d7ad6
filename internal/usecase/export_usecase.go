package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/export"
)

// ExportUseCase writes a company's books to disk in the supported
// exchange formats. The heavy lifting is pure formatting in the export
// package; this use case only gathers data and handles paths.
type ExportUseCase struct {
	companyRepo CompanyRepository
	accountRepo AccountRepository
	voucherRepo VoucherRepository
}

// NewExportUseCase creates a new ExportUseCase.
func NewExportUseCase(companyRepo CompanyRepository, accountRepo AccountRepository, voucherRepo VoucherRepository) *ExportUseCase {
	return &ExportUseCase{
		companyRepo: companyRepo,
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
	}
}

// ExportCSV writes vouchers.csv and voucher_rows.csv under targetPath.
// If targetPath names a .csv file it is used for the voucher file and
// the row file is written next to it.
func (uc *ExportUseCase) ExportCSV(ctx context.Context, companyID, targetPath string) (string, error) {
	vouchers, err := uc.loadVouchers(ctx, companyID)
	if err != nil {
		return "", err
	}

	voucherPath := filepath.Join(targetPath, "vouchers.csv")
	rowPath := filepath.Join(targetPath, "voucher_rows.csv")
	if strings.EqualFold(filepath.Ext(targetPath), ".csv") {
		voucherPath = targetPath
		rowPath = filepath.Join(filepath.Dir(targetPath), "voucher_rows.csv")
	}

	if err := os.MkdirAll(filepath.Dir(voucherPath), 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	voucherFile, rowFile := export.VoucherCSV(vouchers)

	if err := os.WriteFile(voucherPath, voucherFile, 0o644); err != nil {
		return "", fmt.Errorf("write voucher csv: %w", err)
	}

	if err := os.WriteFile(rowPath, rowFile, 0o644); err != nil {
		return "", fmt.Errorf("write voucher row csv: %w", err)
	}

	return fmt.Sprintf("CSV exported to %s and %s", voucherPath, rowPath), nil
}

// ExportSIE writes a SIE type 4 file under targetPath.
func (uc *ExportUseCase) ExportSIE(ctx context.Context, companyID, targetPath string) (string, error) {
	vouchers, err := uc.loadVouchers(ctx, companyID)
	if err != nil {
		return "", err
	}

	accounts, err := uc.accountRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return "", err
	}

	siePath := filepath.Join(targetPath, "export.sie")

	ext := strings.ToLower(filepath.Ext(targetPath))
	if ext == ".se" || ext == ".sie" {
		siePath = targetPath
	}

	if err := os.MkdirAll(filepath.Dir(siePath), 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	if err := os.WriteFile(siePath, export.SIE(accounts, vouchers), 0o644); err != nil {
		return "", fmt.Errorf("write sie file: %w", err)
	}

	return fmt.Sprintf("SIE exported to %s", siePath), nil
}

func (uc *ExportUseCase) loadVouchers(ctx context.Context, companyID string) ([]*domain.Voucher, error) {
	if _, err := uc.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	return uc.voucherRepo.ListByCompany(ctx, companyID, nil, nil)
}
