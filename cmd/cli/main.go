package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bokforing-cli",
		Short: "Bokforing CLI tool",
		Long:  `A command line interface for interacting with the Bokforing API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Bokforing API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(listCompaniesCmd())
	rootCmd.AddCommand(listVouchersCmd())
	rootCmd.AddCommand(journalCmd())
	rootCmd.AddCommand(ledgerCmd())
	rootCmd.AddCommand(lockPeriodCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func listCompaniesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "companies",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			var companies []map[string]any
			if err := getJSON("/api/v1/companies", &companies); err != nil {
				return err
			}

			printJSON(companies)

			return nil
		},
	}
}

func listVouchersCmd() *cobra.Command {
	var companyID, from, to string

	cmd := &cobra.Command{
		Use:   "vouchers",
		Short: "List a company's vouchers",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/companies/%s/vouchers?from=%s&to=%s", companyID, from, to)

			var vouchers []struct {
				VoucherNumber int64  `json:"voucher_number"`
				Date          string `json:"date"`
				Description   string `json:"description"`
				PostedAt      *any   `json:"posted_at"`
				Rows          []struct {
					DebitCents int64 `json:"debit_cents"`
				} `json:"rows"`
			}
			if err := getJSON(path, &vouchers); err != nil {
				return err
			}

			for _, v := range vouchers {
				var total int64
				for _, r := range v.Rows {
					total += r.DebitCents
				}

				status := "draft"
				if v.PostedAt != nil {
					status = "posted"
				}

				fmt.Printf("%6d  %s  %-8s %10s  %s\n",
					v.VoucherNumber, v.Date, status, formatCents(total), truncate(v.Description, 40))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "Company ID")
	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("company")

	return cmd
}

func journalCmd() *cobra.Command {
	var companyID, from, to string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Print a company's journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/companies/%s/reports/journal?from=%s&to=%s", companyID, from, to)

			var lines []struct {
				VoucherNumber int64  `json:"voucher_number"`
				Date          string `json:"date"`
				Description   string `json:"description"`
				TotalCents    int64  `json:"total_cents"`
			}
			if err := getJSON(path, &lines); err != nil {
				return err
			}

			for _, l := range lines {
				fmt.Printf("%6d  %s  %10s  %s\n",
					l.VoucherNumber, l.Date, formatCents(l.TotalCents), truncate(l.Description, 40))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "Company ID")
	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("company")

	return cmd
}

func ledgerCmd() *cobra.Command {
	var companyID, accountID, from, to string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Print an account's ledger with running balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/companies/%s/reports/ledger?account_id=%s&from=%s&to=%s",
				companyID, accountID, from, to)

			var lines []struct {
				Date          string `json:"date"`
				VoucherNumber int64  `json:"voucher_number"`
				Description   string `json:"description"`
				DebitCents    int64  `json:"debit_cents"`
				CreditCents   int64  `json:"credit_cents"`
				BalanceCents  int64  `json:"balance_cents"`
			}
			if err := getJSON(path, &lines); err != nil {
				return err
			}

			for _, l := range lines {
				fmt.Printf("%s  %6d  %10s %10s %12s  %s\n",
					l.Date, l.VoucherNumber,
					formatCents(l.DebitCents), formatCents(l.CreditCents), formatCents(l.BalanceCents),
					truncate(l.Description, 40))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "Company ID")
	cmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("company")
	cmd.MarkFlagRequired("account")

	return cmd
}

func lockPeriodCmd() *cobra.Command {
	var companyID, start, end string

	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Lock an accounting period",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := json.Marshal(map[string]string{
				"period_start": start,
				"period_end":   end,
			})
			if err != nil {
				return err
			}

			client := &http.Client{Timeout: timeout}
			resp, err := client.Post(
				baseURL+fmt.Sprintf("/api/v1/companies/%s/locks", companyID),
				"application/json", bytes.NewReader(payload))
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusCreated {
				return fmt.Errorf("lock failed (status %d): %s", resp.StatusCode, string(body))
			}

			var lock map[string]any
			if err := json.Unmarshal(body, &lock); err != nil {
				return err
			}
			printJSON(lock)

			return nil
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "Company ID")
	cmd.Flags().StringVar(&start, "start", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Period end (YYYY-MM-DD)")
	cmd.MarkFlagRequired("company")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func getJSON(path string, out any) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

// formatCents renders an amount in cents as a fixed two-decimal string.
func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}

	fmt.Println(string(data))
}
