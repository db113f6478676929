// package formatter exports the seeded dataset as a manifest other test
// harnesses can consume (credentials CSV plus a JSON build summary)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"bookseed/internal/dataset"
	"bookseed/internal/models"
	"bookseed/internal/shared"
)

// UsersToCSV converts accounts to CSV with columns: Username, Password, Email, Admin.
// Passwords are included on purpose; the manifest exists so harnesses can log in.
func UsersToCSV(users []*models.User) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Username", "Password", "Email", "Admin"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, user := range users {
		record := []string{
			user.Username,
			user.Password,
			user.Email,
			strconv.FormatBool(user.Admin),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// SummaryToJSON generates a pretty-printed JSON representation of a build summary.
func SummaryToJSON(summary *dataset.Summary) ([]byte, error) {
	return shared.MarshalJSON(summary, true)
}

// ManifestResult contains the paths of files created by WriteManifest.
type ManifestResult struct {
	CredentialsFile string
	SummaryFile     string
}

// WriteManifest exports the seeded accounts and build summary next to each
// other, creating {base}_credentials.csv and {base}_summary.json.
func WriteManifest(users []*models.User, summary *dataset.Summary, basePath string) (*ManifestResult, error) {
	if basePath == "" {
		basePath = "bookseed"
	}

	csvData, err := UsersToCSV(users)
	if err != nil {
		return nil, fmt.Errorf("failed to generate credentials CSV: %w", err)
	}

	credentialsFile := basePath + "_credentials.csv"
	if err := os.WriteFile(credentialsFile, csvData, 0600); err != nil {
		return nil, fmt.Errorf("failed to write credentials file: %w", err)
	}

	summaryJSON, err := SummaryToJSON(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary JSON: %w", err)
	}

	summaryFile := basePath + "_summary.json"
	if err := os.WriteFile(summaryFile, summaryJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write summary file: %w", err)
	}

	return &ManifestResult{
		CredentialsFile: credentialsFile,
		SummaryFile:     summaryFile,
	}, nil
}
