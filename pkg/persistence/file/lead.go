package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/leadflowhq/leadflow/pkg/models"
)

// LeadRepository handles lead-related file operations.
type LeadRepository struct {
	root string
}

// NewLeadRepository creates a new lead repository.
func NewLeadRepository(root string) *LeadRepository {
	return &LeadRepository{root: root}
}

// GetAll returns all leads from the file system, sorted by ID. Lead IDs
// embed a millisecond timestamp, so the sort is chronological.
func (lr *LeadRepository) GetAll(ctx context.Context) ([]*models.Lead, error) {
	root := os.DirFS(path.Join(lr.root, "leads"))

	jsonFiles, err := fs.Glob(root, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list lead files: %w", err)
	}

	leads := make([]*models.Lead, 0, len(jsonFiles))

	for _, file := range jsonFiles {
		leadID := file[:len(file)-5]

		lead, err := lr.GetByID(ctx, leadID)
		if err != nil {
			return nil, fmt.Errorf("failed to load lead %s: %w", leadID, err)
		}

		if lead != nil {
			leads = append(leads, lead)
		}
	}

	sort.Slice(leads, func(i, j int) bool {
		return leads[i].ID < leads[j].ID
	})

	return leads, nil
}

// GetByID retrieves a lead by its ID from the file system.
func (lr *LeadRepository) GetByID(_ context.Context, leadID string) (*models.Lead, error) {
	filePath := filepath.Clean(path.Join(lr.root, "leads", leadID+".json"))

	body, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to fetch lead %s: %w", leadID, err)
	}

	var lead models.Lead

	err = json.Unmarshal(body, &lead)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal lead %s: %w", leadID, err)
	}

	return &lead, nil
}

// Save saves a lead to the file system.
func (lr *LeadRepository) Save(_ context.Context, lead *models.Lead) error {
	err := os.MkdirAll(path.Join(lr.root, "leads"), 0750)
	if err != nil {
		return fmt.Errorf("failed to create leads directory: %w", err)
	}

	data, err := json.MarshalIndent(lead, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal lead %s: %w", lead.ID, err)
	}

	filePath := path.Join(lr.root, "leads", lead.ID+".json")

	return os.WriteFile(filePath, data, 0600)
}
