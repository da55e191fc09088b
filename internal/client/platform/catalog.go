package platform

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	httpClient "github.com/tadreeb/tadreeb-api/internal/client/http"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

// programListResponse wraps the platform's list envelope
type programListResponse struct {
	Data []types.Program `json:"data"`
}

type cohortListResponse struct {
	Data []types.Cohort `json:"data"`
}

// ListPrograms retrieves the published program catalog
func (c *PlatformClient) ListPrograms(ctx context.Context) ([]types.Program, error) {
	resp, err := c.httpClient.Get(ctx, "programs", c.apiKeyOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}

	var listResponse programListResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &listResponse); err != nil {
		return nil, fmt.Errorf("failed to process program list response: %w", err)
	}

	return listResponse.Data, nil
}

// GetProgramBySlug retrieves a single program, including its list price
func (c *PlatformClient) GetProgramBySlug(ctx context.Context, slug string) (*types.Program, error) {
	resp, err := c.httpClient.Get(
		ctx,
		fmt.Sprintf("programs/slug/%s", slug),
		c.apiKeyOptions()...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get program %s: %w", slug, err)
	}
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}

	var program types.Program
	if err := c.httpClient.ProcessJSONResponse(resp, &program); err != nil {
		return nil, fmt.Errorf("failed to process program response: %w", err)
	}

	return &program, nil
}

// ListCohorts retrieves the cohorts of a program with capacity and
// enrollment snapshots
func (c *PlatformClient) ListCohorts(ctx context.Context, programID uuid.UUID) ([]types.Cohort, error) {
	options := append(c.apiKeyOptions(), httpClient.WithQueryParam("programId", programID.String()))

	resp, err := c.httpClient.Get(ctx, "cohorts", options...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cohorts: %w", err)
	}
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}

	var listResponse cohortListResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &listResponse); err != nil {
		return nil, fmt.Errorf("failed to process cohort list response: %w", err)
	}

	return listResponse.Data, nil
}
