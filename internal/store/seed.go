package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gitops-dashboard/internal/model"
)

// SeedData is the fixture set loaded into a fresh store at startup.
// Relative ages are minutes before now so fixtures stay meaningful on
// every boot.
type SeedData struct {
	Repositories []SeedRepository  `yaml:"repositories"`
	Applications []SeedApplication `yaml:"applications"`
	Deployments  []SeedDeployment  `yaml:"deployments"`
	Activities   []SeedActivity    `yaml:"activities"`
}

type SeedRepository struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	Branch string `yaml:"branch"`
}

type SeedApplication struct {
	Name              string  `yaml:"name"`
	RepoID            int64   `yaml:"repoId"`
	Path              string  `yaml:"path"`
	Environment       string  `yaml:"environment"`
	Status            string  `yaml:"status"`
	Health            string  `yaml:"health"`
	Version           *string `yaml:"version"`
	Pods              *string `yaml:"pods"`
	SyncStatus        string  `yaml:"syncStatus"`
	LastSyncedMinutes *int    `yaml:"lastSyncedMinutesAgo"`
}

type SeedDeployment struct {
	ApplicationID int64                  `yaml:"applicationId"`
	Revision      string                 `yaml:"revision"`
	Status        string                 `yaml:"status"`
	InitiatedBy   string                 `yaml:"initiatedBy"`
	Message       *string                `yaml:"message"`
	Details       map[string]interface{} `yaml:"details"`
}

type SeedActivity struct {
	Type          string                 `yaml:"type"`
	UserID        *int64                 `yaml:"userId"`
	ApplicationID *int64                 `yaml:"applicationId"`
	DeploymentID  *int64                 `yaml:"deploymentId"`
	Description   string                 `yaml:"description"`
	Details       map[string]interface{} `yaml:"details"`
}

// LoadSeed reads a YAML fixture file.
func LoadSeed(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

// ApplySeed creates the fixture records through the normal create
// paths, so ids and timestamps behave exactly as runtime creates do.
func (s *Store) ApplySeed(data *SeedData) {
	for _, r := range data.Repositories {
		s.CreateRepository(&model.Repository{
			Name:   r.Name,
			URL:    r.URL,
			Branch: r.Branch,
		})
	}

	for _, a := range data.Applications {
		var lastSynced *time.Time
		if a.LastSyncedMinutes != nil {
			t := time.Now().Add(-time.Duration(*a.LastSyncedMinutes) * time.Minute)
			lastSynced = &t
		}
		s.CreateApplication(&model.Application{
			Name:         a.Name,
			RepoID:       a.RepoID,
			Path:         a.Path,
			Environment:  a.Environment,
			Status:       a.Status,
			Health:       a.Health,
			Version:      a.Version,
			Pods:         a.Pods,
			SyncStatus:   a.SyncStatus,
			LastSyncedAt: lastSynced,
		})
	}

	for _, d := range data.Deployments {
		s.CreateDeployment(&model.Deployment{
			ApplicationID: d.ApplicationID,
			Revision:      d.Revision,
			Status:        d.Status,
			InitiatedBy:   d.InitiatedBy,
			Message:       d.Message,
			Details:       d.Details,
		})
	}

	for _, a := range data.Activities {
		s.CreateActivity(&model.Activity{
			Type:          a.Type,
			UserID:        a.UserID,
			ApplicationID: a.ApplicationID,
			DeploymentID:  a.DeploymentID,
			Description:   a.Description,
			Details:       a.Details,
		})
	}
}
