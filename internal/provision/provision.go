// Package provision creates the landing page content types in a CMS space
// and exports the space's content model.
package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/landingpro/landing/backend/go-services/internal/cms"
	"github.com/landingpro/landing/backend/go-services/internal/contentmodel"
	"github.com/landingpro/landing/backend/go-services/pkg/logger"
	"github.com/landingpro/landing/backend/go-services/pkg/metrics"
)

// Summary lists what a run did, by content type id.
type Summary struct {
	Created []string `json:"created"`
	Skipped []string `json:"skipped"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%d created, %d skipped", len(s.Created), len(s.Skipped))
}

// Provisioner creates missing content types in registry order.
type Provisioner struct {
	mgr      cms.Manager
	registry []contentmodel.ModelDefinition
}

// New returns a Provisioner over the full landing page registry.
func New(mgr cms.Manager) *Provisioner {
	return &Provisioner{mgr: mgr, registry: contentmodel.Registry()}
}

// Run creates and publishes every content type the space does not have yet.
// Existing types are left untouched, so repeated runs are idempotent. Only a
// not-found lookup leads to creation; any other error stops the run, as does
// a failed create or publish. Types handled before the failure stay in place.
func (p *Provisioner) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	if p.mgr == nil {
		return sum, errors.New("no management client")
	}

	for _, def := range p.registry {
		logger.Infof("Processing %s...", def.Model.Name)

		_, err := p.mgr.GetContentType(ctx, def.ID)
		switch {
		case err == nil:
			logger.Infof("%s already exists - skipping", def.Model.Name)
			metrics.ProvisionActions.WithLabelValues("skipped").Inc()
			sum.Skipped = append(sum.Skipped, def.ID)
			continue
		case !errors.Is(err, cms.ErrNotFound):
			metrics.ProvisionActions.WithLabelValues("failed").Inc()
			return sum, fmt.Errorf("look up content type %s: %w", def.ID, err)
		}

		ct, err := p.mgr.CreateContentTypeWithID(ctx, def.ID, def.Model)
		if err != nil {
			metrics.ProvisionActions.WithLabelValues("failed").Inc()
			return sum, fmt.Errorf("create content type %s: %w", def.ID, err)
		}
		if _, err := p.mgr.PublishContentType(ctx, ct); err != nil {
			metrics.ProvisionActions.WithLabelValues("failed").Inc()
			return sum, fmt.Errorf("publish content type %s: %w", def.ID, err)
		}
		logger.Infof("%s created and published", def.Model.Name)
		metrics.ProvisionActions.WithLabelValues("created").Inc()
		sum.Created = append(sum.Created, def.ID)
	}

	logger.Infof("Content model setup completed: %s", sum)
	return sum, nil
}
