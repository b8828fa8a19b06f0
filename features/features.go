package features

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ostrevka/sgembed/config"
	"github.com/ostrevka/sgembed/graphio"
	"github.com/ostrevka/sgembed/spectral"
)

// ErrNilDataset is returned when spectral features are requested
// without a parsed dataset.
var ErrNilDataset = errors.New("features: nil dataset")

// Setup resolves the node-feature matrix for the given parameters.
// With SpectralFeatures on, features come from the truncated SVD of
// the dataset's signed adjacency; otherwise they are read from
// Params.FeaturesPath. Row i is always the feature vector of node i.
func Setup(p config.Params, ds *graphio.Dataset) (*mat.Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("features.Setup: %w", err)
	}

	if !p.SpectralFeatures {
		return graphio.LoadFeatures(p.FeaturesPath)
	}
	if ds == nil {
		return nil, fmt.Errorf("features.Setup: %w", ErrNilDataset)
	}

	x, err := spectral.Features(ds.Positive, ds.Negative,
		spectral.WithNodeCount(ds.NodeCount),
		spectral.WithDimensions(p.ReductionDimensions),
		spectral.WithIterations(p.ReductionIterations),
		spectral.WithSeed(p.Seed),
	)
	if err != nil {
		return nil, fmt.Errorf("features.Setup: %w", err)
	}

	return x, nil
}
