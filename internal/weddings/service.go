package weddings

import (
	"context"
	"fmt"

	"github.com/altivento/altivento-backend/internal/content"
	pkgerrors "github.com/altivento/altivento-backend/pkg/errors"
)

// Service exposes the wedding catalog and budget calculator.
type Service interface {
	PackageData(ctx context.Context) content.WeddingPackageData
	Quote(ctx context.Context, state CalculatorState) (CalculationResult, error)
}

type service struct {
	data content.WeddingPackageData
}

func NewService(snap *content.Snapshot) (Service, error) {
	if snap == nil {
		return nil, fmt.Errorf("content snapshot required")
	}
	return &service{data: snap.Wedding}, nil
}

func (s *service) PackageData(ctx context.Context) content.WeddingPackageData {
	return s.data
}

// Quote validates the selection and computes the breakdown. Validation is
// strict here even though Calculate itself degrades to zeros: a public quote
// endpoint must not silently under-quote because of a typo in the request.
func (s *service) Quote(ctx context.Context, state CalculatorState) (CalculationResult, error) {
	if err := s.validate(state); err != nil {
		return CalculationResult{}, err
	}
	return Calculate(state, s.data), nil
}

func (s *service) validate(state CalculatorState) error {
	knownPackage := false
	for _, pkg := range s.data.Packages {
		if pkg.ID == state.SelectedPackage {
			knownPackage = true
			break
		}
	}
	if !knownPackage {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown wedding package").
			WithDetails(map[string]any{"selected_package": state.SelectedPackage})
	}

	knownBucket := false
	for _, option := range s.data.GuestCountOptions {
		if option == state.GuestCount {
			knownBucket = true
			break
		}
	}
	if !knownBucket {
		return pkgerrors.New(pkgerrors.CodeValidation, "guest count is not an offered bucket").
			WithDetails(map[string]any{
				"guest_count": state.GuestCount,
				"options":     s.data.GuestCountOptions,
			})
	}
	return nil
}
