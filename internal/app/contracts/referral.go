package contracts

import (
	"context"
	"navigator-service/internal/pkg/registry_dto"
)

// ReferralRegistryClient reads the referral sub-profile; (nil, nil) when
// no referral exists yet.
type ReferralRegistryClient interface {
	GetReferral(ctx context.Context, patientID string) (*registry_dto.Referral, error)
}
