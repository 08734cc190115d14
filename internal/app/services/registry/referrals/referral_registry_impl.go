package referrals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/registry_dto"
	"net/http"

	"go.uber.org/zap"
)

type referralRegistryClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewReferralRegistryClient(baseUrl string, logger *zap.Logger) contracts.ReferralRegistryClient {
	return &referralRegistryClient{
		BaseUrl: baseUrl + constvars.ResourcePatients,
		Log:     logger,
	}
}

func (c *referralRegistryClient) GetReferral(ctx context.Context, patientID string) (*registry_dto.Referral, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	url := fmt.Sprintf("%s/%s%s", c.BaseUrl, patientID, constvars.ResourceReferral)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		if resp.StatusCode == constvars.StatusNotFound {
			return nil, nil
		}
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("referralRegistryClient.GetReferral registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("get referral"), constvars.RegistryEntityReferral, resp.StatusCode)
	}

	referral := new(registry_dto.Referral)
	err = json.NewDecoder(resp.Body).Decode(&referral)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityReferral)
	}

	return referral, nil
}
