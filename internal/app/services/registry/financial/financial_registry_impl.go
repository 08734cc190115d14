package financial

import (
	"bytes"
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

type financialRegistryClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewFinancialRegistryClient(baseUrl string, logger *zap.Logger) contracts.FinancialRegistryClient {
	return &financialRegistryClient{
		BaseUrl: baseUrl + constvars.ResourcePatients,
		Log:     logger,
	}
}

func (c *financialRegistryClient) GetFinancialProfile(ctx context.Context, patientID string) (*registry_dto.FinancialProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	url := fmt.Sprintf("%s/%s%s", c.BaseUrl, patientID, constvars.ResourceFinancialProfile)
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
		c.Log.Error("financialRegistryClient.GetFinancialProfile registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("get financial profile"), constvars.RegistryEntityFinancialProfile, resp.StatusCode)
	}

	profile := new(registry_dto.FinancialProfile)
	err = json.NewDecoder(resp.Body).Decode(&profile)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityFinancialProfile)
	}

	return profile, nil
}

func (c *financialRegistryClient) UpsertFinancialProfile(ctx context.Context, request *registry_dto.FinancialProfile) (*registry_dto.FinancialProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("financialRegistryClient.UpsertFinancialProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/%s%s", c.BaseUrl, request.PatientID, constvars.ResourceFinancialProfile)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("financialRegistryClient.UpsertFinancialProfile registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("upsert financial profile"), constvars.RegistryEntityFinancialProfile, resp.StatusCode)
	}

	profile := new(registry_dto.FinancialProfile)
	err = json.NewDecoder(resp.Body).Decode(&profile)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityFinancialProfile)
	}

	return profile, nil
}
