package patients

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

type patientRegistryClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewPatientRegistryClient(baseUrl string, logger *zap.Logger) contracts.PatientRegistryClient {
	return &patientRegistryClient{
		BaseUrl: baseUrl + constvars.ResourcePatients,
		Log:     logger,
	}
}

func (c *patientRegistryClient) CreatePatient(ctx context.Context, request *registry_dto.Patient) (*registry_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRegistryClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRegistryClient.CreatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("patientRegistryClient.CreatePatient registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("create patient"), constvars.RegistryEntityPatient, resp.StatusCode)
	}

	patient := new(registry_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(&patient)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityPatient)
	}

	c.Log.Info("patientRegistryClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (c *patientRegistryClient) GetPatientByID(ctx context.Context, patientID string) (*registry_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, patientID), nil)
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
		c.Log.Error("patientRegistryClient.GetPatientByID registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("get patient"), constvars.RegistryEntityPatient, resp.StatusCode)
	}

	patient := new(registry_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(&patient)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityPatient)
	}

	return patient, nil
}

func (c *patientRegistryClient) UpdatePatient(ctx context.Context, request *registry_dto.Patient) (*registry_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", c.BaseUrl, request.ID), bytes.NewBuffer(requestJSON))
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

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("patientRegistryClient.UpdatePatient registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.ID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("update patient"), constvars.RegistryEntityPatient, resp.StatusCode)
	}

	patient := new(registry_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(&patient)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityPatient)
	}

	return patient, nil
}

func (c *patientRegistryClient) DeletePatient(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRegistryClient.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%s", c.BaseUrl, patientID), nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("patientRegistryClient.DeletePatient registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return exceptions.ErrRegistryRequest(fmt.Errorf("delete patient"), constvars.RegistryEntityPatient, resp.StatusCode)
	}

	return nil
}
