package questionnaires

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

type questionnaireRegistryClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewQuestionnaireRegistryClient(baseUrl string, logger *zap.Logger) contracts.QuestionnaireRegistryClient {
	return &questionnaireRegistryClient{
		BaseUrl: baseUrl + constvars.ResourcePatients,
		Log:     logger,
	}
}

func (c *questionnaireRegistryClient) SubmitQuestionnaire(ctx context.Context, request *registry_dto.QuestionnaireSubmission) (*registry_dto.QuestionnaireSubmission, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("questionnaireRegistryClient.SubmitQuestionnaire called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/%s%s", c.BaseUrl, request.PatientID, constvars.ResourceQuestionnaire)
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
		c.Log.Error("questionnaireRegistryClient.SubmitQuestionnaire registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("submit questionnaire"), constvars.RegistryEntityQuestionnaire, resp.StatusCode)
	}

	submission := new(registry_dto.QuestionnaireSubmission)
	err = json.NewDecoder(resp.Body).Decode(&submission)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityQuestionnaire)
	}

	return submission, nil
}

func (c *questionnaireRegistryClient) GetQuestionnaire(ctx context.Context, patientID string) (*registry_dto.QuestionnaireSubmission, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	url := fmt.Sprintf("%s/%s%s", c.BaseUrl, patientID, constvars.ResourceQuestionnaire)
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
		c.Log.Error("questionnaireRegistryClient.GetQuestionnaire registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("get questionnaire"), constvars.RegistryEntityQuestionnaire, resp.StatusCode)
	}

	submission := new(registry_dto.QuestionnaireSubmission)
	err = json.NewDecoder(resp.Body).Decode(&submission)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityQuestionnaire)
	}

	return submission, nil
}

func (c *questionnaireRegistryClient) GetStatus(ctx context.Context, patientID string) (*registry_dto.StatusSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	url := fmt.Sprintf("%s/%s%s", c.BaseUrl, patientID, constvars.ResourceStatus)
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
		c.Log.Error("questionnaireRegistryClient.GetStatus registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("get status"), constvars.RegistryEntityStatus, resp.StatusCode)
	}

	status := new(registry_dto.StatusSummary)
	err = json.NewDecoder(resp.Body).Decode(&status)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityStatus)
	}

	return status, nil
}
