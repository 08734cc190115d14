package checklists

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

type checklistRegistryClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewChecklistRegistryClient(baseUrl string, logger *zap.Logger) contracts.ChecklistRegistryClient {
	return &checklistRegistryClient{
		BaseUrl: baseUrl + constvars.ResourcePatients,
		Log:     logger,
	}
}

func (c *checklistRegistryClient) GetChecklist(ctx context.Context, patientID string) (*registry_dto.TransplantChecklist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	url := fmt.Sprintf("%s/%s%s", c.BaseUrl, patientID, constvars.ResourceChecklist)
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
		c.Log.Error("checklistRegistryClient.GetChecklist registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("get checklist"), constvars.RegistryEntityChecklist, resp.StatusCode)
	}

	checklist := new(registry_dto.TransplantChecklist)
	err = json.NewDecoder(resp.Body).Decode(&checklist)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityChecklist)
	}

	return checklist, nil
}

func (c *checklistRegistryClient) PatchChecklistItem(ctx context.Context, patientID, itemID string, patch *registry_dto.ChecklistItemPatch) (*registry_dto.ChecklistItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("checklistRegistryClient.PatchChecklistItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingItemIDKey, itemID),
	)

	requestJSON, err := json.Marshal(patch)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/%s%s/%s", c.BaseUrl, patientID, constvars.ResourceChecklistItems, itemID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, url, bytes.NewBuffer(requestJSON))
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
		c.Log.Error("checklistRegistryClient.PatchChecklistItem registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingItemIDKey, itemID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("patch checklist item"), constvars.RegistryEntityChecklist, resp.StatusCode)
	}

	item := new(registry_dto.ChecklistItem)
	err = json.NewDecoder(resp.Body).Decode(&item)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityChecklist)
	}

	return item, nil
}

func (c *checklistRegistryClient) AttachDocument(ctx context.Context, patientID, itemID string, document *registry_dto.DocumentReference) (*registry_dto.ChecklistItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("checklistRegistryClient.AttachDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingItemIDKey, itemID),
	)

	requestJSON, err := json.Marshal(document)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/%s%s/%s%s", c.BaseUrl, patientID, constvars.ResourceChecklistItems, itemID, constvars.ResourceDocuments)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
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
		c.Log.Error("checklistRegistryClient.AttachDocument registry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingItemIDKey, itemID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		return nil, exceptions.ErrRegistryRequest(fmt.Errorf("attach document"), constvars.RegistryEntityChecklist, resp.StatusCode)
	}

	item := new(registry_dto.ChecklistItem)
	err = json.NewDecoder(resp.Body).Decode(&item)
	if err != nil {
		return nil, exceptions.ErrDecodeRegistryResponse(err, constvars.RegistryEntityChecklist)
	}

	return item, nil
}
