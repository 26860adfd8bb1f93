package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/academia-crm/backend/internal/infra/queue"
)

const templateSeguimiento = "seguimiento_curso"

type Client struct {
	accessToken string
	phoneID     string
	baseURL     string
	httpClient  *http.Client
}

func NewClient() *Client {
	return &Client{
		accessToken: os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		phoneID:     os.Getenv("WHATSAPP_PHONE_ID"),
		baseURL:     "https://graph.facebook.com/v18.0",
		httpClient:  http.DefaultClient,
	}
}

// SendSeguimiento manda la plantilla de seguimiento al celular del lead.
func (c *Client) SendSeguimiento(ctx context.Context, event queue.SeguimientoEvent) error {
	return c.SendMessage(ctx, SendMessageInput{
		PhoneNumber:  event.CelLead,
		TemplateName: templateSeguimiento,
		Parameters:   []string{event.NombreLead, event.CursoLead},
	})
}

func (c *Client) SendMessage(ctx context.Context, input SendMessageInput) error {
	if c.accessToken == "" || c.phoneID == "" {
		return fmt.Errorf("whatsapp no configurado: faltan ACCESS_TOKEN o PHONE_ID")
	}

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                input.PhoneNumber,
		"type":              "template",
		"template": map[string]interface{}{
			"name": input.TemplateName,
			"language": map[string]string{
				"code": "es",
			},
			"components": []map[string]interface{}{
				{
					"type":       "body",
					"parameters": convertParametersToAPI(input.Parameters),
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("whatsapp api devolvió %d: %s", resp.StatusCode, string(respBody))
	}

	var result SendMessageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return err
	}

	if result.Error != nil {
		return fmt.Errorf("whatsapp: %s (code %d)", result.Error.Message, result.Error.Code)
	}

	return nil
}

func convertParametersToAPI(params []string) []map[string]string {
	result := make([]map[string]string, 0, len(params))
	for _, param := range params {
		result = append(result, map[string]string{
			"type": "text",
			"text": param,
		})
	}
	return result
}
