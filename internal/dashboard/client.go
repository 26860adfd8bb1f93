package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/academia-crm/backend/internal/entity"
	"github.com/academia-crm/backend/internal/usecase"
)

// Client es el consumidor tipado del API que usa el tablero. Misma
// convención que los clientes de integración: struct con baseURL y
// http.Client inyectable.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type apiError struct {
	Error string `json:"error"`
}

// BuscarPorCelular devuelve (nil, nil) cuando el servidor responde el
// objeto vacío: la ausencia no es error para esta búsqueda.
func (c *Client) BuscarPorCelular(ctx context.Context, celular string) (*entity.Registro, error) {
	var registro entity.Registro
	if err := c.get(ctx, "/api/registros/cel/"+celular, &registro); err != nil {
		return nil, err
	}
	if registro.IDReg == 0 {
		return nil, nil
	}
	return &registro, nil
}

func (c *Client) Registros(ctx context.Context) ([]entity.Registro, error) {
	var registros []entity.Registro
	if err := c.get(ctx, "/api/registros", &registros); err != nil {
		return nil, err
	}
	return registros, nil
}

func (c *Client) SeguimientosConRegistro(ctx context.Context) ([]entity.Seguimiento, error) {
	var seguimientos []entity.Seguimiento
	if err := c.get(ctx, "/api/seguimientos/joinRegistros", &seguimientos); err != nil {
		return nil, err
	}
	return seguimientos, nil
}

func (c *Client) SeguimientosPorRegistro(ctx context.Context, idReg int) ([]entity.Seguimiento, error) {
	var seguimientos []entity.Seguimiento
	if err := c.get(ctx, fmt.Sprintf("/api/seguimientos/registro/%d", idReg), &seguimientos); err != nil {
		return nil, err
	}
	return seguimientos, nil
}

func (c *Client) CrearSeguimiento(ctx context.Context, input usecase.CreateSeguimientoInput) (*entity.Seguimiento, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/seguimientos", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeError(resp.StatusCode, respBody)
	}

	var seguimiento entity.Seguimiento
	if err := json.Unmarshal(respBody, &seguimiento); err != nil {
		return nil, err
	}
	return &seguimiento, nil
}

func (c *Client) get(ctx context.Context, path string, into interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp.StatusCode, respBody)
	}

	return json.Unmarshal(respBody, into)
}

func decodeError(status int, body []byte) error {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("api %d: %s", status, apiErr.Error)
	}
	return fmt.Errorf("api %d", status)
}
