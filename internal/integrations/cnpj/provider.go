// Pacote cnpj consulta dados cadastrais de empresas em provedores públicos,
// tentando um por um até alguém responder.
package cnpj

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"agenda-concretagem/internal/dto"
	"agenda-concretagem/internal/repositories"
	"agenda-concretagem/pkg/agenda"
	apperrors "agenda-concretagem/pkg/errors"
)

// Provider é um serviço público de consulta de CNPJ.
type Provider interface {
	Name() string
	Consultar(ctx context.Context, cnpj string) (*dto.CNPJDTO, error)
}

type Client struct {
	providers []Provider
	cache     repositories.CacheRepositoryInterface
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewClient monta a cadeia padrão: BrasilAPI, depois CNPJ.ws, depois
// ReceitaWS. O cache é opcional; sem ele toda consulta vai à rede.
func NewClient(cache repositories.CacheRepositoryInterface, cacheTTL time.Duration, logger *zap.Logger) *Client {
	httpClient := &http.Client{Timeout: 12 * time.Second}
	return &Client{
		providers: []Provider{
			&brasilAPIProvider{httpClient: httpClient},
			&cnpjWsProvider{httpClient: httpClient},
			&receitaWSProvider{httpClient: httpClient},
		},
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.Named("cnpj_client"),
	}
}

// Consultar normaliza o CNPJ para 14 dígitos e percorre a cadeia de
// provedores. O primeiro resultado válido é memorizado no cache.
func (c *Client) Consultar(ctx context.Context, cnpjBruto string) (*dto.CNPJDTO, error) {
	digitos := agenda.SomenteDigitos(cnpjBruto)
	if len(digitos) != 14 {
		return nil, apperrors.NewInvalidInputError("CNPJ deve ter 14 dígitos")
	}

	cacheKey := "cnpj:" + digitos
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var payload dto.CNPJDTO
			if err := json.Unmarshal([]byte(cached), &payload); err == nil {
				return &payload, nil
			}
		}
	}

	var ultimoErr error
	for _, p := range c.providers {
		payload, err := p.Consultar(ctx, digitos)
		if err != nil {
			c.logger.Warn("Provedor de CNPJ falhou, tentando o próximo",
				zap.String("provedor", p.Name()),
				zap.Error(err),
			)
			ultimoErr = err
			continue
		}
		if payload.ClienteSugerido == "" {
			payload.ClienteSugerido = payload.RazaoSocial
		}

		if c.cache != nil {
			if raw, err := json.Marshal(payload); err == nil {
				if err := c.cache.Set(ctx, cacheKey, string(raw), c.cacheTTL); err != nil {
					c.logger.Warn("Não foi possível guardar CNPJ no cache", zap.Error(err))
				}
			}
		}
		return payload, nil
	}

	if ultimoErr != nil {
		return nil, fmt.Errorf("todos os provedores de CNPJ falharam: %w", ultimoErr)
	}
	return nil, apperrors.ErrCNPJNaoEncontrado
}

func fetchJSON(ctx context.Context, client *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.ErrCNPJNaoEncontrado
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("resposta inesperada %d de %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func montarEndereco(logradouro, numero string) string {
	switch {
	case logradouro == "":
		return ""
	case numero == "":
		return logradouro
	default:
		return logradouro + ", " + numero
	}
}
