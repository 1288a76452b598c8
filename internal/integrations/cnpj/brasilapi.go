package cnpj

import (
	"context"
	"net/http"
	"strings"

	"agenda-concretagem/internal/dto"
)

type brasilAPIProvider struct {
	httpClient *http.Client
}

type brasilAPIResposta struct {
	CNPJ                    string `json:"cnpj"`
	RazaoSocial             string `json:"razao_social"`
	NomeFantasia            string `json:"nome_fantasia"`
	DescricaoTipoLogradouro string `json:"descricao_tipo_de_logradouro"`
	Logradouro              string `json:"logradouro"`
	Numero                  string `json:"numero"`
	Municipio               string `json:"municipio"`
	UF                      string `json:"uf"`
	CEP                     string `json:"cep"`
}

func (p *brasilAPIProvider) Name() string { return "brasilapi" }

func (p *brasilAPIProvider) Consultar(ctx context.Context, cnpj string) (*dto.CNPJDTO, error) {
	var resp brasilAPIResposta
	if err := fetchJSON(ctx, p.httpClient, "https://brasilapi.com.br/api/cnpj/v1/"+cnpj, &resp); err != nil {
		return nil, err
	}

	logradouro := strings.TrimSpace(resp.DescricaoTipoLogradouro + " " + resp.Logradouro)
	return &dto.CNPJDTO{
		CNPJ:            cnpj,
		RazaoSocial:     resp.RazaoSocial,
		NomeFantasia:    resp.NomeFantasia,
		Endereco:        montarEndereco(logradouro, resp.Numero),
		Cidade:          resp.Municipio,
		UF:              resp.UF,
		CEP:             resp.CEP,
		ClienteSugerido: firstNonEmpty(resp.NomeFantasia, resp.RazaoSocial),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
