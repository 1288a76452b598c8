package cnpj

import (
	"context"
	"net/http"

	"agenda-concretagem/internal/dto"
)

type cnpjWsProvider struct {
	httpClient *http.Client
}

type cnpjWsResposta struct {
	RazaoSocial     string `json:"razao_social"`
	Estabelecimento struct {
		NomeFantasia   string `json:"nome_fantasia"`
		TipoLogradouro string `json:"tipo_logradouro"`
		Logradouro     string `json:"logradouro"`
		Numero         string `json:"numero"`
		CEP            string `json:"cep"`
		Cidade         struct {
			Nome string `json:"nome"`
		} `json:"cidade"`
		Estado struct {
			Sigla string `json:"sigla"`
		} `json:"estado"`
	} `json:"estabelecimento"`
}

func (p *cnpjWsProvider) Name() string { return "cnpj.ws" }

func (p *cnpjWsProvider) Consultar(ctx context.Context, cnpj string) (*dto.CNPJDTO, error) {
	var resp cnpjWsResposta
	if err := fetchJSON(ctx, p.httpClient, "https://publica.cnpj.ws/cnpj/"+cnpj, &resp); err != nil {
		return nil, err
	}

	est := resp.Estabelecimento
	logradouro := est.Logradouro
	if est.TipoLogradouro != "" {
		logradouro = est.TipoLogradouro + " " + est.Logradouro
	}
	return &dto.CNPJDTO{
		CNPJ:            cnpj,
		RazaoSocial:     resp.RazaoSocial,
		NomeFantasia:    est.NomeFantasia,
		Endereco:        montarEndereco(logradouro, est.Numero),
		Cidade:          est.Cidade.Nome,
		UF:              est.Estado.Sigla,
		CEP:             est.CEP,
		ClienteSugerido: firstNonEmpty(est.NomeFantasia, resp.RazaoSocial),
	}, nil
}
