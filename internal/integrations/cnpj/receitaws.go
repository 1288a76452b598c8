package cnpj

import (
	"context"
	"fmt"
	"net/http"

	"agenda-concretagem/internal/dto"
)

type receitaWSProvider struct {
	httpClient *http.Client
}

// A ReceitaWS devolve 200 com status ERROR quando o CNPJ não existe, então o
// campo status precisa ser checado além do código HTTP.
type receitaWSResposta struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	Nome       string `json:"nome"`
	Fantasia   string `json:"fantasia"`
	Logradouro string `json:"logradouro"`
	Numero     string `json:"numero"`
	Municipio  string `json:"municipio"`
	UF         string `json:"uf"`
	CEP        string `json:"cep"`
}

func (p *receitaWSProvider) Name() string { return "receitaws" }

func (p *receitaWSProvider) Consultar(ctx context.Context, cnpj string) (*dto.CNPJDTO, error) {
	var resp receitaWSResposta
	if err := fetchJSON(ctx, p.httpClient, "https://receitaws.com.br/v1/cnpj/"+cnpj, &resp); err != nil {
		return nil, err
	}
	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("receitaws: %s", resp.Message)
	}

	return &dto.CNPJDTO{
		CNPJ:            cnpj,
		RazaoSocial:     resp.Nome,
		NomeFantasia:    resp.Fantasia,
		Endereco:        montarEndereco(resp.Logradouro, resp.Numero),
		Cidade:          resp.Municipio,
		UF:              resp.UF,
		CEP:             resp.CEP,
		ClienteSugerido: firstNonEmpty(resp.Fantasia, resp.Nome),
	}, nil
}
