package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agenda-concretagem/internal/dto"
	"agenda-concretagem/pkg/agenda"
	"agenda-concretagem/pkg/contextkeys"
	"agenda-concretagem/pkg/customvalidator"
	apperrors "agenda-concretagem/pkg/errors"
	"agenda-concretagem/pkg/types"
	"agenda-concretagem/pkg/utils"
)

type stubConcretagemService struct {
	criarResposta   *dto.SalvarConcretagemRespostaDTO
	criarPayload    dto.CreateConcretagemDTO
	criadoPor       string
	hardDeleted     bool
	excluirErr      error
	conflitos       []agenda.Conflito
	periodoChamado  [2]string
	periodoResposta []dto.ConcretagemDTO
}

func (s *stubConcretagemService) Listar(ctx context.Context, filter types.Filter) ([]dto.ConcretagemDTO, uint64, error) {
	return nil, 0, nil
}

func (s *stubConcretagemService) ListarPeriodo(ctx context.Context, dataDe, dataAte string) ([]dto.ConcretagemDTO, error) {
	s.periodoChamado = [2]string{dataDe, dataAte}
	return s.periodoResposta, nil
}

func (s *stubConcretagemService) Buscar(ctx context.Context, id int64) (*dto.ConcretagemDTO, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubConcretagemService) Criar(ctx context.Context, payload dto.CreateConcretagemDTO, criadoPor string) (*dto.SalvarConcretagemRespostaDTO, error) {
	s.criarPayload = payload
	s.criadoPor = criadoPor
	return s.criarResposta, nil
}

func (s *stubConcretagemService) Atualizar(ctx context.Context, id int64, payload dto.UpdateConcretagemDTO, alteradoPor string) (*dto.SalvarConcretagemRespostaDTO, error) {
	return s.criarResposta, nil
}

func (s *stubConcretagemService) ExcluirComFallback(ctx context.Context, id int64, usuario string) (bool, error) {
	return s.hardDeleted, s.excluirErr
}

func (s *stubConcretagemService) VerificarConflitos(ctx context.Context, payload dto.ConsultaConflitoDTO) ([]agenda.Conflito, error) {
	return s.conflitos, nil
}

func (s *stubConcretagemService) Historico(ctx context.Context, id int64, limit int) ([]dto.HistoricoDTO, error) {
	return nil, nil
}

func (s *stubConcretagemService) Estimar(payload dto.EstimativaDTO) dto.EstimativaRespostaDTO {
	return dto.EstimativaRespostaDTO{
		CaminhoesEst:     agenda.CalcCaminhoes(payload.VolumeM3, payload.CapCaminhaoM3),
		FormasEst:        agenda.CalcCorposProva(agenda.CalcCaminhoes(payload.VolumeM3, payload.CapCaminhaoM3), payload.CpsPorCaminhao),
		DuracaoPadraoMin: agenda.DuracaoPadraoMin(payload.VolumeM3),
		VolumeFormatado:  agenda.FmtBR(payload.VolumeM3, 2, true),
	}
}

func novoEchoDeTeste(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)
	return e
}

func requisicaoAutenticada(req *http.Request, usuario string) *http.Request {
	ctx := context.WithValue(req.Context(), contextkeys.UsernameKey, usuario)
	return req.WithContext(ctx)
}

func TestCriarConcretagemRespondeComAvisos(t *testing.T) {
	e := novoEchoDeTeste(t)
	svc := &stubConcretagemService{
		criarResposta: &dto.SalvarConcretagemRespostaDTO{
			Concretagem: dto.ConcretagemDTO{ID: 7, Data: "2024-05-10", HoraInicio: "08:00", HoraFim: "09:48"},
			Conflitos:   []agenda.Conflito{{ID: 3, Motivos: []string{"bomba"}}},
			Capacidade:  dto.CapacidadeDTO{Data: "2024-05-10", Comprometido: 10, Capacidade: 12},
		},
	}
	ctrl := NewConcretagemController(svc, zap.NewNop())

	body := `{"tipo_servico":"Concretagem","data":"2024-05-10","hora_inicio":"08:00","volume_m3":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/concretagens", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = requisicaoAutenticada(req, "maria")
	rec := httptest.NewRecorder()

	err := ctrl.Criar(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "maria", svc.criadoPor)
	assert.Equal(t, "Concretagem", svc.criarPayload.TipoServico)

	var resposta map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resposta))
	corpo := resposta["body"].(map[string]interface{})
	assert.Len(t, corpo["conflitos"], 1)
	assert.Equal(t, float64(7), corpo["concretagem"].(map[string]interface{})["id"])
}

func TestCriarConcretagemSemUsuarioFalha(t *testing.T) {
	e := novoEchoDeTeste(t)
	ctrl := NewConcretagemController(&stubConcretagemService{}, zap.NewNop())

	body := `{"tipo_servico":"Concretagem","data":"2024-05-10","hora_inicio":"08:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/concretagens", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.Criar(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCriarConcretagemDataInvalidaFalhaValidacao(t *testing.T) {
	e := novoEchoDeTeste(t)
	ctrl := NewConcretagemController(&stubConcretagemService{}, zap.NewNop())

	body := `{"tipo_servico":"Concretagem","data":"10/05/2024","hora_inicio":"08:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/concretagens", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = requisicaoAutenticada(req, "maria")
	rec := httptest.NewRecorder()

	err := ctrl.Criar(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuscarComIDInvalido(t *testing.T) {
	e := novoEchoDeTeste(t)
	ctrl := NewConcretagemController(&stubConcretagemService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/concretagens/abc", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")

	err := ctrl.Buscar(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExcluirInformaFallbackDeCancelamento(t *testing.T) {
	e := novoEchoDeTeste(t)
	svc := &stubConcretagemService{hardDeleted: false}
	ctrl := NewConcretagemController(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/api/concretagens/5", nil)
	req = requisicaoAutenticada(req, "joao")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("5")

	err := ctrl.Excluir(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resposta map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resposta))
	assert.Equal(t, false, resposta["body"].(map[string]interface{})["hard_deleted"])
	assert.Contains(t, resposta["message"], "cancelado")
}

func TestListarPeriodoExigeIntervalo(t *testing.T) {
	e := novoEchoDeTeste(t)
	ctrl := NewConcretagemController(&stubConcretagemService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/concretagens/periodo?data_de=2024-05-10", nil)
	rec := httptest.NewRecorder()

	err := ctrl.ListarPeriodo(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEstimarDevolveDerivados(t *testing.T) {
	e := novoEchoDeTeste(t)
	ctrl := NewConcretagemController(&stubConcretagemService{}, zap.NewNop())

	body := `{"volume_m3":30,"cap_caminhao_m3":8,"cps_por_caminhao":6}`
	req := httptest.NewRequest(http.MethodPost, "/api/concretagens/estimar", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := ctrl.Estimar(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resposta map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resposta))
	corpo := resposta["body"].(map[string]interface{})
	assert.Equal(t, float64(4), corpo["caminhoes_est"])
	assert.Equal(t, float64(24), corpo["formas_est"])
	assert.Equal(t, float64(108), corpo["duracao_padrao_min"])
}
