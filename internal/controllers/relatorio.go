package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"agenda-concretagem/internal/dto"
	"agenda-concretagem/internal/services"
	"agenda-concretagem/pkg/agenda"
	apperrors "agenda-concretagem/pkg/errors"
	"agenda-concretagem/pkg/utils"
)

type RelatorioController struct {
	concretagemService services.ConcretagemServiceInterface
	logger             *zap.Logger
}

func NewRelatorioController(
	concretagemService services.ConcretagemServiceInterface,
	logger *zap.Logger,
) *RelatorioController {
	return &RelatorioController{concretagemService: concretagemService, logger: logger}
}

// RelatorioPeriodo exporta a agenda de um intervalo de datas. Com
// format=xlsx devolve a planilha pronta para download; caso contrário
// devolve o JSON da listagem.
func (c *RelatorioController) RelatorioPeriodo(ctx echo.Context) error {
	dataDe := ctx.QueryParam("data_de")
	dataAte := ctx.QueryParam("data_ate")
	if dataDe == "" || dataAte == "" {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("informe data_de e data_ate"))
	}
	format := strings.ToLower(ctx.QueryParam("format"))
	c.logger.Debug("Relatório solicitado",
		zap.String("data_de", dataDe),
		zap.String("data_ate", dataAte),
		zap.String("format", format))

	concretagens, err := c.concretagemService.ListarPeriodo(ctx.Request().Context(), dataDe, dataAte)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, concretagens)
	}
	return utils.SuccessResponse(ctx, concretagens, "Relatório do período", http.StatusOK)
}

var relatorioHeaders = []string{
	"Data", "Início", "Fim", "Obra", "Cliente", "Cidade", "Tipo de Serviço",
	"Volume (m³)", "FCK (MPa)", "Slump", "Caminhões", "Corpos de Prova",
	"Usina", "Bomba", "Equipe", "Colaboradores", "Status", "Observações",
}

func linhaRelatorio(item dto.ConcretagemDTO) []interface{} {
	var fck string
	if item.FckMpa != nil {
		fck = fmt.Sprintf("%.0f", *item.FckMpa)
	}
	return []interface{}{
		item.Data, item.HoraInicio, item.HoraFim, item.Obra, item.Cliente, item.Cidade,
		item.TipoServico, agenda.FmtBR(item.VolumeM3, 2, true), fck, item.SlumpTxt,
		item.CaminhoesEst, item.FormasEst, item.Usina, item.Bomba, item.Equipe,
		item.ColabQtd, item.Status, item.Observacoes,
	}
}

func (c *RelatorioController) respondWithXLSX(ctx echo.Context, data []dto.ConcretagemDTO) error {
	f := excelize.NewFile()
	sheet := "Agenda de Concretagens"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &relatorioHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "R1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := linhaRelatorio(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "D", "E", 30)
	f.SetColWidth(sheet, "F", "G", 20)
	f.SetColWidth(sheet, "M", "O", 15)
	f.SetColWidth(sheet, "R", "R", 50)

	fileName := fmt.Sprintf("agenda_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
