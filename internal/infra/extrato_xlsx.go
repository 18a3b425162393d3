package infra

import (
	"bytes"
	"fmt"

	"github.com/brunosousa09/sigh-hospital/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func toFloat(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

// GerarExtratoXLSX renders a supplier statement as a spreadsheet, one row per
// transaction plus a totals block. Values are written as numbers so the
// finance team can pivot on them.
func GerarExtratoXLSX(extrato *dto.ExtratoEmpresa) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const aba = "Extrato"
	f.SetSheetName("Sheet1", aba)

	cabecalho := []interface{}{"Data", "Tipo", "Status", "NF", "Descrição", "Classificação", "Valor"}
	if err := f.SetSheetRow(aba, "A1", &cabecalho); err != nil {
		return nil, fmt.Errorf("extrato xlsx: %w", err)
	}

	negrito, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(aba, "A1", "G1", negrito)
	}

	linha := 2
	for _, t := range extrato.Transacoes {
		data := t.DataEntrada
		if t.Tipo == "saida" {
			data = t.DataPagamento
		}
		nf := ""
		if t.NF != nil {
			nf = *t.NF
		}
		valor, _ := t.Valor.Float64()
		if t.Tipo == "saida" {
			valor = -valor
		}
		row := []interface{}{data, t.Tipo, t.Status, nf, t.Descricao, t.Classificacao, valor}
		if err := f.SetSheetRow(aba, fmt.Sprintf("A%d", linha), &row); err != nil {
			return nil, fmt.Errorf("extrato xlsx: %w", err)
		}
		linha++
	}

	linha++
	totais := [][]interface{}{
		{"Total de Entradas", toFloat(extrato.TotalEntradas)},
		{"Total de Pagamentos", toFloat(extrato.TotalSaidas)},
		{"Saldo", toFloat(extrato.Saldo)},
		{"Em Aberto", toFloat(extrato.EmAberto)},
	}
	for _, row := range totais {
		r := row
		if err := f.SetSheetRow(aba, fmt.Sprintf("A%d", linha), &r); err != nil {
			return nil, fmt.Errorf("extrato xlsx: %w", err)
		}
		linha++
	}

	_ = f.SetColWidth(aba, "A", "A", 12)
	_ = f.SetColWidth(aba, "E", "E", 48)
	_ = f.SetColWidth(aba, "F", "G", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("extrato xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
