package infra

import (
	"bytes"
	"fmt"

	"github.com/brunosousa09/sigh-hospital/internal/dto"
	"github.com/brunosousa09/sigh-hospital/internal/moeda"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GerarExtratoPDF renders a supplier statement as an A4 PDF: header with the
// supplier data, one row per transaction, totals at the bottom.
func GerarExtratoPDF(extrato *dto.ExtratoEmpresa) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Extrato de Fornecedor"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, tr(extrato.Empresa.Nome), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr("CNPJ: "+extrato.Empresa.CNPJ), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, tr("Gerado em: "+extrato.GeradoEm), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	colData := contentW * 0.13
	colTipo := contentW * 0.11
	colNF := contentW * 0.14
	colDesc := contentW * 0.42
	colValor := contentW * 0.20

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colData, 6, "Data", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colTipo, 6, "Tipo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colNF, 6, "NF", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colDesc, 6, tr("Descrição"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(colValor, 6, "Valor", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, t := range extrato.Transacoes {
		data := t.DataEntrada
		if t.Tipo == "saida" {
			data = t.DataPagamento
		}
		nf := ""
		if t.NF != nil {
			nf = *t.NF
		}
		valor := moeda.Formatar(t.Valor)
		if t.Tipo == "saida" {
			valor = "-" + valor
		}
		pdf.CellFormat(colData, 5, data, "", 0, "L", false, 0, "")
		pdf.CellFormat(colTipo, 5, t.Tipo, "", 0, "L", false, 0, "")
		pdf.CellFormat(colNF, 5, tr(nf), "", 0, "L", false, 0, "")
		pdf.CellFormat(colDesc, 5, tr(truncar(t.Descricao, 60)), "", 0, "L", false, 0, "")
		pdf.CellFormat(colValor, 5, tr(valor), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	linhaTotal(pdf, tr, contentW, "Total de Entradas", extrato.TotalEntradas)
	linhaTotal(pdf, tr, contentW, "Total de Pagamentos", extrato.TotalSaidas)
	linhaTotal(pdf, tr, contentW, "Saldo", extrato.Saldo)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.8, 6, tr("Em Aberto"), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.2, 6, tr(moeda.Formatar(extrato.EmAberto)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("extrato pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func linhaTotal(pdf *fpdf.Fpdf, tr func(string) string, contentW float64, rotulo string, valor decimal.Decimal) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW*0.8, 6, tr(rotulo), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.2, 6, tr(moeda.Formatar(valor)), "", 1, "R", false, 0, "")
}

func truncar(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
