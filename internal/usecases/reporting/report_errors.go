package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos dos relatórios
var (
	// Base ausente, ilegível ou com esquema diferente do esperado
	ErrDataSource = errors.New("data source error")
	// Falha ao desenhar ou gravar o gráfico
	ErrRender = errors.New("render error")
	// Nenhuma categoria com nota para escolher a melhor
	ErrNoRatedCategories = errors.New("no rated categories")
)

// ReportError é um erro com o contexto do relatório que falhou
type ReportError struct {
	Err    error  // Erro base (ErrDataSource, ErrRender, ...)
	Report string // Relatório que falhou
	Cause  error  // Erro original da infraestrutura
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Report, e.Err.Error(), e.Cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.Report, e.Err.Error())
}

// Unwrap expõe tanto o erro base quanto a causa para errors.Is/As
func (e *ReportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewReportError cria um novo ReportError
func NewReportError(err error, report string, cause error) *ReportError {
	return &ReportError{
		Err:    err,
		Report: report,
		Cause:  cause,
	}
}
