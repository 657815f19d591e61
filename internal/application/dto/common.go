package dto

// PageQuery paginação de listagens. Defaults da API original: offset 0, limit 10.
// O limit não tem teto; lacuna de exaustão de recursos herdada do contrato.
type PageQuery struct {
	Offset int `query:"offset" validate:"gte=0"`
	Limit  int `query:"limit" validate:"gte=0"`
}

// Defaults aplica os valores padrão quando zerados.
func (p *PageQuery) Defaults() {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
}

// DateRangeQuery intervalo opcional de datas (YYYY-MM-DD) dos endpoints do
// dashboard. startDate abre o dia às 00:00:00; endDate fecha às 23:59:59.999.
type DateRangeQuery struct {
	StartDate string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
}
