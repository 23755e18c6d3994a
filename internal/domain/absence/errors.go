package absence

import "errors"

var (
	ErrDateRangeRequired = errors.New("data inicial e final são obrigatórias")
	ErrDateRangeTooWide  = errors.New("o intervalo máximo entre as datas é de 30 dias")
)
