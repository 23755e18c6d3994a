package synclog

import "time"

// Sync types.
const (
	TipoFuncionarios = "funcionarios"
	TipoAbsenteismo  = "absenteismo"
)

// Sync statuses. A log transitions em_andamento -> {concluido, erro} exactly
// once and is never deleted.
const (
	StatusEmAndamento = "em_andamento"
	StatusConcluido   = "concluido"
	StatusErro        = "erro"
)

// SyncLog records one sync invocation: who triggered it, what was imported,
// and how it ended.
type SyncLog struct {
	ID                int64      `json:"id"`
	Tipo              string     `json:"tipo"`
	EmpresaID         int64      `json:"empresa_id"`
	Status            string     `json:"status"`
	Detalhes          *string    `json:"detalhes"`
	DataInicio        time.Time  `json:"data_inicio"`
	DataFim           *time.Time `json:"data_fim"`
	RegistrosAfetados int        `json:"registros_afetados"`
	MensagemErro      *string    `json:"mensagem_erro"`
	UsuarioID         int64      `json:"usuario_id"`
}
