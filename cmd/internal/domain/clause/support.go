package clause

import (
	"fmt"

	"metrocontratos/cmd/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type SupportData struct {
	Channels      []string        `json:"canais"`
	ServiceHours  string          `json:"horario_atendimento"`
	ResponseHours int             `json:"tempo_resposta_horas"`
	IncludedHours int             `json:"horas_inclusas_mes"`
	ExtraHourRate decimal.Decimal `json:"valor_hora_excedente"`
	Remote        bool            `json:"suporte_remoto"`
	Software      string          `json:"software"`
}

func (*SupportData) ContractType() entity.ContractType { return entity.ContractSupport }

func SupportClauses(d *SupportData) []Section {
	channels := "telefone, e-mail e portal de chamados da CONTRATADA"
	if c := join(d.Channels); c != "" {
		channels = c
	}

	response := "em até 8 (oito) horas úteis"
	if d.ResponseHours > 0 {
		response = fmt.Sprintf("em até %d horas úteis", d.ResponseHours)
	}

	franchise := "O suporte será prestado sob demanda, e as horas utilizadas serão informadas em relatório mensal."
	if d.IncludedHours > 0 {
		franchise = fmt.Sprintf("Estão incluídas %d horas de suporte por mês, não cumulativas.", d.IncludedHours)
		if d.ExtraHourRate.IsPositive() {
			franchise += fmt.Sprintf(" As horas excedentes serão cobradas ao valor de %s por hora.", Money(d.ExtraHourRate))
		}
	}

	remote := "O suporte será prestado preferencialmente de forma presencial, mediante agendamento."
	if d.Remote {
		remote = "O suporte será prestado preferencialmente de forma remota, cabendo à CONTRATANTE disponibilizar os acessos necessários em conformidade com sua política de segurança da informação."
	}

	software := ""
	if d.Software != "" {
		software = fmt.Sprintf("O suporte abrange o uso do software %s nas versões mantidas pelo fabricante.", d.Software)
	}

	return []Section{
		section("DO OBJETO DO SUPORTE",
			"O suporte técnico compreende o esclarecimento de dúvidas, a orientação sobre uso de equipamentos e procedimentos metrológicos e o diagnóstico de falhas.",
			software,
		),
		section("DOS CANAIS DE ATENDIMENTO",
			fmt.Sprintf("Os chamados serão abertos por meio de %s.", channels),
		),
		section("DO HORÁRIO DE ATENDIMENTO",
			fmt.Sprintf("O atendimento será prestado %s.", or(d.ServiceHours, "de segunda a sexta-feira, das 8h às 18h, exceto feriados")),
		),
		section("DO PRAZO DE RESPOSTA",
			fmt.Sprintf("A CONTRATADA responderá aos chamados %s, contadas da sua abertura.", response),
		),
		section("DA FRANQUIA DE HORAS", franchise),
		section("DA MODALIDADE", remote),
		section("DAS EXCLUSÕES",
			"Não estão incluídos no suporte a execução de calibrações, reparos, treinamentos formais ou desenvolvimento de procedimentos, que serão objeto de proposta específica.",
		),
		section("DOS REGISTROS",
			"Todos os chamados serão registrados com data, hora, solicitante, descrição e solução, ficando disponíveis para consulta da CONTRATANTE.",
		),
		section("DA SATISFAÇÃO",
			"A CONTRATANTE poderá avaliar cada atendimento, e as avaliações serão consideradas na revisão anual das condições deste contrato.",
		),
	}
}
