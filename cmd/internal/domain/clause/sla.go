package clause

import (
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"
)

// Priority is one severity level of an SLA table.
type Priority struct {
	Level           string `json:"nivel"`
	Description     string `json:"descricao"`
	ResponseHours   int    `json:"tempo_resposta_horas"`
	ResolutionHours int    `json:"tempo_solucao_horas"`
}

type SLAData struct {
	ResponseHours   int        `json:"tempo_resposta_horas"`
	ResolutionHours int        `json:"tempo_solucao_horas"`
	Availability    string     `json:"disponibilidade"`
	ServiceWindow   string     `json:"janela_atendimento"`
	PenaltyPercent  int        `json:"percentual_penalidade"`
	PenaltyCap      int        `json:"limite_penalidade"`
	ReportFrequency string     `json:"frequencia_relatorio"`
	Priorities      []Priority `json:"prioridades"`
}

func (*SLAData) ContractType() entity.ContractType { return entity.ContractSLA }

func SLAClauses(d *SLAData) []Section {
	response, resolution := 4, 24
	if d.ResponseHours > 0 {
		response = d.ResponseHours
	}
	if d.ResolutionHours > 0 {
		resolution = d.ResolutionHours
	}

	penalty, limit := 5, 20
	if d.PenaltyPercent > 0 {
		penalty = d.PenaltyPercent
	}
	if d.PenaltyCap > 0 {
		limit = d.PenaltyCap
	}

	priorities := []Node{para("Não havendo tabela de prioridades específica, os prazos acima aplicam-se a todos os chamados.")}
	if len(d.Priorities) > 0 {
		texts := make([]string, len(d.Priorities))
		for i, p := range d.Priorities {
			texts[i] = priorityLine(p, response, resolution)
		}
		priorities = items(texts...)
	}

	availability := ""
	if a := strings.TrimSpace(d.Availability); a != "" {
		availability = fmt.Sprintf("A CONTRATADA assegura disponibilidade mínima de %s%% dos serviços no período de apuração mensal.", strings.TrimSuffix(a, "%"))
	}

	return []Section{
		section("DOS NÍVEIS DE SERVIÇO",
			fmt.Sprintf("A CONTRATADA compromete-se a responder aos chamados em até %d horas e a solucioná-los em até %d horas, contadas da abertura do chamado dentro da janela de atendimento.", response, resolution),
			availability,
		),
		section("DA JANELA DE ATENDIMENTO",
			fmt.Sprintf("Os prazos de atendimento serão contados %s.", or(d.ServiceWindow, "em dias úteis, de segunda a sexta-feira, das 8h às 18h")),
		),
		section("DA CLASSIFICAÇÃO DOS CHAMADOS",
			"Os chamados serão classificados por prioridade, conforme o impacto na operação da CONTRATANTE:",
			priorities,
		),
		section("DA ABERTURA E DO REGISTRO DOS CHAMADOS",
			"Todo chamado deverá ser registrado nos canais oficiais da CONTRATADA, que fornecerá número de protocolo para acompanhamento e apuração dos indicadores.",
		),
		section("DA APURAÇÃO DOS INDICADORES",
			fmt.Sprintf("Os indicadores de nível de serviço serão apurados e apresentados à CONTRATANTE em relatório com periodicidade %s.", or(d.ReportFrequency, "mensal")),
		),
		section("DAS PENALIDADES POR DESCUMPRIMENTO",
			fmt.Sprintf("O descumprimento dos níveis de serviço sujeitará a CONTRATADA a desconto de %d%% sobre o valor mensal por ocorrência, limitado a %d%% do valor mensal do período de apuração.", penalty, limit),
		),
		section("DAS EXCLUDENTES",
			"Não serão computados para fins de apuração os atrasos decorrentes de caso fortuito, força maior, indisponibilidade de acesso às instalações ou aos equipamentos, ou de culpa da CONTRATANTE ou de terceiros.",
		),
		section("DA REVISÃO DOS NÍVEIS DE SERVIÇO",
			"Os níveis de serviço poderão ser revistos anualmente, de comum acordo, mediante termo aditivo.",
		),
		section("DO ESCALONAMENTO",
			"Chamados não solucionados no prazo serão escalonados à coordenação técnica da CONTRATADA, que informará à CONTRATANTE o plano de ação e a nova previsão de solução.",
		),
	}
}

func priorityLine(p Priority, response, resolution int) string {
	if p.ResponseHours > 0 {
		response = p.ResponseHours
	}
	if p.ResolutionHours > 0 {
		resolution = p.ResolutionHours
	}
	line := fmt.Sprintf("prioridade %s: resposta em até %d horas e solução em até %d horas", or(p.Level, "não classificada"), response, resolution)
	if desc := strings.TrimSpace(p.Description); desc != "" {
		line += " (" + strings.TrimRight(desc, ".") + ")"
	}
	return line + ";"
}
