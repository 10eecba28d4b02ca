package clause

import (
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"
)

type MaintenanceData struct {
	Equipment           []Equipment `json:"equipamentos"`
	Kind                string      `json:"tipo_manutencao"`
	PreventiveFrequency string      `json:"frequencia_preventiva"`
	ResponseHours       int         `json:"tempo_atendimento_horas"`
	VisitsPerYear       int         `json:"visitas_anuais"`
	PartsIncluded       bool        `json:"pecas_inclusas"`
	ServiceHours        string      `json:"horario_atendimento"`
}

func (*MaintenanceData) ContractType() entity.ContractType { return entity.ContractMaintenance }

func MaintenanceClauses(d *MaintenanceData) []Section {
	var kind string
	switch strings.ToLower(strings.TrimSpace(d.Kind)) {
	case "preventiva":
		kind = "manutenção preventiva"
	case "corretiva":
		kind = "manutenção corretiva"
	default:
		kind = "manutenção preventiva e corretiva"
	}

	preventive := "As manutenções preventivas seguirão o plano de manutenção recomendado pelo fabricante de cada equipamento."
	if f := strings.TrimSpace(d.PreventiveFrequency); f != "" {
		preventive = fmt.Sprintf("As manutenções preventivas serão realizadas com frequência %s, conforme cronograma acordado entre as partes.", f)
	}
	if d.VisitsPerYear > 0 {
		preventive += fmt.Sprintf(" Estão incluídas %d visitas técnicas por ano.", d.VisitsPerYear)
	}

	response := "A CONTRATADA atenderá os chamados de manutenção corretiva em até 48 (quarenta e oito) horas úteis contadas da abertura do chamado."
	if d.ResponseHours > 0 {
		response = fmt.Sprintf("A CONTRATADA atenderá os chamados de manutenção corretiva em até %d horas úteis contadas da abertura do chamado.", d.ResponseHours)
	}

	parts := "As peças e componentes necessários aos reparos não estão incluídos no preço e serão fornecidos mediante aprovação prévia de orçamento pela CONTRATANTE."
	if d.PartsIncluded {
		parts = "As peças e componentes de reposição decorrentes de desgaste natural estão incluídos no preço, excluídos os danos causados por mau uso, acidentes ou agentes externos."
	}

	return []Section{
		section("DOS EQUIPAMENTOS COBERTOS",
			fmt.Sprintf("Os serviços de %s abrangem os seguintes equipamentos:", kind),
			equipmentItems(d.Equipment, "Os equipamentos relacionados em anexo, cuja inclusão ou exclusão dependerá de termo aditivo."),
		),
		section("DA MANUTENÇÃO PREVENTIVA", preventive),
		section("DA MANUTENÇÃO CORRETIVA",
			response,
			"Os chamados deverão ser abertos pelos canais oficiais da CONTRATADA, com a descrição do defeito e a identificação do equipamento.",
		),
		section("DO HORÁRIO DE ATENDIMENTO",
			fmt.Sprintf("Os atendimentos serão realizados %s. Atendimentos fora desse horário serão cobrados à parte, mediante aprovação da CONTRATANTE.", or(d.ServiceHours, "de segunda a sexta-feira, das 8h às 17h, exceto feriados")),
		),
		section("DAS PEÇAS E COMPONENTES", parts),
		section("DOS RELATÓRIOS TÉCNICOS",
			"Cada intervenção será registrada em relatório técnico contendo a descrição dos serviços, as peças substituídas e as recomendações ao usuário.",
		),
		section("DAS EXCLUSÕES",
			"Não estão cobertos os danos causados por quedas, sobrecarga elétrica, uso em desacordo com o manual do fabricante, intervenção de terceiros ou casos fortuitos e de força maior.",
		),
		section("DA VERIFICAÇÃO APÓS REPARO",
			"Sempre que o reparo puder afetar as características metrológicas do equipamento, a CONTRATADA recomendará sua calibração antes do retorno ao uso.",
		),
		section("DA OBSOLESCÊNCIA",
			"Caso um equipamento se torne irreparável ou sem peças disponíveis no mercado, a CONTRATADA comunicará a CONTRATANTE, e o equipamento será excluído do contrato com o respectivo ajuste de preço.",
		),
	}
}
