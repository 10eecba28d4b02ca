package clause

import (
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"
)

type CalibrationData struct {
	Instruments          []Equipment `json:"instrumentos"`
	Location             string      `json:"local_execucao"`
	Periodicity          string      `json:"periodicidade"`
	TurnaroundDays       int         `json:"prazo_execucao_dias"`
	CertificateDays      int         `json:"prazo_certificado_dias"`
	Standards            string      `json:"normas"`
	PickupDelivery       bool        `json:"coleta_entrega"`
	LogisticsResponsible string      `json:"responsavel_logistica"`
	AcceptanceCriteria   string      `json:"criterios_aceitacao"`
}

func (*CalibrationData) ContractType() entity.ContractType { return entity.ContractCalibration }

func CalibrationClauses(d *CalibrationData) []Section {
	location := "nas instalações do laboratório da CONTRATADA"
	switch strings.ToLower(strings.TrimSpace(d.Location)) {
	case "", "laboratorio", "laboratório":
	case "campo", "in loco", "cliente":
		location = "nas instalações da CONTRATANTE (calibração in loco), que garantirá as condições ambientais e de acesso necessárias"
	default:
		location = "em " + strings.TrimSpace(d.Location)
	}

	turnaround := "em até 10 (dez) dias úteis contados do recebimento dos instrumentos"
	if d.TurnaroundDays > 0 {
		turnaround = fmt.Sprintf("em até %d dias úteis contados do recebimento dos instrumentos", d.TurnaroundDays)
	}
	certificate := "em até 5 (cinco) dias úteis após a conclusão da calibração"
	if d.CertificateDays > 0 {
		certificate = fmt.Sprintf("em até %d dias úteis após a conclusão da calibração", d.CertificateDays)
	}

	logistics := "O transporte dos instrumentos até o laboratório e sua retirada após a calibração são de responsabilidade da CONTRATANTE, que arcará com os respectivos custos e riscos."
	if d.PickupDelivery {
		logistics = fmt.Sprintf("A CONTRATADA realizará a coleta e a entrega dos instrumentos, sob responsabilidade de %s, respondendo pela sua integridade durante o transporte.", or(d.LogisticsResponsible, "sua equipe de logística"))
	}

	return []Section{
		section("DO ESCOPO DA CALIBRAÇÃO",
			"Serão calibrados os seguintes instrumentos de medição da CONTRATANTE:",
			equipmentItems(d.Instruments, "Os instrumentos a serem calibrados são aqueles relacionados na proposta comercial ou nas ordens de serviço emitidas durante a vigência deste contrato."),
		),
		section("DO LOCAL DE EXECUÇÃO",
			fmt.Sprintf("As calibrações serão realizadas %s.", location),
		),
		section("DOS PRAZOS DE EXECUÇÃO",
			fmt.Sprintf("A CONTRATADA concluirá os serviços de calibração %s, salvo quando houver necessidade de ajuste, reparo ou consulta prévia à CONTRATANTE, hipótese em que o prazo ficará suspenso.", turnaround),
		),
		section("DOS CERTIFICADOS DE CALIBRAÇÃO",
			fmt.Sprintf("Os certificados de calibração serão emitidos %s, contendo os resultados das medições, a incerteza de medição expandida e a declaração de rastreabilidade metrológica.", certificate),
			strings.TrimSpace("A análise crítica dos resultados e a decisão sobre a aptidão do instrumento ao uso pretendido cabem à CONTRATANTE. "+acceptance(d.AcceptanceCriteria)),
		),
		section("DA RASTREABILIDADE METROLÓGICA",
			fmt.Sprintf("A CONTRATADA utilizará padrões rastreáveis ao Sistema Internacional de Unidades (SI), por meio da Rede Brasileira de Calibração (RBC) ou de institutos nacionais de metrologia, aplicando os procedimentos e normas técnicas pertinentes, em especial %s.", or(d.Standards, "a ABNT NBR ISO/IEC 17025")),
		),
		section("DA PERIODICIDADE",
			periodicity(d.Periodicity),
		),
		section("DO TRANSPORTE E DA LOGÍSTICA",
			logistics,
		),
		section("DOS INSTRUMENTOS NÃO CONFORMES",
			"Constatada avaria, mau funcionamento ou impossibilidade de calibração, a CONTRATADA comunicará a CONTRATANTE antes de qualquer intervenção, e eventuais ajustes ou reparos somente serão executados mediante aprovação de orçamento específico.",
		),
		section("DA GUARDA DE REGISTROS",
			fmt.Sprintf("A CONTRATADA manterá os registros técnicos das calibrações realizadas pelo prazo mínimo de %s anos, disponibilizando cópias à CONTRATANTE sempre que solicitado.", Count(RecordRetentionYears)),
		),
	}
}

func periodicity(p string) string {
	if p = strings.TrimSpace(p); p == "" {
		return "A periodicidade das calibrações será definida pela CONTRATANTE, que é responsável pelo seu programa de calibração, cabendo à CONTRATADA apenas recomendá-la quando solicitado."
	}
	return fmt.Sprintf("As calibrações serão realizadas com periodicidade %s, conforme programa de calibração mantido pela CONTRATANTE.", p)
}

func acceptance(criteria string) string {
	if criteria = strings.TrimSpace(criteria); criteria == "" {
		return ""
	}
	return fmt.Sprintf("Para tanto, serão adotados os seguintes critérios de aceitação informados pela CONTRATANTE: %s.", strings.TrimRight(criteria, "."))
}
