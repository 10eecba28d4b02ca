package clause

import (
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type ConsultingData struct {
	Scope          string          `json:"escopo"`
	Deliverables   []string        `json:"entregaveis"`
	EstimatedHours int             `json:"horas_estimadas"`
	HourlyRate     decimal.Decimal `json:"valor_hora"`
	Consultant     string          `json:"consultor_responsavel"`
	Standard       string          `json:"norma_referencia"`
	Schedule       string          `json:"cronograma"`
	Modality       string          `json:"modalidade"`
}

func (*ConsultingData) ContractType() entity.ContractType { return entity.ContractConsulting }

func ConsultingClauses(d *ConsultingData) []Section {
	hours := "As horas de consultoria serão registradas em relatório de atividades e faturadas conforme as condições de pagamento deste contrato."
	switch {
	case d.EstimatedHours > 0 && d.HourlyRate.IsPositive():
		hours = fmt.Sprintf("Estima-se a execução de %d horas de consultoria, ao valor de %s por hora. Horas excedentes dependerão de aprovação prévia da CONTRATANTE.", d.EstimatedHours, Money(d.HourlyRate))
	case d.EstimatedHours > 0:
		hours = fmt.Sprintf("Estima-se a execução de %d horas de consultoria. Horas excedentes dependerão de aprovação prévia da CONTRATANTE.", d.EstimatedHours)
	case d.HourlyRate.IsPositive():
		hours = fmt.Sprintf("As horas de consultoria serão faturadas ao valor de %s por hora, conforme relatório de atividades aprovado pela CONTRATANTE.", Money(d.HourlyRate))
	}

	modality := "presencial nas instalações da CONTRATANTE ou remota, conforme a natureza de cada atividade"
	switch strings.ToLower(strings.TrimSpace(d.Modality)) {
	case "presencial":
		modality = "presencial, nas instalações da CONTRATANTE"
	case "remota", "remoto":
		modality = "remota, por meio de reuniões virtuais e troca de documentos eletrônicos"
	}

	return []Section{
		section("DO ESCOPO DA CONSULTORIA",
			fmt.Sprintf("A consultoria compreende %s.", strings.TrimRight(or(d.Scope, "orientação técnica para implantação e manutenção de sistema de gestão da qualidade e de controle metrológico"), ".")),
		),
		section("DA NORMA DE REFERÊNCIA",
			fmt.Sprintf("Os trabalhos terão como referência %s, na revisão vigente à data da assinatura.", or(d.Standard, "a norma ABNT NBR ISO/IEC 17025")),
		),
		section("DOS ENTREGÁVEIS",
			"Constituem entregáveis da consultoria:",
			listItems(d.Deliverables, "Relatórios de diagnóstico, planos de ação e registros das atividades realizadas."),
		),
		section("DA MODALIDADE DE EXECUÇÃO",
			fmt.Sprintf("A consultoria será executada de forma %s.", modality),
		),
		section("DAS HORAS E DA REMUNERAÇÃO", hours),
		section("DO CRONOGRAMA",
			fmt.Sprintf("As atividades seguirão o cronograma %s.", strings.TrimRight(or(d.Schedule, "a ser aprovado pelas partes na reunião de abertura dos trabalhos"), ".")),
		),
		section("DO CONSULTOR RESPONSÁVEL",
			fmt.Sprintf("A coordenação técnica dos trabalhos caberá a %s, cuja substituição será previamente comunicada à CONTRATANTE.", or(d.Consultant, "consultor designado pela CONTRATADA")),
		),
		section("DA NATUREZA DA OBRIGAÇÃO",
			"A consultoria constitui obrigação de meio. A obtenção de acreditação, certificação ou aprovação em auditoria depende de fatores alheios à CONTRATADA, que não garante resultado específico.",
		),
		section("DA PROPRIEDADE DOS DOCUMENTOS",
			"Os documentos elaborados especificamente para a CONTRATANTE passam a ser de sua propriedade após a quitação integral, preservado o direito da CONTRATADA sobre suas metodologias, modelos e ferramentas preexistentes.",
		),
	}
}
